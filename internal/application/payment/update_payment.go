package payment

import (
	"context"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/order"
	"github.com/lekimlong/evdealer/internal/domain/payment"
)

// UpdatePaymentUseCase 更新支付记录用例(支付方式/状态)
type UpdatePaymentUseCase struct {
	paymentRepo payment.Repository
	orderRepo   order.Repository
}

// NewUpdatePaymentUseCase 创建更新支付用例
func NewUpdatePaymentUseCase(paymentRepo payment.Repository, orderRepo order.Repository) *UpdatePaymentUseCase {
	return &UpdatePaymentUseCase{paymentRepo: paymentRepo, orderRepo: orderRepo}
}

// UpdateMethodRequest 更新支付方式请求
type UpdateMethodRequest struct {
	PaymentID uint
	Method    string
}

// UpdateStatusRequest 更新支付状态请求
type UpdateStatusRequest struct {
	PaymentID uint
	Status    string
}

// PaymentView 支付记录视图
type PaymentView struct {
	PaymentID uint   `json:"payment_id"`
	OrderID   uint   `json:"order_id"`
	Amount    string `json:"amount"`
	Method    string `json:"method"`
	Status    string `json:"status"`
}

// UpdateMethod 修改支付方式
func (uc *UpdatePaymentUseCase) UpdateMethod(ctx context.Context, caller identity.Caller, req UpdateMethodRequest) (*PaymentView, error) {
	method, err := payment.ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}

	p, err := uc.authorize(ctx, caller, req.PaymentID)
	if err != nil {
		return nil, err
	}

	// 换方式后既有的处理进度不再可信,状态统一回到待确认
	p.Method = method
	p.Status = payment.StatusPending
	if err := uc.paymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPaymentView(p), nil
}

// UpdateStatus 修改支付状态
//
// 注意:支付状态变为Completed不自动联动订单状态,
// 订单侧的推进由状态变更接口显式完成(预留的扩展点)
func (uc *UpdatePaymentUseCase) UpdateStatus(ctx context.Context, caller identity.Caller, req UpdateStatusRequest) (*PaymentView, error) {
	status, err := payment.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	p, err := uc.authorize(ctx, caller, req.PaymentID)
	if err != nil {
		return nil, err
	}

	p.Status = status
	if err := uc.paymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPaymentView(p), nil
}

// authorize 加载支付记录并校验调用者对所属订单的经销商归属
func (uc *UpdatePaymentUseCase) authorize(ctx context.Context, caller identity.Caller, paymentID uint) (*payment.Payment, error) {
	p, err := uc.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	o, err := uc.orderRepo.FindByID(ctx, p.OrderID)
	if err != nil {
		return nil, err
	}
	if !caller.OwnsDealer(o.DealerID) {
		return nil, order.ErrAccessDenied
	}
	return p, nil
}

func toPaymentView(p *payment.Payment) *PaymentView {
	return &PaymentView{
		PaymentID: p.ID,
		OrderID:   p.OrderID,
		Amount:    p.Amount.String(),
		Method:    string(p.Method),
		Status:    string(p.Status),
	}
}
