package order

import (
	"context"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/order"
	"github.com/lekimlong/evdealer/internal/domain/payment"
)

// SetPaymentMethodUseCase 设置订单支付方式用例
type SetPaymentMethodUseCase struct {
	orderRepo order.Repository
}

// NewSetPaymentMethodUseCase 创建设置支付方式用例
func NewSetPaymentMethodUseCase(orderRepo order.Repository) *SetPaymentMethodUseCase {
	return &SetPaymentMethodUseCase{orderRepo: orderRepo}
}

// SetPaymentMethodRequest 设置支付方式请求
type SetPaymentMethodRequest struct {
	OrderID uint
	Method  string
}

// SetPaymentMethodResponse 设置支付方式响应
type SetPaymentMethodResponse struct {
	OrderID uint   `json:"order_id"`
	Method  string `json:"method"`
}

// Execute 设置订单支付方式(草稿期可反复修改)
func (uc *SetPaymentMethodUseCase) Execute(ctx context.Context, caller identity.Caller, req SetPaymentMethodRequest) (*SetPaymentMethodResponse, error) {
	method, err := payment.ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}

	o, err := uc.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if !caller.OwnsDealer(o.DealerID) {
		return nil, order.ErrAccessDenied
	}

	o.PaymentMethod = &method
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	return &SetPaymentMethodResponse{
		OrderID: o.ID,
		Method:  string(method),
	}, nil
}
