package payment

import (
	"context"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/order"
	"github.com/lekimlong/evdealer/internal/domain/payment"
)

// DeletePaymentUseCase 删除支付记录用例(登记错误时的更正手段)
type DeletePaymentUseCase struct {
	paymentRepo payment.Repository
	orderRepo   order.Repository
}

// NewDeletePaymentUseCase 创建删除支付用例
func NewDeletePaymentUseCase(paymentRepo payment.Repository, orderRepo order.Repository) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{paymentRepo: paymentRepo, orderRepo: orderRepo}
}

// Execute 删除支付记录
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, caller identity.Caller, paymentID uint) error {
	p, err := uc.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}
	o, err := uc.orderRepo.FindByID(ctx, p.OrderID)
	if err != nil {
		return err
	}
	if !caller.OwnsDealer(o.DealerID) {
		return order.ErrAccessDenied
	}
	return uc.paymentRepo.Delete(ctx, paymentID)
}
