package payment

import (
	"context"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/order"
	"github.com/lekimlong/evdealer/internal/domain/payment"
)

// QueryUseCase 支付记录查询用例
type QueryUseCase struct {
	paymentRepo payment.Repository
	orderRepo   order.Repository
}

// NewQueryUseCase 创建支付查询用例
func NewQueryUseCase(paymentRepo payment.Repository, orderRepo order.Repository) *QueryUseCase {
	return &QueryUseCase{paymentRepo: paymentRepo, orderRepo: orderRepo}
}

// ListByOrder 查询订单全部支付记录(分期进度一目了然)
func (uc *QueryUseCase) ListByOrder(ctx context.Context, caller identity.Caller, orderID uint) ([]*PaymentView, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !caller.OwnsDealer(o.DealerID) {
		return nil, order.ErrAccessDenied
	}

	payments, err := uc.paymentRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	views := make([]*PaymentView, len(payments))
	for i, p := range payments {
		views[i] = toPaymentView(p)
	}
	return views, nil
}
