package payment

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/order"
	"github.com/lekimlong/evdealer/internal/domain/payment"
	"github.com/lekimlong/evdealer/pkg/metrics"
	"github.com/lekimlong/evdealer/pkg/mq"
)

// EventPublisher 领域事件发布(与订单用例同构,发布失败不阻塞主流程)
type EventPublisher interface {
	Publish(routingKey string, message interface{}) error
}

// CreatePaymentUseCase 登记支付记录用例
type CreatePaymentUseCase struct {
	paymentRepo payment.Repository
	orderRepo   order.Repository
	publisher   EventPublisher
}

// NewCreatePaymentUseCase 创建登记支付用例
func NewCreatePaymentUseCase(
	paymentRepo payment.Repository,
	orderRepo order.Repository,
	publisher EventPublisher,
) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		publisher:   publisher,
	}
}

// CreatePaymentRequest 登记支付请求
type CreatePaymentRequest struct {
	OrderID     uint
	Amount      decimal.Decimal
	Method      string
	PaymentDate time.Time
	Note        string
}

// CreatePaymentResponse 登记支付响应
type CreatePaymentResponse struct {
	PaymentID   uint   `json:"payment_id"`
	OrderID     uint   `json:"order_id"`
	Amount      string `json:"amount"`
	Method      string `json:"method"`
	Status      string `json:"status"`
	PaymentDate string `json:"payment_date"`
}

// Execute 登记一笔支付(分期场景下一个订单可登记多笔)
//
// 设计说明:登记支付不自动变更订单状态——支付确认后订单是否转为
// Paid/InInstallments由销售显式调用状态变更接口决定,这里不替业务做主
func (uc *CreatePaymentUseCase) Execute(ctx context.Context, caller identity.Caller, req CreatePaymentRequest) (*CreatePaymentResponse, error) {
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

	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}
	p, err := payment.NewPayment(o.ID, req.Amount, method, paymentDate, req.Note)
	if err != nil {
		return nil, err
	}
	if err := uc.paymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	metrics.PaymentsRecordedTotal.Inc()

	if uc.publisher != nil {
		event := mq.PaymentRecordedEvent{
			PaymentID:  p.ID,
			OrderID:    p.OrderID,
			Amount:     p.Amount.String(),
			Method:     string(p.Method),
			RecordedAt: time.Now(),
		}
		if err := uc.publisher.Publish(mq.RoutingKeyPaymentRecorded, event); err != nil {
			log.Printf("发布支付登记事件失败: payment_id=%d, err=%v", p.ID, err)
		}
	}

	return &CreatePaymentResponse{
		PaymentID:   p.ID,
		OrderID:     p.OrderID,
		Amount:      p.Amount.String(),
		Method:      string(p.Method),
		Status:      string(p.Status),
		PaymentDate: p.PaymentDate.Format(time.RFC3339),
	}, nil
}
