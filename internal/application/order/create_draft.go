package order

import (
	"context"
	"log"
	"time"

	"github.com/lekimlong/evdealer/internal/domain/customer"
	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/order"
	"github.com/lekimlong/evdealer/pkg/metrics"
	"github.com/lekimlong/evdealer/pkg/mq"
)

// CreateDraftUseCase 创建草稿订单用例
type CreateDraftUseCase struct {
	orderRepo    order.Repository
	customerRepo customer.Repository
	publisher    EventPublisher
}

// NewCreateDraftUseCase 创建草稿订单用例
func NewCreateDraftUseCase(
	orderRepo order.Repository,
	customerRepo customer.Repository,
	publisher EventPublisher,
) *CreateDraftUseCase {
	return &CreateDraftUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		publisher:    publisher,
	}
}

// CreateDraftRequest 创建草稿订单请求
type CreateDraftRequest struct {
	CustomerID uint
}

// CreateDraftResponse 创建草稿订单响应
type CreateDraftResponse struct {
	OrderID   uint   `json:"order_id"`
	Status    string `json:"status"`
	OrderDate string `json:"order_date"`
}

// Execute 创建草稿订单
//
// 业务规则:
// 1. 客户必须存在,且归属调用者所在经销商
// 2. 草稿订单无明细、金额全零、未选支付方式
func (uc *CreateDraftUseCase) Execute(ctx context.Context, caller identity.Caller, req CreateDraftRequest) (*CreateDraftResponse, error) {
	c, err := uc.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !caller.OwnsDealer(c.DealerID) {
		return nil, order.ErrAccessDenied
	}

	o := order.NewDraft(c.ID, c.DealerID)
	if err := uc.orderRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()

	// 事件发布失败不回滚订单,只记日志
	if uc.publisher != nil {
		event := mq.OrderCreatedEvent{
			OrderID:    o.ID,
			CustomerID: o.CustomerID,
			DealerID:   o.DealerID,
			CreatedAt:  time.Now(),
		}
		if err := uc.publisher.Publish(mq.RoutingKeyOrderCreated, event); err != nil {
			log.Printf("发布订单创建事件失败: order_id=%d, err=%v", o.ID, err)
		}
	}

	return &CreateDraftResponse{
		OrderID:   o.ID,
		Status:    string(o.Status),
		OrderDate: o.OrderDate.Format(time.RFC3339),
	}, nil
}
