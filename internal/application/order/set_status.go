package order

import (
	"context"
	"log"
	"time"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/order"
	"github.com/lekimlong/evdealer/pkg/mq"
)

// SetStatusUseCase 变更订单状态用例
type SetStatusUseCase struct {
	orderRepo order.Repository
	publisher EventPublisher
}

// NewSetStatusUseCase 创建变更状态用例
func NewSetStatusUseCase(orderRepo order.Repository, publisher EventPublisher) *SetStatusUseCase {
	return &SetStatusUseCase{orderRepo: orderRepo, publisher: publisher}
}

// SetStatusRequest 变更状态请求
type SetStatusRequest struct {
	OrderID uint
	Status  string
}

// SetStatusResponse 变更状态响应
type SetStatusResponse struct {
	OrderID   uint   `json:"order_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// Execute 变更订单状态
//
// 词表内任意状态间都允许切换,不做状态机约束
// (线下流程经常跳步,见领域层Status的设计说明)
func (uc *SetStatusUseCase) Execute(ctx context.Context, caller identity.Caller, req SetStatusRequest) (*SetStatusResponse, error) {
	newStatus, err := order.ParseStatus(req.Status)
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

	oldStatus := o.Status
	o.Status = newStatus
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if uc.publisher != nil && oldStatus != newStatus {
		event := mq.OrderStatusChangedEvent{
			OrderID:   o.ID,
			DealerID:  o.DealerID,
			OldStatus: string(oldStatus),
			NewStatus: string(newStatus),
			ChangedAt: time.Now(),
		}
		if err := uc.publisher.Publish(mq.RoutingKeyOrderStatusChanged, event); err != nil {
			log.Printf("发布订单状态变更事件失败: order_id=%d, err=%v", o.ID, err)
		}
	}

	return &SetStatusResponse{
		OrderID:   o.ID,
		OldStatus: string(oldStatus),
		NewStatus: string(newStatus),
	}, nil
}
