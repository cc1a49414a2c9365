package order

import (
	"context"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/inventory"
	"github.com/lekimlong/evdealer/internal/domain/order"
	"github.com/lekimlong/evdealer/pkg/metrics"
)

// RemoveLineItemUseCase 删除明细用例
type RemoveLineItemUseCase struct {
	orderRepo order.Repository
	stockRepo inventory.Repository
	tx        Transactor
}

// NewRemoveLineItemUseCase 创建删除明细用例
func NewRemoveLineItemUseCase(
	orderRepo order.Repository,
	stockRepo inventory.Repository,
	tx Transactor,
) *RemoveLineItemUseCase {
	return &RemoveLineItemUseCase{
		orderRepo: orderRepo,
		stockRepo: stockRepo,
		tx:        tx,
	}
}

// RemoveLineItemRequest 删除明细请求
type RemoveLineItemRequest struct {
	LineItemID uint
}

// RemoveLineItemResponse 删除明细响应
type RemoveLineItemResponse struct {
	SubTotal string `json:"sub_total"`
	Total    string `json:"total"`
}

// Execute 删除订单明细,预留的库存全量释放
func (uc *RemoveLineItemUseCase) Execute(ctx context.Context, caller identity.Caller, req RemoveLineItemRequest) (*RemoveLineItemResponse, error) {
	item, err := uc.orderRepo.FindItemByID(ctx, req.LineItemID)
	if err != nil {
		return nil, err
	}
	o, err := uc.orderRepo.FindByID(ctx, item.OrderID)
	if err != nil {
		return nil, err
	}
	if !caller.OwnsDealer(o.DealerID) {
		return nil, order.ErrAccessDenied
	}

	err = uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		// 释放也要锁行,与并发的预留串行化
		locked, err := uc.stockRepo.LockByID(txCtx, item.StockID)
		if err != nil {
			return err
		}
		if err := uc.stockRepo.UpdateQuantity(txCtx, locked.ID, item.Quantity); err != nil {
			return err
		}

		if err := uc.orderRepo.DeleteItem(txCtx, item.ID); err != nil {
			return err
		}

		o.RemoveItem(item.ID)
		o.RecomputeSubTotal()
		return uc.orderRepo.Update(txCtx, o)
	})
	if err != nil {
		metrics.OrderLineItemOpsTotal.WithLabelValues("remove", "failure").Inc()
		return nil, err
	}

	metrics.OrderLineItemOpsTotal.WithLabelValues("remove", "success").Inc()
	return &RemoveLineItemResponse{
		SubTotal: o.SubTotal.String(),
		Total:    o.TotalAmount.String(),
	}, nil
}
