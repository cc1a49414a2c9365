package order

import (
	"context"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/inventory"
	"github.com/lekimlong/evdealer/internal/domain/order"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
	"github.com/lekimlong/evdealer/pkg/metrics"
)

// UpdateLineItemUseCase 修改明细数量用例
type UpdateLineItemUseCase struct {
	orderRepo order.Repository
	stockRepo inventory.Repository
	tx        Transactor
}

// NewUpdateLineItemUseCase 创建修改明细数量用例
func NewUpdateLineItemUseCase(
	orderRepo order.Repository,
	stockRepo inventory.Repository,
	tx Transactor,
) *UpdateLineItemUseCase {
	return &UpdateLineItemUseCase{
		orderRepo: orderRepo,
		stockRepo: stockRepo,
		tx:        tx,
	}
}

// UpdateLineItemRequest 修改明细数量请求
type UpdateLineItemRequest struct {
	LineItemID  uint
	NewQuantity int
}

// UpdateLineItemResponse 修改明细数量响应
type UpdateLineItemResponse struct {
	LineItemID  uint   `json:"line_item_id"`
	OldQuantity int    `json:"old_quantity"`
	NewQuantity int    `json:"new_quantity"`
	FinalPrice  string `json:"final_price"`
	SubTotal    string `json:"sub_total"`
	Total       string `json:"total"`
}

// Execute 修改明细数量
//
// 业务规则:
// - delta = 新数量 - 旧数量:增量走预留(可能库存不足),减量走释放
// - 单价保持创建时的快照,永不重算
// - 数量必须为正,减到0请走删除明细
func (uc *UpdateLineItemUseCase) Execute(ctx context.Context, caller identity.Caller, req UpdateLineItemRequest) (*UpdateLineItemResponse, error) {
	if req.NewQuantity <= 0 {
		return nil, order.ErrInvalidQuantity
	}

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

	oldQuantity := item.Quantity
	delta := req.NewQuantity - oldQuantity

	err = uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		if delta != 0 {
			locked, err := uc.stockRepo.LockByID(txCtx, item.StockID)
			if err != nil {
				return err
			}
			// 增量需要额外预留,减量把差额还回库存
			if delta > 0 && !locked.CanReserve(delta) {
				return inventory.NewInsufficientError(locked.Quantity, delta)
			}
			if err := uc.stockRepo.UpdateQuantity(txCtx, locked.ID, -delta); err != nil {
				return err
			}
		}

		// 聚合内的同一条明细一并更新,保证小计重算基于新数量
		target, ok := o.FindItem(item.ID)
		if !ok {
			return order.ErrLineItemNotFound
		}
		if err := target.ChangeQuantity(req.NewQuantity); err != nil {
			return err
		}
		if err := uc.orderRepo.SaveItem(txCtx, target); err != nil {
			return err
		}

		o.RecomputeSubTotal()
		return uc.orderRepo.Update(txCtx, o)
	})
	if err != nil {
		metrics.OrderLineItemOpsTotal.WithLabelValues("update", "failure").Inc()
		if apperrors.IsKind(err, apperrors.KindInsufficientInventory) {
			metrics.ReservationFailuresTotal.Inc()
		}
		return nil, err
	}

	item, _ = o.FindItem(item.ID)
	metrics.OrderLineItemOpsTotal.WithLabelValues("update", "success").Inc()
	return &UpdateLineItemResponse{
		LineItemID:  item.ID,
		OldQuantity: oldQuantity,
		NewQuantity: item.Quantity,
		FinalPrice:  item.FinalPrice.String(),
		SubTotal:    o.SubTotal.String(),
		Total:       o.TotalAmount.String(),
	}, nil
}
