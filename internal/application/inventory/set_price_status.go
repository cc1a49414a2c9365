package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/inventory"
	"github.com/lekimlong/evdealer/internal/domain/order"
)

// SetPriceStatusUseCase 定价/上下架用例
type SetPriceStatusUseCase struct {
	stockRepo inventory.Repository
}

// NewSetPriceStatusUseCase 创建定价用例
func NewSetPriceStatusUseCase(stockRepo inventory.Repository) *SetPriceStatusUseCase {
	return &SetPriceStatusUseCase{stockRepo: stockRepo}
}

// SetPriceStatusRequest 定价/改状态请求,两个字段都可选
type SetPriceStatusRequest struct {
	StockID uint
	Price   *decimal.Decimal
	Status  *string
}

// SetPriceStatusResponse 定价响应
type SetPriceStatusResponse struct {
	StockID uint   `json:"stock_id"`
	Price   string `json:"price"`
	Status  string `json:"status"`
}

// Execute 修改售价与上架状态
//
// 业务规则:
// 1. 仅店长(DealerManager)可定价,销售无权修改
// 2. 调价不影响已有订单明细——明细持有的是创建时的快照价
func (uc *SetPriceStatusUseCase) Execute(ctx context.Context, caller identity.Caller, req SetPriceStatusRequest) (*SetPriceStatusResponse, error) {
	s, err := uc.stockRepo.FindByID(ctx, req.StockID)
	if err != nil {
		return nil, err
	}
	if caller.Role != identity.RoleDealerManager || !caller.OwnsDealer(s.DealerID) {
		return nil, order.ErrAccessDenied
	}

	if req.Price != nil && req.Price.IsNegative() {
		return nil, inventory.ErrInvalidPrice
	}
	var status *inventory.StockStatus
	if req.Status != nil {
		parsed, ok := inventory.ParseStockStatus(*req.Status)
		if !ok {
			return nil, inventory.ErrInvalidStatus
		}
		status = &parsed
	}

	if err := uc.stockRepo.UpdatePriceAndStatus(ctx, s.ID, req.Price, status); err != nil {
		return nil, err
	}

	if req.Price != nil {
		s.DealerPrice = *req.Price
	}
	if status != nil {
		s.Status = *status
	}
	return &SetPriceStatusResponse{
		StockID: s.ID,
		Price:   s.DealerPrice.String(),
		Status:  string(s.Status),
	}, nil
}
