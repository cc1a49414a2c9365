package inventory

import (
	"context"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/inventory"
	"github.com/lekimlong/evdealer/internal/domain/order"
)

// QueryUseCase 库存查询用例
type QueryUseCase struct {
	stockRepo inventory.Repository
}

// NewQueryUseCase 创建库存查询用例
func NewQueryUseCase(stockRepo inventory.Repository) *QueryUseCase {
	return &QueryUseCase{stockRepo: stockRepo}
}

// StockView 库存行视图
type StockView struct {
	StockID   uint   `json:"stock_id"`
	VariantID uint   `json:"variant_id"`
	ColorID   uint   `json:"color_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Status    string `json:"status"`
}

// List 分页查询本经销商的库存台账
func (uc *QueryUseCase) List(ctx context.Context, caller identity.Caller, page, pageSize int) ([]*StockView, int64, error) {
	if !caller.Role.IsDealerSide() {
		return nil, 0, order.ErrAccessDenied
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	stocks, total, err := uc.stockRepo.ListByDealer(ctx, caller.DealerID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	views := make([]*StockView, len(stocks))
	for i, s := range stocks {
		views[i] = &StockView{
			StockID:   s.ID,
			VariantID: s.VariantID,
			ColorID:   s.ColorID,
			Quantity:  s.Quantity,
			Price:     s.DealerPrice.String(),
			Status:    string(s.Status),
		}
	}
	return views, total, nil
}
