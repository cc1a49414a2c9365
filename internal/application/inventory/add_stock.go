package inventory

import (
	"context"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/inventory"
	"github.com/lekimlong/evdealer/internal/domain/order"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// Transactor 事务边界(与订单用例包各自声明,实现同为mysql.TxManager)
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AddStockUseCase 经销商入库用例
type AddStockUseCase struct {
	stockRepo inventory.Repository
	tx        Transactor
}

// NewAddStockUseCase 创建入库用例
func NewAddStockUseCase(stockRepo inventory.Repository, tx Transactor) *AddStockUseCase {
	return &AddStockUseCase{stockRepo: stockRepo, tx: tx}
}

// AddStockRequest 入库请求
type AddStockRequest struct {
	VariantID uint
	ColorID   uint
	Quantity  int
}

// AddStockResponse 入库响应
type AddStockResponse struct {
	StockID  uint   `json:"stock_id"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

// Execute 入库:已有配置累加数量,新配置建行(价格0、状态Pending待定价)
//
// 与订单预留共用同一把行锁,入库和卖车对同一行的并发修改串行化
func (uc *AddStockUseCase) Execute(ctx context.Context, caller identity.Caller, req AddStockRequest) (*AddStockResponse, error) {
	if !caller.Role.IsDealerSide() {
		return nil, order.ErrAccessDenied
	}
	if req.Quantity <= 0 {
		return nil, inventory.ErrInvalidQuantity
	}

	var result *inventory.DealerStock
	err := uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.stockRepo.FindByConfig(txCtx, caller.DealerID, req.VariantID, req.ColorID)
		if err != nil {
			if !apperrors.IsKind(err, apperrors.KindNotFound) {
				return err
			}
			// 新配置入库
			s := inventory.NewDealerStock(caller.DealerID, req.VariantID, req.ColorID, req.Quantity)
			if err := uc.stockRepo.Create(txCtx, s); err != nil {
				return err
			}
			result = s
			return nil
		}

		locked, err := uc.stockRepo.LockByID(txCtx, existing.ID)
		if err != nil {
			return err
		}
		if err := uc.stockRepo.UpdateQuantity(txCtx, locked.ID, req.Quantity); err != nil {
			return err
		}
		locked.Quantity += req.Quantity
		result = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AddStockResponse{
		StockID:  result.ID,
		Quantity: result.Quantity,
		Status:   string(result.Status),
	}, nil
}
