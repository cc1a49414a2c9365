package inventory

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository 库存仓储接口
//
// 并发约束：同一库存行的预留/释放/入库必须串行化。
// 实现方式：LockByID用SELECT FOR UPDATE锁行，UpdateQuantity用
// 带WHERE quantity + ? >= 0的原子UPDATE，两者都必须在事务内调用
// （事务DB通过context传递，见mysql.TxManager）。
type Repository interface {
	// Create 创建库存行（新配置入库）
	Create(ctx context.Context, s *DealerStock) error

	// FindByID 根据ID查找库存行
	FindByID(ctx context.Context, id uint) (*DealerStock, error)

	// FindByConfig 根据业务键(dealer, variant, color)查找库存行
	FindByConfig(ctx context.Context, dealerID, variantID, colorID uint) (*DealerStock, error)

	// LockByID 悲观锁查询库存行（SELECT FOR UPDATE，必须在事务内）
	LockByID(ctx context.Context, id uint) (*DealerStock, error)

	// UpdateQuantity 原子更新数量（delta可正可负，内部保证不为负）
	// 数量不足时返回携带可用/请求数量的InsufficientInventory错误
	UpdateQuantity(ctx context.Context, id uint, delta int) error

	// UpdatePriceAndStatus 部分更新价格/状态（nil字段不更新）
	UpdatePriceAndStatus(ctx context.Context, id uint, price *decimal.Decimal, status *StockStatus) error

	// ListByDealer 分页查询经销商库存
	ListByDealer(ctx context.Context, dealerID uint, page, pageSize int) ([]*DealerStock, int64, error)
}
