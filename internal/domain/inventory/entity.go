package inventory

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus 库存配置销售状态
// 设计说明：收敛为封闭枚举，入口处一次性解析，
// 消除旧系统里到处做字符串比较的隐患
type StockStatus string

const (
	StockStatusPending StockStatus = "Pending" // 待定价（新配置入库后的初始状态）
	StockStatusOnSale  StockStatus = "OnSale"  // 在售
	StockStatusSold    StockStatus = "Sold"    // 停售/售罄
)

// ParseStockStatus 解析状态字符串（大小写不敏感）
func ParseStockStatus(s string) (StockStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StockStatusPending, true
	case "onsale":
		return StockStatusOnSale, true
	case "sold":
		return StockStatusSold, true
	default:
		return "", false
	}
}

// DealerStock 经销商库存行（库存台账的一行）
//
// 业务键是(DealerID, VariantID, ColorID)：每个经销商的每种
// 版本+颜色组合一行。ID是代理键（即订单明细引用的carId）。
//
// 不变式：
// 1. Quantity >= 0 恒成立（预留只能在事务内通过行锁校验后扣减）
// 2. 新配置入库时 DealerPrice=0、Status=Pending，由店长后续定价上架
type DealerStock struct {
	ID          uint
	DealerID    uint
	VariantID   uint
	ColorID     uint
	Quantity    int
	DealerPrice decimal.Decimal // 经销商售价（订单明细创建时快照）
	Status      StockStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewDealerStock 新配置入库（工厂方法）
// 价格0、状态Pending，数量由首次入库量决定
func NewDealerStock(dealerID, variantID, colorID uint, quantity int) *DealerStock {
	now := time.Now()
	return &DealerStock{
		DealerID:    dealerID,
		VariantID:   variantID,
		ColorID:     colorID,
		Quantity:    quantity,
		DealerPrice: decimal.Zero,
		Status:      StockStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CanReserve 判断是否可以预留指定数量
func (s *DealerStock) CanReserve(quantity int) bool {
	return quantity > 0 && s.Quantity >= quantity
}
