package distribution

import "context"

// Repository 调拨申请仓储接口
type Repository interface {
	// Create 创建调拨申请
	Create(ctx context.Context, r *Request) error

	// FindByID 根据ID查找调拨申请
	FindByID(ctx context.Context, id uint) (*Request, error)

	// Update 更新申请(状态与原因)
	Update(ctx context.Context, r *Request) error

	// ListByDealer 查询经销商的调拨申请
	ListByDealer(ctx context.Context, dealerID uint) ([]*Request, error)

	// ListByStatus 按状态查询(厂商审批待办列表)
	ListByStatus(ctx context.Context, status Status) ([]*Request, error)
}

// FactoryStockRepository 厂商库存仓储接口
//
// 设计说明:
// - 厂商库存与经销商库存分开建模:厂商侧只有(车型配置,颜色)维度,
//   没有定价与上架状态
type FactoryStockRepository interface {
	// FindByConfig 按配置查找厂商库存
	FindByConfig(ctx context.Context, variantID, colorID uint) (*FactoryStock, error)

	// UpdateQuantity 原子增减厂商库存,delta可为负
	UpdateQuantity(ctx context.Context, id uint, delta int) error

	// List 查询全部厂商库存
	List(ctx context.Context) ([]*FactoryStock, error)
}
