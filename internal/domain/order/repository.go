package order

import "context"

// Repository 订单仓储接口
//
// 设计说明:
// - 订单和明细作为一个聚合持久化:FindByID 总是带出全部明细,
//   SaveItem/DeleteItem 只在应用层持有聚合的前提下调用
type Repository interface {
	// Create 创建订单(草稿)
	Create(ctx context.Context, o *Order) error

	// FindByID 根据ID查找订单,携带全部明细
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindItemByID 根据明细ID查找明细
	FindItemByID(ctx context.Context, itemID uint) (*LineItem, error)

	// Update 更新订单头(状态、金额、支付方式、促销)
	Update(ctx context.Context, o *Order) error

	// SaveItem 新增或更新一条明细
	SaveItem(ctx context.Context, li *LineItem) error

	// DeleteItem 删除一条明细
	DeleteItem(ctx context.Context, itemID uint) error

	// ListByDealer 分页查询经销商的订单(不带明细)
	ListByDealer(ctx context.Context, dealerID uint, page, pageSize int) ([]*Order, int64, error)
}
