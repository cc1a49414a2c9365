package payment

import "context"

// Repository 支付记录仓储接口
type Repository interface {
	// Create 创建支付记录
	Create(ctx context.Context, p *Payment) error

	// FindByID 根据ID查找支付记录
	FindByID(ctx context.Context, id uint) (*Payment, error)

	// ListByOrder 查询订单的全部支付记录（按支付日期升序）
	ListByOrder(ctx context.Context, orderID uint) ([]*Payment, error)

	// Update 更新支付记录(方式/状态/备注)
	Update(ctx context.Context, p *Payment) error

	// Delete 删除支付记录
	Delete(ctx context.Context, id uint) error
}
