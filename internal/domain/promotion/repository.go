package promotion

import "context"

// Repository 促销仓储接口
type Repository interface {
	// Create 创建促销
	Create(ctx context.Context, p *Promotion) error

	// FindByID 根据ID查找促销
	FindByID(ctx context.Context, id uint) (*Promotion, error)

	// ListByDealer 查询经销商的促销列表
	ListByDealer(ctx context.Context, dealerID uint) ([]*Promotion, error)

	// ListAll 查询所有促销（定时任务刷新状态用）
	ListAll(ctx context.Context) ([]*Promotion, error)

	// UpdateStatus 更新促销状态
	UpdateStatus(ctx context.Context, id uint, status Status) error
}
