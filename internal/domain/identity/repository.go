package identity

import (
	"context"
)

// Repository 用户仓储接口(依赖倒置:domain层定义接口,infrastructure层实现)
type Repository interface {
	// Create 创建用户
	Create(ctx context.Context, u *User) error

	// FindByID 根据ID查找用户
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail 根据邮箱查找用户（登录用）
	FindByEmail(ctx context.Context, email string) (*User, error)
}
