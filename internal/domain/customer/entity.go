package customer

import (
	"context"
	"time"

	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// Customer 客户
// 由经销商销售录入；订单创建前必须已存在客户记录
type Customer struct {
	ID        uint
	DealerID  uint // 录入该客户的经销商
	FullName  string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ErrCustomerNotFound 客户不存在
var ErrCustomerNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeCustomerNotFound, "客户不存在")

// Repository 客户仓储接口
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id uint) (*Customer, error)

	// ListByDealer 分页查询经销商的客户列表
	ListByDealer(ctx context.Context, dealerID uint, page, pageSize int) ([]*Customer, int64, error)
}
