package dealer

import (
	"context"
	"time"

	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// Dealer 经销商（销售门店）
// 库存行、订单、促销都归属一个经销商
type Dealer struct {
	ID        uint
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ErrDealerNotFound 经销商不存在
var ErrDealerNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeDealerNotFound, "经销商不存在")

// Repository 经销商仓储接口
type Repository interface {
	Create(ctx context.Context, d *Dealer) error
	FindByID(ctx context.Context, id uint) (*Dealer, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]*Dealer, error)
}
