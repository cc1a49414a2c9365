// Package dealer 经销商管理用例
// 注册经销商侧账号前必须先由厂商侧建好经销商档案
package dealer

import (
	"context"
	"strings"

	"github.com/lekimlong/evdealer/internal/domain/dealer"
	"github.com/lekimlong/evdealer/internal/domain/identity"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// UseCase 经销商管理用例
type UseCase struct {
	dealerRepo dealer.Repository
}

// NewUseCase 创建经销商管理用例
func NewUseCase(dealerRepo dealer.Repository) *UseCase {
	return &UseCase{dealerRepo: dealerRepo}
}

// CreateDealerRequest 创建经销商请求
type CreateDealerRequest struct {
	Name    string
	Address string
	Phone   string
}

// DealerView 经销商视图
type DealerView struct {
	DealerID uint   `json:"dealer_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// Create 创建经销商,仅厂商侧可操作
func (uc *UseCase) Create(ctx context.Context, caller identity.Caller, req CreateDealerRequest) (*DealerView, error) {
	if caller.Role != identity.RoleAdmin && caller.Role != identity.RoleEVMStaff {
		return nil, apperrors.ErrForbidden
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "经销商名称不能为空")
	}

	d := &dealer.Dealer{
		Name:    strings.TrimSpace(req.Name),
		Address: req.Address,
		Phone:   req.Phone,
	}
	if err := uc.dealerRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toView(d), nil
}

// Get 经销商详情
func (uc *UseCase) Get(ctx context.Context, dealerID uint) (*DealerView, error) {
	d, err := uc.dealerRepo.FindByID(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	return toView(d), nil
}

// List 经销商列表
func (uc *UseCase) List(ctx context.Context) ([]*DealerView, error) {
	dealers, err := uc.dealerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*DealerView, len(dealers))
	for i, d := range dealers {
		views[i] = toView(d)
	}
	return views, nil
}

func toView(d *dealer.Dealer) *DealerView {
	return &DealerView{
		DealerID: d.ID,
		Name:     d.Name,
		Address:  d.Address,
		Phone:    d.Phone,
	}
}
