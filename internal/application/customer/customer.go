package customer

import (
	"context"

	"github.com/lekimlong/evdealer/internal/domain/customer"
	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/order"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// UseCase 客户管理用例(录入/查询)
type UseCase struct {
	customerRepo customer.Repository
}

// NewUseCase 创建客户管理用例
func NewUseCase(customerRepo customer.Repository) *UseCase {
	return &UseCase{customerRepo: customerRepo}
}

// CreateCustomerRequest 录入客户请求
type CreateCustomerRequest struct {
	FullName string
	Phone    string
	Email    string
	Address  string
}

// CustomerView 客户视图
type CustomerView struct {
	CustomerID uint   `json:"customer_id"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
}

// Create 录入客户,归属销售所在经销商
func (uc *UseCase) Create(ctx context.Context, caller identity.Caller, req CreateCustomerRequest) (*CustomerView, error) {
	if !caller.Role.IsDealerSide() {
		return nil, order.ErrAccessDenied
	}
	if req.FullName == "" || req.Phone == "" {
		return nil, apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "客户姓名和电话不能为空")
	}

	c := &customer.Customer{
		DealerID: caller.DealerID,
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
	}
	if err := uc.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerView(c), nil
}

// Get 查询单个客户,只能查本经销商的
func (uc *UseCase) Get(ctx context.Context, caller identity.Caller, customerID uint) (*CustomerView, error) {
	c, err := uc.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !caller.OwnsDealer(c.DealerID) {
		return nil, order.ErrAccessDenied
	}
	return toCustomerView(c), nil
}

// List 分页查询本经销商的客户
func (uc *UseCase) List(ctx context.Context, caller identity.Caller, page, pageSize int) ([]*CustomerView, int64, error) {
	if !caller.Role.IsDealerSide() {
		return nil, 0, order.ErrAccessDenied
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	customers, total, err := uc.customerRepo.ListByDealer(ctx, caller.DealerID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	views := make([]*CustomerView, len(customers))
	for i, c := range customers {
		views[i] = toCustomerView(c)
	}
	return views, total, nil
}

func toCustomerView(c *customer.Customer) *CustomerView {
	return &CustomerView{
		CustomerID: c.ID,
		FullName:   c.FullName,
		Phone:      c.Phone,
		Email:      c.Email,
		Address:    c.Address,
	}
}
