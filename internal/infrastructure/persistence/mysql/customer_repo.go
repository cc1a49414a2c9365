package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lekimlong/evdealer/internal/domain/customer"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// customerRepository 客户仓储实现(MySQL)
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓储
func NewCustomerRepository(db *gorm.DB) customer.Repository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := toCustomerModel(c)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建客户失败")
	}
	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model CustomerModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(err, "查询客户失败")
	}
	return toCustomerEntity(&model), nil
}

func (r *customerRepository) ListByDealer(ctx context.Context, dealerID uint, page, pageSize int) ([]*customer.Customer, int64, error) {
	db := getDB(ctx, r.db)
	query := db.Model(&CustomerModel{}).Where("dealer_id = ?", dealerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询客户总数失败")
	}

	var models []CustomerModel
	err := query.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询客户列表失败")
	}

	customers := make([]*customer.Customer, len(models))
	for i := range models {
		customers[i] = toCustomerEntity(&models[i])
	}
	return customers, total, nil
}

func toCustomerModel(c *customer.Customer) *CustomerModel {
	return &CustomerModel{
		ID:       c.ID,
		DealerID: c.DealerID,
		FullName: c.FullName,
		Phone:    c.Phone,
		Email:    c.Email,
		Address:  c.Address,
	}
}

func toCustomerEntity(model *CustomerModel) *customer.Customer {
	return &customer.Customer{
		ID:        model.ID,
		DealerID:  model.DealerID,
		FullName:  model.FullName,
		Phone:     model.Phone,
		Email:     model.Email,
		Address:   model.Address,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
