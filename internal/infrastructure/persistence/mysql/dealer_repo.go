package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lekimlong/evdealer/internal/domain/dealer"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// dealerRepository 经销商仓储实现(MySQL)
type dealerRepository struct {
	db *gorm.DB
}

// NewDealerRepository 创建经销商仓储
func NewDealerRepository(db *gorm.DB) dealer.Repository {
	return &dealerRepository{db: db}
}

func (r *dealerRepository) Create(ctx context.Context, d *dealer.Dealer) error {
	model := &DealerModel{Name: d.Name, Address: d.Address, Phone: d.Phone}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeDuplicateEntry, "经销商名称已存在")
		}
		return apperrors.Wrap(err, "创建经销商失败")
	}
	d.ID = model.ID
	d.CreatedAt = model.CreatedAt
	d.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *dealerRepository) FindByID(ctx context.Context, id uint) (*dealer.Dealer, error) {
	var model DealerModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dealer.ErrDealerNotFound
		}
		return nil, apperrors.Wrap(err, "查询经销商失败")
	}
	return toDealerEntity(&model), nil
}

func (r *dealerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := getDB(ctx, r.db).Model(&DealerModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询经销商失败")
	}
	return count > 0, nil
}

func (r *dealerRepository) List(ctx context.Context) ([]*dealer.Dealer, error) {
	var models []DealerModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询经销商列表失败")
	}
	dealers := make([]*dealer.Dealer, len(models))
	for i := range models {
		dealers[i] = toDealerEntity(&models[i])
	}
	return dealers, nil
}

func toDealerEntity(model *DealerModel) *dealer.Dealer {
	return &dealer.Dealer{
		ID:        model.ID,
		Name:      model.Name,
		Address:   model.Address,
		Phone:     model.Phone,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
