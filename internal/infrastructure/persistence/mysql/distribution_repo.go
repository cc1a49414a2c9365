package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lekimlong/evdealer/internal/domain/distribution"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// distributionRepository 调拨申请仓储实现(MySQL)
type distributionRepository struct {
	db *gorm.DB
}

// NewDistributionRepository 创建调拨申请仓储
func NewDistributionRepository(db *gorm.DB) distribution.Repository {
	return &distributionRepository{db: db}
}

func (r *distributionRepository) Create(ctx context.Context, req *distribution.Request) error {
	model := toRequestModel(req)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建调拨申请失败")
	}
	req.ID = model.ID
	req.CreatedAt = model.CreatedAt
	req.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *distributionRepository) FindByID(ctx context.Context, id uint) (*distribution.Request, error) {
	var model DistributionRequestModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, distribution.ErrRequestNotFound
		}
		return nil, apperrors.Wrap(err, "查询调拨申请失败")
	}
	return toRequestEntity(&model), nil
}

func (r *distributionRepository) Update(ctx context.Context, req *distribution.Request) error {
	updates := map[string]interface{}{
		"status": string(req.Status),
		"reason": req.Reason,
	}
	result := getDB(ctx, r.db).Model(&DistributionRequestModel{}).Where("id = ?", req.ID).Updates(updates)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新调拨申请失败")
	}
	return nil
}

func (r *distributionRepository) ListByDealer(ctx context.Context, dealerID uint) ([]*distribution.Request, error) {
	var models []DistributionRequestModel
	err := getDB(ctx, r.db).
		Where("dealer_id = ?", dealerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询调拨申请列表失败")
	}
	return toRequestEntities(models), nil
}

func (r *distributionRepository) ListByStatus(ctx context.Context, status distribution.Status) ([]*distribution.Request, error) {
	var models []DistributionRequestModel
	err := getDB(ctx, r.db).
		Where("status = ?", string(status)).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询调拨申请列表失败")
	}
	return toRequestEntities(models), nil
}

func toRequestModel(req *distribution.Request) *DistributionRequestModel {
	return &DistributionRequestModel{
		ID:        req.ID,
		DealerID:  req.DealerID,
		VariantID: req.VariantID,
		ColorID:   req.ColorID,
		Quantity:  req.Quantity,
		Status:    string(req.Status),
		Reason:    req.Reason,
	}
}

func toRequestEntity(model *DistributionRequestModel) *distribution.Request {
	return &distribution.Request{
		ID:        model.ID,
		DealerID:  model.DealerID,
		VariantID: model.VariantID,
		ColorID:   model.ColorID,
		Quantity:  model.Quantity,
		Status:    distribution.Status(model.Status),
		Reason:    model.Reason,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func toRequestEntities(models []DistributionRequestModel) []*distribution.Request {
	out := make([]*distribution.Request, len(models))
	for i := range models {
		out[i] = toRequestEntity(&models[i])
	}
	return out
}

// factoryStockRepository 厂商库存仓储实现(MySQL)
// UpdateQuantity与经销商库存同一套路:带条件的原子UPDATE防超卖
type factoryStockRepository struct {
	db *gorm.DB
}

// NewFactoryStockRepository 创建厂商库存仓储
func NewFactoryStockRepository(db *gorm.DB) distribution.FactoryStockRepository {
	return &factoryStockRepository{db: db}
}

func (r *factoryStockRepository) FindByConfig(ctx context.Context, variantID, colorID uint) (*distribution.FactoryStock, error) {
	var model FactoryStockModel
	err := getDB(ctx, r.db).
		Where("variant_id = ? AND color_id = ?", variantID, colorID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, distribution.ErrFactoryStockNotFound
		}
		return nil, apperrors.Wrap(err, "查询厂商库存失败")
	}
	return toFactoryStockEntity(&model), nil
}

func (r *factoryStockRepository) UpdateQuantity(ctx context.Context, id uint, delta int) error {
	result := getDB(ctx, r.db).Model(&FactoryStockModel{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新厂商库存失败")
	}
	if result.RowsAffected == 0 {
		var model FactoryStockModel
		if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return distribution.ErrFactoryStockNotFound
			}
			return apperrors.Wrap(err, "查询厂商库存失败")
		}
		return distribution.ErrInsufficientFactoryStock
	}
	return nil
}

func (r *factoryStockRepository) List(ctx context.Context) ([]*distribution.FactoryStock, error) {
	var models []FactoryStockModel
	err := getDB(ctx, r.db).Order("variant_id ASC, color_id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询厂商库存列表失败")
	}
	out := make([]*distribution.FactoryStock, len(models))
	for i := range models {
		out[i] = toFactoryStockEntity(&models[i])
	}
	return out, nil
}

func toFactoryStockEntity(model *FactoryStockModel) *distribution.FactoryStock {
	return &distribution.FactoryStock{
		ID:        model.ID,
		VariantID: model.VariantID,
		ColorID:   model.ColorID,
		Quantity:  model.Quantity,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
