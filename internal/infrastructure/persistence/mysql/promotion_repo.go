package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lekimlong/evdealer/internal/domain/promotion"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// promotionRepository 促销仓储实现(MySQL)
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository 创建促销仓储
func NewPromotionRepository(db *gorm.DB) promotion.Repository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) Create(ctx context.Context, p *promotion.Promotion) error {
	model := toPromotionModel(p)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建促销失败")
	}
	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *promotionRepository) FindByID(ctx context.Context, id uint) (*promotion.Promotion, error) {
	var model PromotionModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, promotion.ErrPromotionNotFound
		}
		return nil, apperrors.Wrap(err, "查询促销失败")
	}
	return toPromotionEntity(&model), nil
}

func (r *promotionRepository) ListByDealer(ctx context.Context, dealerID uint) ([]*promotion.Promotion, error) {
	var models []PromotionModel
	err := getDB(ctx, r.db).
		Where("dealer_id = ?", dealerID).
		Order("start_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询促销列表失败")
	}
	return toPromotionEntities(models), nil
}

func (r *promotionRepository) ListAll(ctx context.Context) ([]*promotion.Promotion, error) {
	var models []PromotionModel
	if err := getDB(ctx, r.db).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询促销列表失败")
	}
	return toPromotionEntities(models), nil
}

func (r *promotionRepository) UpdateStatus(ctx context.Context, id uint, status promotion.Status) error {
	result := getDB(ctx, r.db).Model(&PromotionModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新促销状态失败")
	}
	return nil
}

func toPromotionModel(p *promotion.Promotion) *PromotionModel {
	return &PromotionModel{
		ID:        p.ID,
		DealerID:  p.DealerID,
		Name:      p.Name,
		Type:      string(p.Type),
		Value:     p.Value,
		Status:    string(p.Status),
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
	}
}

func toPromotionEntity(model *PromotionModel) *promotion.Promotion {
	return &promotion.Promotion{
		ID:        model.ID,
		DealerID:  model.DealerID,
		Name:      model.Name,
		Type:      promotion.Type(model.Type),
		Value:     model.Value,
		Status:    promotion.Status(model.Status),
		StartDate: model.StartDate,
		EndDate:   model.EndDate,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func toPromotionEntities(models []PromotionModel) []*promotion.Promotion {
	out := make([]*promotion.Promotion, len(models))
	for i := range models {
		out[i] = toPromotionEntity(&models[i])
	}
	return out
}
