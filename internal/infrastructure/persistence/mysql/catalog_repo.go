package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lekimlong/evdealer/internal/domain/catalog"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// catalogRepository 车型目录仓储实现(MySQL)
//
// 设计说明:
// - 按名称查找走LOWER()比较,保证大小写不敏感不依赖表的collation
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository 创建车型目录仓储
func NewCatalogRepository(db *gorm.DB) catalog.Repository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateModel(ctx context.Context, m *catalog.VehicleModel) error {
	model := &VehicleModelModel{Name: m.Name, Description: m.Description}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "创建车型失败")
	}
	m.ID = model.ID
	m.CreatedAt = model.CreatedAt
	m.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *catalogRepository) CreateVariant(ctx context.Context, v *catalog.Variant) error {
	model := &VariantModel{
		ModelID:    v.ModelID,
		Name:       v.Name,
		BatteryKWh: v.BatteryKWh,
		RangeKm:    v.RangeKm,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "创建车型版本失败")
	}
	v.ID = model.ID
	v.CreatedAt = model.CreatedAt
	v.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *catalogRepository) CreateColor(ctx context.Context, c *catalog.Color) error {
	model := &ColorModel{Name: c.Name, HexCode: c.HexCode}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "创建颜色失败")
	}
	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *catalogRepository) FindModelByID(ctx context.Context, id uint) (*catalog.VehicleModel, error) {
	var model VehicleModelModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrModelNotFound
		}
		return nil, apperrors.Wrap(err, "查询车型失败")
	}
	return toVehicleModelEntity(&model), nil
}

func (r *catalogRepository) FindVariantByName(ctx context.Context, modelName, variantName string) (*catalog.Variant, error) {
	var model VariantModel
	err := getDB(ctx, r.db).
		Joins("JOIN vehicle_models ON vehicle_models.id = variants.model_id").
		Where("LOWER(vehicle_models.name) = LOWER(?) AND LOWER(variants.name) = LOWER(?)", modelName, variantName).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrVariantNotFound
		}
		return nil, apperrors.Wrap(err, "查询车型版本失败")
	}
	return toVariantEntity(&model), nil
}

func (r *catalogRepository) FindColorByName(ctx context.Context, name string) (*catalog.Color, error) {
	var model ColorModel
	err := getDB(ctx, r.db).Where("LOWER(name) = LOWER(?)", name).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrColorNotFound
		}
		return nil, apperrors.Wrap(err, "查询颜色失败")
	}
	return toColorEntity(&model), nil
}

func (r *catalogRepository) ListModels(ctx context.Context) ([]*catalog.VehicleModel, error) {
	var models []VehicleModelModel
	if err := getDB(ctx, r.db).Order("name ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询车型列表失败")
	}
	out := make([]*catalog.VehicleModel, len(models))
	for i := range models {
		out[i] = toVehicleModelEntity(&models[i])
	}
	return out, nil
}

func (r *catalogRepository) ListVariantsByModel(ctx context.Context, modelID uint) ([]*catalog.Variant, error) {
	var models []VariantModel
	err := getDB(ctx, r.db).Where("model_id = ?", modelID).Order("name ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询版本列表失败")
	}
	out := make([]*catalog.Variant, len(models))
	for i := range models {
		out[i] = toVariantEntity(&models[i])
	}
	return out, nil
}

func (r *catalogRepository) ListColors(ctx context.Context) ([]*catalog.Color, error) {
	var models []ColorModel
	if err := getDB(ctx, r.db).Order("name ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询颜色列表失败")
	}
	out := make([]*catalog.Color, len(models))
	for i := range models {
		out[i] = toColorEntity(&models[i])
	}
	return out, nil
}

func toVehicleModelEntity(model *VehicleModelModel) *catalog.VehicleModel {
	return &catalog.VehicleModel{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func toVariantEntity(model *VariantModel) *catalog.Variant {
	return &catalog.Variant{
		ID:         model.ID,
		ModelID:    model.ModelID,
		Name:       model.Name,
		BatteryKWh: model.BatteryKWh,
		RangeKm:    model.RangeKm,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func toColorEntity(model *ColorModel) *catalog.Color {
	return &catalog.Color{
		ID:        model.ID,
		Name:      model.Name,
		HexCode:   model.HexCode,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
