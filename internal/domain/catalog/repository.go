package catalog

import "context"

// Repository 车型目录仓储接口
// AddLineItem按名称解析配置时使用FindVariantByName/FindColorByName
type Repository interface {
	// CreateModel 创建车型
	CreateModel(ctx context.Context, m *VehicleModel) error

	// CreateVariant 创建车型版本
	CreateVariant(ctx context.Context, v *Variant) error

	// CreateColor 创建颜色
	CreateColor(ctx context.Context, c *Color) error

	// FindModelByID 根据ID查找车型
	FindModelByID(ctx context.Context, id uint) (*VehicleModel, error)

	// FindVariantByName 按车型名+版本名查找版本（名称匹配大小写不敏感）
	FindVariantByName(ctx context.Context, modelName, variantName string) (*Variant, error)

	// FindColorByName 按颜色名查找颜色（名称匹配大小写不敏感）
	FindColorByName(ctx context.Context, name string) (*Color, error)

	// ListModels 查询所有车型
	ListModels(ctx context.Context) ([]*VehicleModel, error)

	// ListVariantsByModel 查询车型下的所有版本
	ListVariantsByModel(ctx context.Context, modelID uint) ([]*Variant, error)

	// ListColors 查询所有颜色
	ListColors(ctx context.Context) ([]*Color, error)
}
