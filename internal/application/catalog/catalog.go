package catalog

import (
	"context"

	"github.com/lekimlong/evdealer/internal/domain/catalog"
	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/order"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// UseCase 车型目录用例
// 目录由厂商维护;经销商和销售只读
type UseCase struct {
	catalogRepo catalog.Repository
}

// NewUseCase 创建车型目录用例
func NewUseCase(catalogRepo catalog.Repository) *UseCase {
	return &UseCase{catalogRepo: catalogRepo}
}

// CreateModelRequest 创建车型请求
type CreateModelRequest struct {
	Name        string
	Description string
}

// CreateVariantRequest 创建版本请求
type CreateVariantRequest struct {
	ModelID    uint
	Name       string
	BatteryKWh float64
	RangeKm    int
}

// CreateColorRequest 创建颜色请求
type CreateColorRequest struct {
	Name    string
	HexCode string
}

// ModelView 车型视图
type ModelView struct {
	ModelID     uint   `json:"model_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// VariantView 版本视图
type VariantView struct {
	VariantID  uint    `json:"variant_id"`
	ModelID    uint    `json:"model_id"`
	Name       string  `json:"name"`
	BatteryKWh float64 `json:"battery_kwh"`
	RangeKm    int     `json:"range_km"`
}

// ColorView 颜色视图
type ColorView struct {
	ColorID uint   `json:"color_id"`
	Name    string `json:"name"`
	HexCode string `json:"hex_code"`
}

func (uc *UseCase) requireEVM(caller identity.Caller) error {
	if caller.Role != identity.RoleEVMStaff && caller.Role != identity.RoleAdmin {
		return order.ErrAccessDenied
	}
	return nil
}

// CreateModel 创建车型(厂商侧)
func (uc *UseCase) CreateModel(ctx context.Context, caller identity.Caller, req CreateModelRequest) (*ModelView, error) {
	if err := uc.requireEVM(caller); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "车型名称不能为空")
	}
	m := &catalog.VehicleModel{Name: req.Name, Description: req.Description}
	if err := uc.catalogRepo.CreateModel(ctx, m); err != nil {
		return nil, err
	}
	return &ModelView{ModelID: m.ID, Name: m.Name, Description: m.Description}, nil
}

// CreateVariant 创建车型版本(厂商侧)
func (uc *UseCase) CreateVariant(ctx context.Context, caller identity.Caller, req CreateVariantRequest) (*VariantView, error) {
	if err := uc.requireEVM(caller); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "版本名称不能为空")
	}
	if _, err := uc.catalogRepo.FindModelByID(ctx, req.ModelID); err != nil {
		return nil, err
	}
	v := &catalog.Variant{
		ModelID:    req.ModelID,
		Name:       req.Name,
		BatteryKWh: req.BatteryKWh,
		RangeKm:    req.RangeKm,
	}
	if err := uc.catalogRepo.CreateVariant(ctx, v); err != nil {
		return nil, err
	}
	return toVariantView(v), nil
}

// CreateColor 创建颜色(厂商侧)
func (uc *UseCase) CreateColor(ctx context.Context, caller identity.Caller, req CreateColorRequest) (*ColorView, error) {
	if err := uc.requireEVM(caller); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "颜色名称不能为空")
	}
	c := &catalog.Color{Name: req.Name, HexCode: req.HexCode}
	if err := uc.catalogRepo.CreateColor(ctx, c); err != nil {
		return nil, err
	}
	return &ColorView{ColorID: c.ID, Name: c.Name, HexCode: c.HexCode}, nil
}

// ListModels 查询所有车型(各角色可读)
func (uc *UseCase) ListModels(ctx context.Context) ([]*ModelView, error) {
	models, err := uc.catalogRepo.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*ModelView, len(models))
	for i, m := range models {
		views[i] = &ModelView{ModelID: m.ID, Name: m.Name, Description: m.Description}
	}
	return views, nil
}

// ListVariants 查询车型下的版本
func (uc *UseCase) ListVariants(ctx context.Context, modelID uint) ([]*VariantView, error) {
	if _, err := uc.catalogRepo.FindModelByID(ctx, modelID); err != nil {
		return nil, err
	}
	variants, err := uc.catalogRepo.ListVariantsByModel(ctx, modelID)
	if err != nil {
		return nil, err
	}
	views := make([]*VariantView, len(variants))
	for i, v := range variants {
		views[i] = toVariantView(v)
	}
	return views, nil
}

// ListColors 查询所有颜色
func (uc *UseCase) ListColors(ctx context.Context) ([]*ColorView, error) {
	colors, err := uc.catalogRepo.ListColors(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*ColorView, len(colors))
	for i, c := range colors {
		views[i] = &ColorView{ColorID: c.ID, Name: c.Name, HexCode: c.HexCode}
	}
	return views, nil
}

func toVariantView(v *catalog.Variant) *VariantView {
	return &VariantView{
		VariantID:  v.ID,
		ModelID:    v.ModelID,
		Name:       v.Name,
		BatteryKWh: v.BatteryKWh,
		RangeKm:    v.RangeKm,
	}
}
