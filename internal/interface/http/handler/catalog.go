package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/lekimlong/evdealer/internal/application/catalog"
	"github.com/lekimlong/evdealer/internal/interface/http/dto"
	"github.com/lekimlong/evdealer/internal/interface/http/middleware"
	"github.com/lekimlong/evdealer/pkg/response"
)

// CatalogHandler 车型目录HTTP处理器
// 写操作限厂商侧角色,读操作所有登录用户可用
type CatalogHandler struct {
	useCase *appcatalog.UseCase
}

// NewCatalogHandler 创建车型目录处理器
func NewCatalogHandler(useCase *appcatalog.UseCase) *CatalogHandler {
	return &CatalogHandler{useCase: useCase}
}

// CreateModel 创建车型
// @Summary      创建车型
// @Tags         车型目录
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateModelRequest true "车型信息"
// @Success      200 {object} response.Response "创建成功"
// @Failure      403 {object} response.Response "仅厂商侧可操作"
// @Router       /catalog/models [post]
func (h *CatalogHandler) CreateModel(c *gin.Context) {
	var req dto.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.useCase.CreateModel(c.Request.Context(), middleware.GetCaller(c), appcatalog.CreateModelRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateVariant 创建车型版本
// @Summary      创建车型版本
// @Tags         车型目录
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateVariantRequest true "版本信息"
// @Success      200 {object} response.Response "创建成功"
// @Failure      404 {object} response.Response "车型不存在"
// @Router       /catalog/variants [post]
func (h *CatalogHandler) CreateVariant(c *gin.Context) {
	var req dto.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.useCase.CreateVariant(c.Request.Context(), middleware.GetCaller(c), appcatalog.CreateVariantRequest{
		ModelID:    req.ModelID,
		Name:       req.Name,
		BatteryKWh: req.BatteryKWh,
		RangeKm:    req.RangeKm,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateColor 创建颜色
// @Summary      创建颜色
// @Tags         车型目录
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateColorRequest true "颜色信息"
// @Success      200 {object} response.Response "创建成功"
// @Router       /catalog/colors [post]
func (h *CatalogHandler) CreateColor(c *gin.Context) {
	var req dto.CreateColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.useCase.CreateColor(c.Request.Context(), middleware.GetCaller(c), appcatalog.CreateColorRequest{
		Name:    req.Name,
		HexCode: req.HexCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListModels 车型列表
// @Summary      车型列表
// @Tags         车型目录
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "查询成功"
// @Router       /catalog/models [get]
func (h *CatalogHandler) ListModels(c *gin.Context) {
	result, err := h.useCase.ListModels(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListVariants 车型版本列表
// @Summary      车型版本列表
// @Tags         车型目录
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "车型ID"
// @Success      200 {object} response.Response "查询成功"
// @Router       /catalog/models/{id}/variants [get]
func (h *CatalogHandler) ListVariants(c *gin.Context) {
	modelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.useCase.ListVariants(c.Request.Context(), modelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListColors 颜色列表
// @Summary      颜色列表
// @Tags         车型目录
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "查询成功"
// @Router       /catalog/colors [get]
func (h *CatalogHandler) ListColors(c *gin.Context) {
	result, err := h.useCase.ListColors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
