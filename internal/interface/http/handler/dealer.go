package handler

import (
	"github.com/gin-gonic/gin"

	appdealer "github.com/lekimlong/evdealer/internal/application/dealer"
	"github.com/lekimlong/evdealer/internal/interface/http/dto"
	"github.com/lekimlong/evdealer/internal/interface/http/middleware"
	"github.com/lekimlong/evdealer/pkg/response"
)

// DealerHandler 经销商HTTP处理器
type DealerHandler struct {
	useCase *appdealer.UseCase
}

// NewDealerHandler 创建经销商处理器
func NewDealerHandler(useCase *appdealer.UseCase) *DealerHandler {
	return &DealerHandler{useCase: useCase}
}

// Create 创建经销商
// @Summary      创建经销商
// @Description  厂商侧建立经销商档案,经销商侧账号注册前必须先有档案
// @Tags         经销商模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateDealerRequest true "经销商信息"
// @Success      200 {object} response.Response "创建成功"
// @Failure      403 {object} response.Response "仅厂商侧可操作"
// @Router       /dealers [post]
func (h *DealerHandler) Create(c *gin.Context) {
	var req dto.CreateDealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.useCase.Create(c.Request.Context(), middleware.GetCaller(c), appdealer.CreateDealerRequest{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Get 经销商详情
// @Summary      经销商详情
// @Tags         经销商模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "经销商ID"
// @Success      200 {object} response.Response "查询成功"
// @Failure      404 {object} response.Response "经销商不存在"
// @Router       /dealers/{id} [get]
func (h *DealerHandler) Get(c *gin.Context) {
	dealerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.useCase.Get(c.Request.Context(), dealerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List 经销商列表
// @Summary      经销商列表
// @Tags         经销商模块
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "查询成功"
// @Router       /dealers [get]
func (h *DealerHandler) List(c *gin.Context) {
	result, err := h.useCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
