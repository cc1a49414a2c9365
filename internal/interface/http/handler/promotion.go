package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apppromotion "github.com/lekimlong/evdealer/internal/application/promotion"
	"github.com/lekimlong/evdealer/internal/interface/http/dto"
	"github.com/lekimlong/evdealer/internal/interface/http/middleware"
	"github.com/lekimlong/evdealer/pkg/response"
)

// PromotionHandler 促销HTTP处理器
type PromotionHandler struct {
	manageUseCase *apppromotion.ManageUseCase
}

// NewPromotionHandler 创建促销处理器
func NewPromotionHandler(manageUseCase *apppromotion.ManageUseCase) *PromotionHandler {
	return &PromotionHandler{manageUseCase: manageUseCase}
}

// Create 创建促销
// @Summary      创建促销
// @Description  仅经销商经理可操作;百分比促销值不超过100
// @Tags         促销模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreatePromotionRequest true "促销信息"
// @Success      200 {object} response.Response "创建成功"
// @Failure      403 {object} response.Response "仅经销商经理可操作"
// @Router       /promotions [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	var req dto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	value, err := decimal.NewFromString(req.Value)
	if err != nil {
		response.ErrorWithCode(c, http.StatusBadRequest, 40000, "非法的促销值格式")
		return
	}
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		response.ErrorWithCode(c, http.StatusBadRequest, 40000, "非法的开始日期,格式应为2006-01-02")
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		response.ErrorWithCode(c, http.StatusBadRequest, 40000, "非法的结束日期,格式应为2006-01-02")
		return
	}

	result, err := h.manageUseCase.Create(c.Request.Context(), middleware.GetCaller(c), apppromotion.CreatePromotionRequest{
		Name:      req.Name,
		Type:      req.Type,
		Value:     value,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List 促销列表
// @Summary      促销列表
// @Description  查询当前经销商的全部促销
// @Tags         促销模块
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "查询成功"
// @Router       /promotions [get]
func (h *PromotionHandler) List(c *gin.Context) {
	result, err := h.manageUseCase.List(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
