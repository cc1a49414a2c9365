package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	appinventory "github.com/lekimlong/evdealer/internal/application/inventory"
	"github.com/lekimlong/evdealer/internal/interface/http/dto"
	"github.com/lekimlong/evdealer/internal/interface/http/middleware"
	"github.com/lekimlong/evdealer/pkg/response"
)

// InventoryHandler 经销商库存HTTP处理器
type InventoryHandler struct {
	addStockUseCase       *appinventory.AddStockUseCase
	setPriceStatusUseCase *appinventory.SetPriceStatusUseCase
	queryUseCase          *appinventory.QueryUseCase
}

// NewInventoryHandler 创建库存处理器
func NewInventoryHandler(
	addStockUseCase *appinventory.AddStockUseCase,
	setPriceStatusUseCase *appinventory.SetPriceStatusUseCase,
	queryUseCase *appinventory.QueryUseCase,
) *InventoryHandler {
	return &InventoryHandler{
		addStockUseCase:       addStockUseCase,
		setPriceStatusUseCase: setPriceStatusUseCase,
		queryUseCase:          queryUseCase,
	}
}

// AddStock 入库
// @Summary      入库
// @Description  同配置已有库存行则累加数量,新配置创建Pending状态的库存行
// @Tags         库存模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddStockRequest true "入库信息"
// @Success      200 {object} response.Response "入库成功"
// @Router       /inventory [post]
func (h *InventoryHandler) AddStock(c *gin.Context) {
	var req dto.AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.addStockUseCase.Execute(c.Request.Context(), middleware.GetCaller(c), appinventory.AddStockRequest{
		VariantID: req.VariantID,
		ColorID:   req.ColorID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SetPriceStatus 设置售价/销售状态
// @Summary      设置售价/销售状态
// @Description  仅经销商经理可操作,price和status都可选
// @Tags         库存模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "库存行ID"
// @Param        request body dto.SetPriceStatusRequest true "价格/状态"
// @Success      200 {object} response.Response "设置成功"
// @Failure      403 {object} response.Response "仅经销商经理可操作"
// @Router       /inventory/{id} [patch]
func (h *InventoryHandler) SetPriceStatus(c *gin.Context) {
	stockID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetPriceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	var price *decimal.Decimal
	if req.Price != nil {
		p, err := decimal.NewFromString(*req.Price)
		if err != nil {
			response.ErrorWithCode(c, http.StatusBadRequest, 40000, "非法的价格格式")
			return
		}
		price = &p
	}

	result, err := h.setPriceStatusUseCase.Execute(c.Request.Context(), middleware.GetCaller(c), appinventory.SetPriceStatusRequest{
		StockID: stockID,
		Price:   price,
		Status:  req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List 库存列表
// @Summary      库存列表
// @Description  分页查询当前经销商的库存行
// @Tags         库存模块
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页大小" default(20)
// @Success      200 {object} response.Response "查询成功"
// @Router       /inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	page, pageSize := parsePageQuery(c)

	list, total, err := h.queryUseCase.List(c.Request.Context(), middleware.GetCaller(c), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessPage(c, list, total, page, pageSize)
}
