package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/lekimlong/evdealer/internal/application/order"
	"github.com/lekimlong/evdealer/internal/interface/http/dto"
	"github.com/lekimlong/evdealer/internal/interface/http/middleware"
	"github.com/lekimlong/evdealer/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	createDraftUseCase      *apporder.CreateDraftUseCase
	addLineItemUseCase      *apporder.AddLineItemUseCase
	updateLineItemUseCase   *apporder.UpdateLineItemUseCase
	removeLineItemUseCase   *apporder.RemoveLineItemUseCase
	applyPromotionUseCase   *apporder.ApplyPromotionUseCase
	setStatusUseCase        *apporder.SetStatusUseCase
	setPaymentMethodUseCase *apporder.SetPaymentMethodUseCase
	queryUseCase            *apporder.QueryUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createDraftUseCase *apporder.CreateDraftUseCase,
	addLineItemUseCase *apporder.AddLineItemUseCase,
	updateLineItemUseCase *apporder.UpdateLineItemUseCase,
	removeLineItemUseCase *apporder.RemoveLineItemUseCase,
	applyPromotionUseCase *apporder.ApplyPromotionUseCase,
	setStatusUseCase *apporder.SetStatusUseCase,
	setPaymentMethodUseCase *apporder.SetPaymentMethodUseCase,
	queryUseCase *apporder.QueryUseCase,
) *OrderHandler {
	return &OrderHandler{
		createDraftUseCase:      createDraftUseCase,
		addLineItemUseCase:      addLineItemUseCase,
		updateLineItemUseCase:   updateLineItemUseCase,
		removeLineItemUseCase:   removeLineItemUseCase,
		applyPromotionUseCase:   applyPromotionUseCase,
		setStatusUseCase:        setStatusUseCase,
		setPaymentMethodUseCase: setPaymentMethodUseCase,
		queryUseCase:            queryUseCase,
	}
}

// CreateDraft 创建草稿订单
// @Summary      创建草稿订单
// @Description  为已录入的客户创建空订单,金额全为0,状态Unconfirmed
// @Tags         订单模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateDraftRequest true "客户信息"
// @Success      200 {object} response.Response "创建成功"
// @Failure      404 {object} response.Response "客户不存在"
// @Router       /orders [post]
func (h *OrderHandler) CreateDraft(c *gin.Context) {
	var req dto.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.createDraftUseCase.Execute(c.Request.Context(), middleware.GetCaller(c), apporder.CreateDraftRequest{
		CustomerID: req.CustomerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// AddLineItem 添加订单明细
// @Summary      添加订单明细
// @Description  按配置名称解析库存行,悲观锁内预留库存并按当前售价快照计价
// @Tags         订单模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        request body dto.AddLineItemRequest true "配置与数量"
// @Success      200 {object} response.Response "添加成功"
// @Failure      404 {object} response.Response "订单或配置不存在"
// @Failure      500 {object} response.Response "库存不足"
// @Router       /orders/{id}/items [post]
func (h *OrderHandler) AddLineItem(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.addLineItemUseCase.Execute(c.Request.Context(), middleware.GetCaller(c), apporder.AddLineItemRequest{
		OrderID:     orderID,
		ModelName:   req.ModelName,
		VariantName: req.VariantName,
		ColorName:   req.ColorName,
		Quantity:    req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateLineItem 修改明细数量
// @Summary      修改明细数量
// @Description  按新旧数量差增减库存预留,单价快照不变
// @Tags         订单模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "明细ID"
// @Param        request body dto.UpdateLineItemRequest true "新数量"
// @Success      200 {object} response.Response "修改成功"
// @Router       /orders/items/{id} [put]
func (h *OrderHandler) UpdateLineItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.updateLineItemUseCase.Execute(c.Request.Context(), middleware.GetCaller(c), apporder.UpdateLineItemRequest{
		LineItemID:  itemID,
		NewQuantity: req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// RemoveLineItem 删除订单明细
// @Summary      删除订单明细
// @Description  删除明细并把预留数量加回库存
// @Tags         订单模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "明细ID"
// @Success      200 {object} response.Response "删除成功"
// @Router       /orders/items/{id} [delete]
func (h *OrderHandler) RemoveLineItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.removeLineItemUseCase.Execute(c.Request.Context(), middleware.GetCaller(c), apporder.RemoveLineItemRequest{
		LineItemID: itemID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ApplyPromotion 应用/移除促销
// @Summary      应用/移除促销
// @Description  promotion_id为null时移除促销;折扣后总额不能为负
// @Tags         订单模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        request body dto.ApplyPromotionRequest true "促销ID"
// @Success      200 {object} response.Response "应用成功"
// @Failure      404 {object} response.Response "促销不存在"
// @Router       /orders/{id}/promotion [put]
func (h *OrderHandler) ApplyPromotion(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ApplyPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.applyPromotionUseCase.Execute(c.Request.Context(), middleware.GetCaller(c), apporder.ApplyPromotionRequest{
		OrderID:     orderID,
		PromotionID: req.PromotionID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SetStatus 设置订单状态
// @Summary      设置订单状态
// @Tags         订单模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        request body dto.SetStatusRequest true "目标状态"
// @Success      200 {object} response.Response "设置成功"
// @Router       /orders/{id}/status [put]
func (h *OrderHandler) SetStatus(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.setStatusUseCase.Execute(c.Request.Context(), middleware.GetCaller(c), apporder.SetStatusRequest{
		OrderID: orderID,
		Status:  req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SetPaymentMethod 设置支付方式
// @Summary      设置支付方式
// @Tags         订单模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        request body dto.SetPaymentMethodRequest true "支付方式"
// @Success      200 {object} response.Response "设置成功"
// @Router       /orders/{id}/payment-method [put]
func (h *OrderHandler) SetPaymentMethod(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.setPaymentMethodUseCase.Execute(c.Request.Context(), middleware.GetCaller(c), apporder.SetPaymentMethodRequest{
		OrderID: orderID,
		Method:  req.Method,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Get 订单详情
// @Summary      订单详情
// @Description  携带全部明细
// @Tags         订单模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response "查询成功"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.queryUseCase.Get(c.Request.Context(), middleware.GetCaller(c), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List 订单列表
// @Summary      订单列表
// @Description  分页查询当前经销商的订单
// @Tags         订单模块
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页大小" default(20)
// @Success      200 {object} response.Response "查询成功"
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	page, pageSize := parsePageQuery(c)

	list, total, err := h.queryUseCase.List(c.Request.Context(), middleware.GetCaller(c), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessPage(c, list, total, page, pageSize)
}
