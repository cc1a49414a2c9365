package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apppayment "github.com/lekimlong/evdealer/internal/application/payment"
	"github.com/lekimlong/evdealer/internal/interface/http/dto"
	"github.com/lekimlong/evdealer/internal/interface/http/middleware"
	"github.com/lekimlong/evdealer/pkg/response"
)

// PaymentHandler 支付记录HTTP处理器
type PaymentHandler struct {
	createUseCase *apppayment.CreatePaymentUseCase
	updateUseCase *apppayment.UpdatePaymentUseCase
	deleteUseCase *apppayment.DeletePaymentUseCase
	queryUseCase  *apppayment.QueryUseCase
}

// NewPaymentHandler 创建支付记录处理器
func NewPaymentHandler(
	createUseCase *apppayment.CreatePaymentUseCase,
	updateUseCase *apppayment.UpdatePaymentUseCase,
	deleteUseCase *apppayment.DeletePaymentUseCase,
	queryUseCase *apppayment.QueryUseCase,
) *PaymentHandler {
	return &PaymentHandler{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		queryUseCase:  queryUseCase,
	}
}

// Create 记录支付
// @Summary      记录支付
// @Description  现金或分期;分期付款对同一订单创建多条记录
// @Tags         支付模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreatePaymentRequest true "支付信息"
// @Success      200 {object} response.Response "记录成功"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.ErrorWithCode(c, http.StatusBadRequest, 40000, "非法的金额格式")
		return
	}

	var paymentDate time.Time
	if req.PaymentDate != "" {
		paymentDate, err = time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			response.ErrorWithCode(c, http.StatusBadRequest, 40000, "非法的支付日期,格式应为2006-01-02")
			return
		}
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), middleware.GetCaller(c), apppayment.CreatePaymentRequest{
		OrderID:     req.OrderID,
		Amount:      amount,
		Method:      req.Method,
		PaymentDate: paymentDate,
		Note:        req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateMethod 修改支付方式
// @Summary      修改支付方式
// @Tags         支付模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "支付记录ID"
// @Param        request body dto.UpdatePaymentMethodRequest true "支付方式"
// @Success      200 {object} response.Response "修改成功"
// @Router       /payments/{id}/method [put]
func (h *PaymentHandler) UpdateMethod(c *gin.Context) {
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.updateUseCase.UpdateMethod(c.Request.Context(), middleware.GetCaller(c), apppayment.UpdateMethodRequest{
		PaymentID: paymentID,
		Method:    req.Method,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateStatus 修改支付状态
// @Summary      修改支付状态
// @Description  只改支付记录本身,不联动订单状态
// @Tags         支付模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "支付记录ID"
// @Param        request body dto.UpdatePaymentStatusRequest true "支付状态"
// @Success      200 {object} response.Response "修改成功"
// @Router       /payments/{id}/status [put]
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.updateUseCase.UpdateStatus(c.Request.Context(), middleware.GetCaller(c), apppayment.UpdateStatusRequest{
		PaymentID: paymentID,
		Status:    req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 删除支付记录
// @Summary      删除支付记录
// @Tags         支付模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "支付记录ID"
// @Success      200 {object} response.Response "删除成功"
// @Router       /payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), middleware.GetCaller(c), paymentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListByOrder 订单的支付记录列表
// @Summary      订单的支付记录列表
// @Description  按支付日期升序,分期还款计划一目了然
// @Tags         支付模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response "查询成功"
// @Router       /orders/{id}/payments [get]
func (h *PaymentHandler) ListByOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.queryUseCase.ListByOrder(c.Request.Context(), middleware.GetCaller(c), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
