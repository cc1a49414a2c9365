package handler

import (
	"github.com/gin-gonic/gin"

	appcustomer "github.com/lekimlong/evdealer/internal/application/customer"
	"github.com/lekimlong/evdealer/internal/interface/http/dto"
	"github.com/lekimlong/evdealer/internal/interface/http/middleware"
	"github.com/lekimlong/evdealer/pkg/response"
)

// CustomerHandler 客户HTTP处理器
type CustomerHandler struct {
	useCase *appcustomer.UseCase
}

// NewCustomerHandler 创建客户处理器
func NewCustomerHandler(useCase *appcustomer.UseCase) *CustomerHandler {
	return &CustomerHandler{useCase: useCase}
}

// Create 录入客户
// @Summary      录入客户
// @Description  经销商销售录入到店客户,客户归属当前登录员工的经销商
// @Tags         客户模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCustomerRequest true "客户信息"
// @Success      200 {object} response.Response "录入成功"
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.useCase.Create(c.Request.Context(), middleware.GetCaller(c), appcustomer.CreateCustomerRequest{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Get 客户详情
// @Summary      客户详情
// @Tags         客户模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "客户ID"
// @Success      200 {object} response.Response "查询成功"
// @Failure      404 {object} response.Response "客户不存在"
// @Router       /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.useCase.Get(c.Request.Context(), middleware.GetCaller(c), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List 客户列表
// @Summary      客户列表
// @Description  分页查询当前经销商的客户
// @Tags         客户模块
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页大小" default(20)
// @Success      200 {object} response.Response "查询成功"
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	page, pageSize := parsePageQuery(c)

	list, total, err := h.useCase.List(c.Request.Context(), middleware.GetCaller(c), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessPage(c, list, total, page, pageSize)
}
