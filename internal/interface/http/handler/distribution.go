package handler

import (
	"github.com/gin-gonic/gin"

	appdistribution "github.com/lekimlong/evdealer/internal/application/distribution"
	"github.com/lekimlong/evdealer/internal/interface/http/dto"
	"github.com/lekimlong/evdealer/internal/interface/http/middleware"
	"github.com/lekimlong/evdealer/pkg/response"
)

// DistributionHandler 调拨申请HTTP处理器
// 经销商经理发起申请,厂商侧审批
type DistributionHandler struct {
	requestUseCase *appdistribution.RequestUseCase
	approveUseCase *appdistribution.ApproveUseCase
}

// NewDistributionHandler 创建调拨处理器
func NewDistributionHandler(
	requestUseCase *appdistribution.RequestUseCase,
	approveUseCase *appdistribution.ApproveUseCase,
) *DistributionHandler {
	return &DistributionHandler{
		requestUseCase: requestUseCase,
		approveUseCase: approveUseCase,
	}
}

// Create 创建调拨申请
// @Summary      创建调拨申请
// @Description  经销商经理向厂商申请补货
// @Tags         调拨模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateDistributionRequest true "申请信息"
// @Success      200 {object} response.Response "创建成功"
// @Failure      403 {object} response.Response "仅经销商经理可操作"
// @Router       /distributions [post]
func (h *DistributionHandler) Create(c *gin.Context) {
	var req dto.CreateDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.requestUseCase.Create(c.Request.Context(), middleware.GetCaller(c), appdistribution.CreateRequestRequest{
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

// ListMine 我方调拨申请列表
// @Summary      我方调拨申请列表
// @Tags         调拨模块
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "查询成功"
// @Router       /distributions [get]
func (h *DistributionHandler) ListMine(c *gin.Context) {
	result, err := h.requestUseCase.ListMine(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListPending 待审批列表
// @Summary      待审批列表
// @Description  厂商侧查看所有Pending状态的申请
// @Tags         调拨模块
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "查询成功"
// @Failure      403 {object} response.Response "仅厂商侧可操作"
// @Router       /distributions/pending [get]
func (h *DistributionHandler) ListPending(c *gin.Context) {
	result, err := h.requestUseCase.ListPending(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Decide 审批调拨申请
// @Summary      审批调拨申请
// @Description  批准时厂商库存扣减、经销商库存增加,任一步失败自动补偿回滚
// @Tags         调拨模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "申请ID"
// @Param        request body dto.DecideDistributionRequest true "审批结果"
// @Success      200 {object} response.Response "审批成功"
// @Failure      403 {object} response.Response "仅厂商侧可操作"
// @Failure      500 {object} response.Response "厂商库存不足"
// @Router       /distributions/{id}/decision [put]
func (h *DistributionHandler) Decide(c *gin.Context) {
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.DecideDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.approveUseCase.Execute(c.Request.Context(), middleware.GetCaller(c), appdistribution.DecideRequest{
		RequestID: requestID,
		Approve:   req.Approve,
		Reason:    req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// MarkDelivered 确认到货
// @Summary      确认到货
// @Description  经销商确认已批准的调拨到货
// @Tags         调拨模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "申请ID"
// @Success      200 {object} response.Response "确认成功"
// @Router       /distributions/{id}/delivered [put]
func (h *DistributionHandler) MarkDelivered(c *gin.Context) {
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.requestUseCase.MarkDelivered(c.Request.Context(), middleware.GetCaller(c), requestID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
