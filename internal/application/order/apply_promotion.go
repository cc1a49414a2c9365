package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/order"
	"github.com/lekimlong/evdealer/internal/domain/promotion"
	"github.com/lekimlong/evdealer/pkg/metrics"
)

// ApplyPromotionUseCase 应用/移除订单促销用例
type ApplyPromotionUseCase struct {
	orderRepo     order.Repository
	promotionRepo promotion.Repository
	tx            Transactor
	now           func() time.Time
}

// NewApplyPromotionUseCase 创建促销用例
func NewApplyPromotionUseCase(
	orderRepo order.Repository,
	promotionRepo promotion.Repository,
	tx Transactor,
) *ApplyPromotionUseCase {
	return &ApplyPromotionUseCase{
		orderRepo:     orderRepo,
		promotionRepo: promotionRepo,
		tx:            tx,
		now:           time.Now,
	}
}

// ApplyPromotionRequest 应用促销请求
// PromotionID为nil表示移除当前促销
type ApplyPromotionRequest struct {
	OrderID     uint
	PromotionID *uint
}

// ApplyPromotionResponse 应用促销响应,返回完整金额拆解
type ApplyPromotionResponse struct {
	SubTotal       string `json:"sub_total"`
	DiscountAmount string `json:"discount_amount"`
	Total          string `json:"total"`
}

// Execute 应用或移除促销
//
// 业务规则:
// 1. 促销必须属于订单所在经销商,跨经销商的促销按不存在处理
// 2. 促销必须处于生效窗口内且状态为Active
// 3. 小计为0的订单(空草稿)没有可折扣的金额,直接拒绝
// 4. 折扣在应用时刻快照到订单,之后促销变动不影响本单
// 5. 折扣导致总额为负则整体拒绝,订单保持原样
// 6. 移除促销幂等:重复移除后折扣仍为0、总额等于小计
func (uc *ApplyPromotionUseCase) Execute(ctx context.Context, caller identity.Caller, req ApplyPromotionRequest) (*ApplyPromotionResponse, error) {
	o, err := uc.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if !caller.OwnsDealer(o.DealerID) {
		return nil, order.ErrAccessDenied
	}

	err = uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		if req.PromotionID == nil {
			o.ClearPromotion()
			return uc.orderRepo.Update(txCtx, o)
		}

		p, err := uc.promotionRepo.FindByID(txCtx, *req.PromotionID)
		if err != nil {
			return err
		}
		if p.DealerID != o.DealerID {
			return promotion.ErrPromotionNotFound
		}
		if !p.IsActiveOn(uc.now()) {
			return promotion.ErrPromotionInactive
		}
		if o.SubTotal.LessThanOrEqual(decimal.Zero) {
			return order.ErrEmptyOrder
		}

		discount, err := p.ComputeDiscount(o.SubTotal)
		if err != nil {
			return err
		}
		if err := o.ApplyDiscount(p.ID, discount); err != nil {
			return err
		}
		return uc.orderRepo.Update(txCtx, o)
	})
	if err != nil {
		return nil, err
	}

	// 只统计实际应用,移除促销不计数
	if req.PromotionID != nil {
		metrics.PromotionsAppliedTotal.Inc()
	}
	return &ApplyPromotionResponse{
		SubTotal:       o.SubTotal.String(),
		DiscountAmount: o.DiscountAmount.String(),
		Total:          o.TotalAmount.String(),
	}, nil
}
