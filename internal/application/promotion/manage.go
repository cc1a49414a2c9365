package promotion

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/order"
	"github.com/lekimlong/evdealer/internal/domain/promotion"
)

// ManageUseCase 促销管理用例(创建/查询)
type ManageUseCase struct {
	promotionRepo promotion.Repository
	now           func() time.Time
}

// NewManageUseCase 创建促销管理用例
func NewManageUseCase(promotionRepo promotion.Repository) *ManageUseCase {
	return &ManageUseCase{promotionRepo: promotionRepo, now: time.Now}
}

// CreatePromotionRequest 创建促销请求
type CreatePromotionRequest struct {
	Name      string
	Type      string
	Value     decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
}

// PromotionView 促销视图
type PromotionView struct {
	PromotionID uint   `json:"promotion_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Value       string `json:"value"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Create 创建促销,归属店长所在经销商
//
// 业务规则:
// 1. 仅店长可创建
// 2. 数值必须为正;Percentage不得超过100
// 3. 初始状态按当前日期推导(窗口未到Scheduled,窗口内Active)
func (uc *ManageUseCase) Create(ctx context.Context, caller identity.Caller, req CreatePromotionRequest) (*PromotionView, error) {
	if caller.Role != identity.RoleDealerManager {
		return nil, order.ErrAccessDenied
	}

	typ, ok := promotion.ParseType(req.Type)
	if !ok {
		return nil, promotion.ErrInvalidType
	}
	p, err := promotion.NewPromotion(caller.DealerID, req.Name, typ, req.Value, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	p.Status = p.StatusFor(uc.now())

	if err := uc.promotionRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPromotionView(p), nil
}

// List 查询本经销商的促销列表
func (uc *ManageUseCase) List(ctx context.Context, caller identity.Caller) ([]*PromotionView, error) {
	if !caller.Role.IsDealerSide() {
		return nil, order.ErrAccessDenied
	}
	promotions, err := uc.promotionRepo.ListByDealer(ctx, caller.DealerID)
	if err != nil {
		return nil, err
	}
	views := make([]*PromotionView, len(promotions))
	for i, p := range promotions {
		views[i] = toPromotionView(p)
	}
	return views, nil
}

func toPromotionView(p *promotion.Promotion) *PromotionView {
	return &PromotionView{
		PromotionID: p.ID,
		Name:        p.Name,
		Type:        string(p.Type),
		Value:       p.Value.String(),
		Status:      string(p.Status),
		StartDate:   p.StartDate.Format("2006-01-02"),
		EndDate:     p.EndDate.Format("2006-01-02"),
	}
}
