package promotion

import (
	"context"
	"log"
	"time"

	"github.com/lekimlong/evdealer/internal/domain/promotion"
	"github.com/lekimlong/evdealer/pkg/metrics"
)

// RefreshStatusUseCase 促销状态按日历刷新用例
// 由scheduler每日触发,也可运维手工调用
type RefreshStatusUseCase struct {
	promotionRepo promotion.Repository
	now           func() time.Time
}

// NewRefreshStatusUseCase 创建刷新用例
func NewRefreshStatusUseCase(promotionRepo promotion.Repository) *RefreshStatusUseCase {
	return &RefreshStatusUseCase{promotionRepo: promotionRepo, now: time.Now}
}

// Execute 重算所有促销的状态
//
// 幂等且可安全重跑:状态只由日期窗口推导,重复执行结果相同;
// 单条失败只记日志继续,下一轮会补上
func (uc *RefreshStatusUseCase) Execute(ctx context.Context) (int, error) {
	promotions, err := uc.promotionRepo.ListAll(ctx)
	if err != nil {
		metrics.PromotionRefreshTotal.WithLabelValues("failure").Inc()
		return 0, err
	}

	now := uc.now()
	changed := 0
	for _, p := range promotions {
		next := p.StatusFor(now)
		if next == p.Status {
			continue
		}
		if err := uc.promotionRepo.UpdateStatus(ctx, p.ID, next); err != nil {
			log.Printf("刷新促销状态失败: promotion_id=%d, %s→%s, err=%v", p.ID, p.Status, next, err)
			continue
		}
		changed++
	}

	metrics.PromotionRefreshTotal.WithLabelValues("success").Inc()
	return changed, nil
}
