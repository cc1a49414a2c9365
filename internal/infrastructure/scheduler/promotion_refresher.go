// Package scheduler 后台定时任务
package scheduler

import (
	"context"
	"log"
	"time"
)

// Refreshable 可刷新的任务(促销状态刷新用例实现它)
type Refreshable interface {
	Execute(ctx context.Context) (int, error)
}

// PromotionRefresher 促销状态定时刷新器
//
// 设计说明:
// - 促销状态由日期推导,每天跨零点后需要批量重算一次
// - 启动时先跑一轮,之后按固定间隔触发
// - Stop后Ticker停止,正在执行的一轮跑完自然退出
type PromotionRefresher struct {
	task     Refreshable
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewPromotionRefresher 创建刷新器
func NewPromotionRefresher(task Refreshable, interval time.Duration) *PromotionRefresher {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &PromotionRefresher{
		task:     task,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start 启动后台循环(非阻塞)
func (r *PromotionRefresher) Start(ctx context.Context) {
	go r.loop(ctx)
}

// Stop 停止刷新器,等待当前一轮结束
func (r *PromotionRefresher) Stop() {
	close(r.stop)
	<-r.done
}

func (r *PromotionRefresher) loop(ctx context.Context) {
	defer close(r.done)

	r.runOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.runOnce(ctx)
		case <-r.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (r *PromotionRefresher) runOnce(ctx context.Context) {
	changed, err := r.task.Execute(ctx)
	if err != nil {
		log.Printf("[scheduler] 促销状态刷新失败: %v", err)
		return
	}
	if changed > 0 {
		log.Printf("[scheduler] 促销状态刷新完成, 更新%d条", changed)
	}
}
