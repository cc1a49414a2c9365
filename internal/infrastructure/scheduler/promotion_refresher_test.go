package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingTask struct {
	calls int64
}

func (t *countingTask) Execute(ctx context.Context) (int, error) {
	atomic.AddInt64(&t.calls, 1)
	return 1, nil
}

// 启动后立即跑一轮,之后按间隔触发
func TestPromotionRefresher_RunsImmediatelyAndPeriodically(t *testing.T) {
	task := &countingTask{}
	r := NewPromotionRefresher(task, 20*time.Millisecond)

	r.Start(context.Background())
	time.Sleep(70 * time.Millisecond)
	r.Stop()

	calls := atomic.LoadInt64(&task.calls)
	assert.GreaterOrEqual(t, calls, int64(2), "应包含启动时的首轮和至少一次定时触发")
}

// Stop后不再触发
func TestPromotionRefresher_StopHalts(t *testing.T) {
	task := &countingTask{}
	r := NewPromotionRefresher(task, 10*time.Millisecond)

	r.Start(context.Background())
	time.Sleep(25 * time.Millisecond)
	r.Stop()

	before := atomic.LoadInt64(&task.calls)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, before, atomic.LoadInt64(&task.calls))
}

// 非法间隔回退到默认值
func TestNewPromotionRefresher_DefaultInterval(t *testing.T) {
	r := NewPromotionRefresher(&countingTask{}, 0)
	assert.Equal(t, 24*time.Hour, r.interval)
}
