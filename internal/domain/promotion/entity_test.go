package promotion

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePromotion(typ Type, value string, start, end time.Time) *Promotion {
	return &Promotion{
		ID:        1,
		DealerID:  1,
		Name:      "测试促销",
		Type:      typ,
		Value:     decimal.RequireFromString(value),
		Status:    StatusActive,
		StartDate: start,
		EndDate:   end,
	}
}

// TestComputeDiscount_FixedAmount 测试固定金额折扣
func TestComputeDiscount_FixedAmount(t *testing.T) {
	p := datePromotion(TypeFixedAmount, "5000000", time.Now(), time.Now())

	discount, err := p.ComputeDiscount(decimal.RequireFromString("40000000"))
	require.NoError(t, err)
	assert.True(t, discount.Equal(decimal.RequireFromString("5000000")))
}

// TestComputeDiscount_Percentage 测试比例折扣（4位小数四舍五入）
func TestComputeDiscount_Percentage(t *testing.T) {
	t.Run("整除场景", func(t *testing.T) {
		p := datePromotion(TypePercentage, "10", time.Now(), time.Now())

		discount, err := p.ComputeDiscount(decimal.RequireFromString("1000000"))
		require.NoError(t, err)
		assert.True(t, discount.Equal(decimal.RequireFromString("100000")),
			"10%%折扣应为100000, 实际%s", discount)
	})

	t.Run("需要四舍五入的场景", func(t *testing.T) {
		// 1000 * 3.33333% = 33.3333 → 保留4位
		p := datePromotion(TypePercentage, "3.33333", time.Now(), time.Now())

		discount, err := p.ComputeDiscount(decimal.RequireFromString("1000"))
		require.NoError(t, err)
		assert.True(t, discount.Equal(decimal.RequireFromString("33.3333")),
			"期望33.3333, 实际%s", discount)
	})

	t.Run("100%边界", func(t *testing.T) {
		// 100%折扣：折扣=小计，总额归零而非报错
		p := datePromotion(TypePercentage, "100", time.Now(), time.Now())

		discount, err := p.ComputeDiscount(decimal.RequireFromString("1000000"))
		require.NoError(t, err)
		assert.True(t, discount.Equal(decimal.RequireFromString("1000000")))
	})
}

// TestComputeDiscount_InvalidType 测试非法类型
func TestComputeDiscount_InvalidType(t *testing.T) {
	p := datePromotion(Type("Coupon"), "10", time.Now(), time.Now())

	_, err := p.ComputeDiscount(decimal.RequireFromString("1000"))
	assert.ErrorIs(t, err, ErrInvalidType)
}

// TestStatusFor 测试按日期重算状态（定时任务的核心，必须幂等）
func TestStatusFor(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	p := datePromotion(TypePercentage, "5", start, end)

	cases := []struct {
		now  time.Time
		want Status
	}{
		{time.Date(2026, 2, 28, 23, 59, 0, 0, time.UTC), StatusScheduled},
		{time.Date(2026, 3, 1, 0, 0, 1, 0, time.UTC), StatusActive},
		{time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC), StatusActive}, // 闭区间，最后一天仍生效
		{time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), StatusExpired},
	}

	for _, c := range cases {
		got := p.StatusFor(c.now)
		assert.Equal(t, c.want, got, "now=%s", c.now)

		// 幂等：重复计算结果不变
		assert.Equal(t, got, p.StatusFor(c.now))
	}
}

// TestIsActiveOn 测试生效判断同时要求状态和窗口
func TestIsActiveOn(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	inWindow := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	p := datePromotion(TypePercentage, "5", start, end)
	assert.True(t, p.IsActiveOn(inWindow))

	// 窗口内但状态未刷新为Active时不生效
	p.Status = StatusScheduled
	assert.False(t, p.IsActiveOn(inWindow))

	// 状态Active但日期已出窗口
	p.Status = StatusActive
	assert.False(t, p.IsActiveOn(time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)))
}
