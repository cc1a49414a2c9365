package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseStockStatus 测试状态解析（大小写不敏感，拒绝非法值）
func TestParseStockStatus(t *testing.T) {
	cases := []struct {
		input string
		want  StockStatus
		ok    bool
	}{
		{"Pending", StockStatusPending, true},
		{"pending", StockStatusPending, true},
		{"ONSALE", StockStatusOnSale, true},
		{" sold ", StockStatusSold, true},
		{"Available", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		got, ok := ParseStockStatus(c.input)
		assert.Equal(t, c.ok, ok, "input=%q", c.input)
		if ok {
			assert.Equal(t, c.want, got, "input=%q", c.input)
		}
	}
}

// TestNewDealerStock 测试新配置入库的初始状态
func TestNewDealerStock(t *testing.T) {
	s := NewDealerStock(1, 10, 3, 5)

	assert.Equal(t, 5, s.Quantity)
	assert.True(t, s.DealerPrice.IsZero(), "新配置价格应为0")
	assert.Equal(t, StockStatusPending, s.Status, "新配置状态应为Pending")
}

// TestCanReserve 测试预留预检
func TestCanReserve(t *testing.T) {
	s := NewDealerStock(1, 10, 3, 5)

	assert.True(t, s.CanReserve(5))
	assert.True(t, s.CanReserve(1))
	assert.False(t, s.CanReserve(6), "超过库存不可预留")
	assert.False(t, s.CanReserve(0), "数量0不可预留")
	assert.False(t, s.CanReserve(-1))
}
