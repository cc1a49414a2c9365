package promotion

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Type 促销类型
type Type string

const (
	TypeFixedAmount Type = "FixedAmount" // 固定金额减免
	TypePercentage  Type = "Percentage"  // 按比例折扣
)

// ParseType 解析促销类型（大小写不敏感）
func ParseType(s string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixedamount":
		return TypeFixedAmount, true
	case "percentage":
		return TypePercentage, true
	default:
		return "", false
	}
}

// Status 促销状态
// 由日期窗口决定，每日定时任务重算（见scheduler.PromotionRefresher）
type Status string

const (
	StatusScheduled Status = "Scheduled" // 未开始
	StatusActive    Status = "Active"    // 生效中
	StatusExpired   Status = "Expired"   // 已过期
)

// Promotion 促销实体，归属一个经销商
// 订单只引用促销ID并快照计算出的折扣金额，促销本身对订单不可变
type Promotion struct {
	ID          uint
	DealerID    uint
	Name        string
	Type        Type
	Value       decimal.Decimal // FixedAmount时为金额，Percentage时为百分比数值
	Status      Status
	StartDate   time.Time // 生效窗口[StartDate, EndDate]，闭区间
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPromotion 创建促销（工厂方法）
// 初始状态Scheduled，按日期推导交给StatusFor
func NewPromotion(dealerID uint, name string, typ Type, value decimal.Decimal, startDate, endDate time.Time) (*Promotion, error) {
	if value.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidValue
	}
	if typ == TypePercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidValue
	}
	if truncateToDay(endDate).Before(truncateToDay(startDate)) {
		return nil, ErrInvalidWindow
	}
	return &Promotion{
		DealerID:  dealerID,
		Name:      name,
		Type:      typ,
		Value:     value,
		Status:    StatusScheduled,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// IsActiveOn 判断指定日期是否在生效窗口内且状态为Active
func (p *Promotion) IsActiveOn(now time.Time) bool {
	if p.Status != StatusActive {
		return false
	}
	return p.InWindow(now)
}

// InWindow 判断日期是否落在[StartDate, EndDate]闭区间内（按天比较）
func (p *Promotion) InWindow(now time.Time) bool {
	day := truncateToDay(now)
	return !day.Before(truncateToDay(p.StartDate)) && !day.After(truncateToDay(p.EndDate))
}

// StatusFor 根据日期重算状态（幂等：重复计算结果相同）
// 定时任务每天调用一次，把Scheduled→Active、Active→Expired
func (p *Promotion) StatusFor(now time.Time) Status {
	day := truncateToDay(now)
	switch {
	case day.Before(truncateToDay(p.StartDate)):
		return StatusScheduled
	case day.After(truncateToDay(p.EndDate)):
		return StatusExpired
	default:
		return StatusActive
	}
}

// ComputeDiscount 计算折扣金额
// FixedAmount：折扣=Value（不做截断，超出小计由调用方拒绝）
// Percentage：折扣=小计×(Value/100)，四舍五入保留4位小数后再参与减法
func (p *Promotion) ComputeDiscount(subTotal decimal.Decimal) (decimal.Decimal, error) {
	switch p.Type {
	case TypeFixedAmount:
		return p.Value, nil
	case TypePercentage:
		// decimal.Round对正数是round-half-up
		discount := subTotal.Mul(p.Value.Div(decimal.NewFromInt(100))).Round(4)
		return discount, nil
	default:
		return decimal.Zero, ErrInvalidType
	}
}

// truncateToDay 截断到天（生效窗口按日历日比较，不看时分秒）
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
