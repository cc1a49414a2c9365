package payment

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Method 支付方式
//
// 设计说明:
// - 值对象,闭集枚举,底层为字符串方便直接入库和序列化
// - Installment(分期)会影响订单状态的推导,见订单应用层
type Method string

const (
	MethodCash        Method = "Cash"        // 现金/转账全款
	MethodInstallment Method = "Installment" // 分期付款
)

// ParseMethod 大小写不敏感地解析支付方式
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash":
		return MethodCash, nil
	case "installment":
		return MethodInstallment, nil
	default:
		return "", ErrInvalidMethod
	}
}

// Status 支付记录状态
type Status string

const (
	StatusPending   Status = "Pending"   // 已登记待确认
	StatusCompleted Status = "Completed" // 已到账
	StatusFailed    Status = "Failed"    // 失败(退票/拒付)
)

// ParseStatus 大小写不敏感地解析支付状态
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "completed":
		return StatusCompleted, nil
	case "failed":
		return StatusFailed, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Payment 支付记录实体
//
// 业务规则:
// - 一个订单可以有多条支付记录(分期场景)
// - 金额必须为正,但不校验累计金额与订单总额的关系
//   (登记口径,对账由财务流程负责)
type Payment struct {
	ID          uint
	OrderID     uint
	Amount      decimal.Decimal
	Method      Method
	Status      Status
	PaymentDate time.Time
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPayment 创建支付记录
func NewPayment(orderID uint, amount decimal.Decimal, method Method, paymentDate time.Time, note string) (*Payment, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	return &Payment{
		OrderID:     orderID,
		Amount:      amount,
		Method:      method,
		Status:      StatusPending,
		PaymentDate: paymentDate,
		Note:        note,
	}, nil
}
