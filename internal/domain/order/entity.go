package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lekimlong/evdealer/internal/domain/payment"
)

// Status 订单状态
//
// 设计说明:
// - 状态取值为固定词表,但不定义状态转移图:任意状态可以被改为词表内的
//   任意其他状态。业务上经销商的线下流程经常跳步(例如直接从待确认改为
//   已付款),强行加状态机反而会阻碍真实操作。
type Status string

const (
	StatusUnconfirmed     Status = "Unconfirmed"     // 草稿,待客户确认
	StatusConfirmed       Status = "Confirmed"       // 客户已确认
	StatusProcessing      Status = "Processing"      // 备车/办手续中
	StatusAwaitingPayment Status = "AwaitingPayment" // 等待付款
	StatusInInstallments  Status = "InInstallments"  // 分期付款中
	StatusPaid            Status = "Paid"            // 已付清
	StatusCancelled       Status = "Cancelled"       // 已取消
)

// ParseStatus 大小写不敏感地解析订单状态
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unconfirmed":
		return StatusUnconfirmed, nil
	case "confirmed":
		return StatusConfirmed, nil
	case "processing":
		return StatusProcessing, nil
	case "awaitingpayment":
		return StatusAwaitingPayment, nil
	case "ininstallments":
		return StatusInInstallments, nil
	case "paid":
		return StatusPaid, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// LineItem 订单明细
//
// 业务规则:
// - UnitPrice 是加入订单时经销商售价的快照,创建后不再变动,
//   之后调价不影响已有订单
// - FinalPrice = UnitPrice × Quantity,数量变化时重算
// - 每条明细对应扣减一条经销商库存(StockID)
type LineItem struct {
	ID         uint
	OrderID    uint
	StockID    uint
	Quantity   int
	UnitPrice  decimal.Decimal
	FinalPrice decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewLineItem 创建订单明细,单价在此刻定格
func NewLineItem(orderID, stockID uint, quantity int, unitPrice decimal.Decimal) (*LineItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &LineItem{
		OrderID:    orderID,
		StockID:    stockID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		FinalPrice: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// ChangeQuantity 变更数量并重算小计,单价保持快照不变
func (li *LineItem) ChangeQuantity(newQuantity int) error {
	if newQuantity <= 0 {
		return ErrInvalidQuantity
	}
	li.Quantity = newQuantity
	li.FinalPrice = li.UnitPrice.Mul(decimal.NewFromInt(int64(newQuantity)))
	return nil
}

// Order 订单聚合根
//
// 业务规则:
// - 订单归属创建人所在经销商,所有写操作必须校验调用者经销商一致
// - SubTotal = 全部明细FinalPrice之和
// - TotalAmount = SubTotal - DiscountAmount,且永不为负
// - 明细由聚合根独占,外部只能通过订单操作增删改
type Order struct {
	ID             uint
	CustomerID     uint
	DealerID       uint
	OrderDate      time.Time
	Status         Status
	SubTotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	PaymentMethod  *payment.Method
	PromotionID    *uint
	Items          []*LineItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewDraft 创建草稿订单:无明细,金额全零,未选支付方式和促销
func NewDraft(customerID, dealerID uint) *Order {
	return &Order{
		CustomerID:     customerID,
		DealerID:       dealerID,
		OrderDate:      time.Now(),
		Status:         StatusUnconfirmed,
		SubTotal:       decimal.Zero,
		DiscountAmount: decimal.Zero,
		TotalAmount:    decimal.Zero,
	}
}

// OwnedBy 判断订单是否属于指定经销商
func (o *Order) OwnedBy(dealerID uint) bool {
	return o.DealerID == dealerID
}

// RecomputeSubTotal 按当前明细重算小计并联动总额
//
// 明细任何增删改之后都必须调用,保证三个金额字段始终自洽。
// 明细缩减后快照的折扣可能超过新小计,此时折扣连同促销引用一并作废,
// 总额在任何时刻都不允许为负;需要折扣的话重新应用促销即可
func (o *Order) RecomputeSubTotal() {
	sum := decimal.Zero
	for _, li := range o.Items {
		sum = sum.Add(li.FinalPrice)
	}
	o.SubTotal = sum
	if o.DiscountAmount.GreaterThan(o.SubTotal) {
		o.PromotionID = nil
		o.DiscountAmount = decimal.Zero
	}
	o.TotalAmount = o.SubTotal.Sub(o.DiscountAmount)
}

// ApplyDiscount 应用折扣金额
//
// 折扣导致总额为负时整体拒绝,订单金额保持原样
func (o *Order) ApplyDiscount(promotionID uint, discount decimal.Decimal) error {
	total := o.SubTotal.Sub(discount)
	if total.IsNegative() {
		return ErrNegativeTotal
	}
	pid := promotionID
	o.PromotionID = &pid
	o.DiscountAmount = discount
	o.TotalAmount = total
	return nil
}

// ClearPromotion 移除促销,折扣清零
//
// 幂等:没有促销时调用同样得到 DiscountAmount=0、TotalAmount=SubTotal
func (o *Order) ClearPromotion() {
	o.PromotionID = nil
	o.DiscountAmount = decimal.Zero
	o.TotalAmount = o.SubTotal
}

// FindItem 在聚合内查找明细
func (o *Order) FindItem(itemID uint) (*LineItem, bool) {
	for _, li := range o.Items {
		if li.ID == itemID {
			return li, true
		}
	}
	return nil, false
}

// RemoveItem 从聚合内移除明细(不负责释放库存,库存由应用层联动)
func (o *Order) RemoveItem(itemID uint) bool {
	for i, li := range o.Items {
		if li.ID == itemID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			return true
		}
	}
	return false
}
