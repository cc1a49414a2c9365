package order

import (
	"context"
	"time"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/order"
)

// QueryUseCase 订单查询用例(详情+列表)
// 查询不走事务,读到什么返回什么
type QueryUseCase struct {
	orderRepo order.Repository
}

// NewQueryUseCase 创建订单查询用例
func NewQueryUseCase(orderRepo order.Repository) *QueryUseCase {
	return &QueryUseCase{orderRepo: orderRepo}
}

// LineItemView 明细视图
type LineItemView struct {
	LineItemID uint   `json:"line_item_id"`
	StockID    uint   `json:"stock_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	FinalPrice string `json:"final_price"`
}

// OrderView 订单视图
type OrderView struct {
	OrderID        uint           `json:"order_id"`
	CustomerID     uint           `json:"customer_id"`
	DealerID       uint           `json:"dealer_id"`
	OrderDate      string         `json:"order_date"`
	Status         string         `json:"status"`
	SubTotal       string         `json:"sub_total"`
	DiscountAmount string         `json:"discount_amount"`
	TotalAmount    string         `json:"total_amount"`
	PaymentMethod  *string        `json:"payment_method"`
	PromotionID    *uint          `json:"promotion_id"`
	Items          []LineItemView `json:"items,omitempty"`
}

// Get 查询订单详情(含明细),只能查本经销商的订单
func (uc *QueryUseCase) Get(ctx context.Context, caller identity.Caller, orderID uint) (*OrderView, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !caller.OwnsDealer(o.DealerID) {
		return nil, order.ErrAccessDenied
	}
	return toOrderView(o, true), nil
}

// List 分页查询本经销商的订单(不带明细)
func (uc *QueryUseCase) List(ctx context.Context, caller identity.Caller, page, pageSize int) ([]*OrderView, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	orders, total, err := uc.orderRepo.ListByDealer(ctx, caller.DealerID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	views := make([]*OrderView, len(orders))
	for i, o := range orders {
		views[i] = toOrderView(o, false)
	}
	return views, total, nil
}

func toOrderView(o *order.Order, withItems bool) *OrderView {
	v := &OrderView{
		OrderID:        o.ID,
		CustomerID:     o.CustomerID,
		DealerID:       o.DealerID,
		OrderDate:      o.OrderDate.Format(time.RFC3339),
		Status:         string(o.Status),
		SubTotal:       o.SubTotal.String(),
		DiscountAmount: o.DiscountAmount.String(),
		TotalAmount:    o.TotalAmount.String(),
		PromotionID:    o.PromotionID,
	}
	if o.PaymentMethod != nil {
		m := string(*o.PaymentMethod)
		v.PaymentMethod = &m
	}
	if withItems {
		v.Items = make([]LineItemView, len(o.Items))
		for i, li := range o.Items {
			v.Items[i] = LineItemView{
				LineItemID: li.ID,
				StockID:    li.StockID,
				Quantity:   li.Quantity,
				UnitPrice:  li.UnitPrice.String(),
				FinalPrice: li.FinalPrice.String(),
			}
		}
	}
	return v
}
