package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lekimlong/evdealer/internal/domain/order"
	"github.com/lekimlong/evdealer/internal/domain/payment"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
// 订单和明细是一个聚合:FindByID用Preload带出全部明细
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}
	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	o.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 查找订单,携带全部明细
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := getDB(ctx, r.db).Preload("Items").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toOrderEntity(&model), nil
}

// FindItemByID 查找明细
func (r *orderRepository) FindItemByID(ctx context.Context, itemID uint) (*order.LineItem, error) {
	var model OrderItemModel
	if err := getDB(ctx, r.db).First(&model, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrLineItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单明细失败")
	}
	return toLineItemEntity(&model), nil
}

// Update 更新订单头
// 用Select限定列,避免Save把零值金额误写回
func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	updates := map[string]interface{}{
		"status":          string(o.Status),
		"sub_total":       o.SubTotal,
		"discount_amount": o.DiscountAmount,
		"total_amount":    o.TotalAmount,
		"payment_method":  paymentMethodColumn(o.PaymentMethod),
		"promotion_id":    o.PromotionID,
	}
	result := getDB(ctx, r.db).Model(&OrderModel{}).Where("id = ?", o.ID).Updates(updates)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新订单失败")
	}
	if result.RowsAffected == 0 {
		// Updates在值未变化时也返回0行,区分订单是否存在
		var count int64
		if err := getDB(ctx, r.db).Model(&OrderModel{}).Where("id = ?", o.ID).Count(&count).Error; err != nil {
			return apperrors.Wrap(err, "查询订单失败")
		}
		if count == 0 {
			return order.ErrOrderNotFound
		}
	}
	return nil
}

// SaveItem 新增或更新明细
func (r *orderRepository) SaveItem(ctx context.Context, li *order.LineItem) error {
	model := &OrderItemModel{
		ID:         li.ID,
		OrderID:    li.OrderID,
		StockID:    li.StockID,
		Quantity:   li.Quantity,
		UnitPrice:  li.UnitPrice,
		FinalPrice: li.FinalPrice,
	}
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "保存订单明细失败")
	}
	li.ID = model.ID
	li.CreatedAt = model.CreatedAt
	li.UpdatedAt = model.UpdatedAt
	return nil
}

// DeleteItem 删除明细
func (r *orderRepository) DeleteItem(ctx context.Context, itemID uint) error {
	result := getDB(ctx, r.db).Delete(&OrderItemModel{}, itemID)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除订单明细失败")
	}
	if result.RowsAffected == 0 {
		return order.ErrLineItemNotFound
	}
	return nil
}

// ListByDealer 分页查询经销商的订单(不带明细)
func (r *orderRepository) ListByDealer(ctx context.Context, dealerID uint, page, pageSize int) ([]*order.Order, int64, error) {
	db := getDB(ctx, r.db)
	query := db.Model(&OrderModel{}).Where("dealer_id = ?", dealerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单总数失败")
	}

	var models []OrderModel
	err := query.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, total, nil
}

func paymentMethodColumn(m *payment.Method) *string {
	if m == nil {
		return nil
	}
	s := string(*m)
	return &s
}

func toOrderModel(o *order.Order) *OrderModel {
	return &OrderModel{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		DealerID:       o.DealerID,
		OrderDate:      o.OrderDate,
		Status:         string(o.Status),
		SubTotal:       o.SubTotal,
		DiscountAmount: o.DiscountAmount,
		TotalAmount:    o.TotalAmount,
		PaymentMethod:  paymentMethodColumn(o.PaymentMethod),
		PromotionID:    o.PromotionID,
	}
}

func toOrderEntity(model *OrderModel) *order.Order {
	o := &order.Order{
		ID:             model.ID,
		CustomerID:     model.CustomerID,
		DealerID:       model.DealerID,
		OrderDate:      model.OrderDate,
		Status:         order.Status(model.Status),
		SubTotal:       model.SubTotal,
		DiscountAmount: model.DiscountAmount,
		TotalAmount:    model.TotalAmount,
		PromotionID:    model.PromotionID,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
	if model.PaymentMethod != nil {
		m := payment.Method(*model.PaymentMethod)
		o.PaymentMethod = &m
	}
	o.Items = make([]*order.LineItem, len(model.Items))
	for i := range model.Items {
		o.Items[i] = toLineItemEntity(&model.Items[i])
	}
	return o
}

func toLineItemEntity(model *OrderItemModel) *order.LineItem {
	return &order.LineItem{
		ID:         model.ID,
		OrderID:    model.OrderID,
		StockID:    model.StockID,
		Quantity:   model.Quantity,
		UnitPrice:  model.UnitPrice,
		FinalPrice: model.FinalPrice,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
