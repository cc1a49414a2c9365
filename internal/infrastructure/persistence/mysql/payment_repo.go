package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lekimlong/evdealer/internal/domain/payment"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// paymentRepository 支付记录仓储实现(MySQL)
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository 创建支付记录仓储
func NewPaymentRepository(db *gorm.DB) payment.Repository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	model := toPaymentModel(p)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建支付记录失败")
	}
	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uint) (*payment.Payment, error) {
	var model PaymentModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, apperrors.Wrap(err, "查询支付记录失败")
	}
	return toPaymentEntity(&model), nil
}

func (r *paymentRepository) ListByOrder(ctx context.Context, orderID uint) ([]*payment.Payment, error) {
	var models []PaymentModel
	err := getDB(ctx, r.db).
		Where("order_id = ?", orderID).
		Order("payment_date ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询支付记录列表失败")
	}
	payments := make([]*payment.Payment, len(models))
	for i := range models {
		payments[i] = toPaymentEntity(&models[i])
	}
	return payments, nil
}

func (r *paymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	updates := map[string]interface{}{
		"method": string(p.Method),
		"status": string(p.Status),
		"note":   p.Note,
	}
	result := getDB(ctx, r.db).Model(&PaymentModel{}).Where("id = ?", p.ID).Updates(updates)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新支付记录失败")
	}
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&PaymentModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除支付记录失败")
	}
	if result.RowsAffected == 0 {
		return payment.ErrPaymentNotFound
	}
	return nil
}

func toPaymentModel(p *payment.Payment) *PaymentModel {
	return &PaymentModel{
		ID:          p.ID,
		OrderID:     p.OrderID,
		Amount:      p.Amount,
		Method:      string(p.Method),
		Status:      string(p.Status),
		PaymentDate: p.PaymentDate,
		Note:        p.Note,
	}
}

func toPaymentEntity(model *PaymentModel) *payment.Payment {
	return &payment.Payment{
		ID:          model.ID,
		OrderID:     model.OrderID,
		Amount:      model.Amount,
		Method:      payment.Method(model.Method),
		Status:      payment.Status(model.Status),
		PaymentDate: model.PaymentDate,
		Note:        model.Note,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
