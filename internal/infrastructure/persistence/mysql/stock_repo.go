package mysql

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lekimlong/evdealer/internal/domain/inventory"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// stockRepository 经销商库存仓储实现(MySQL)
// 预留/释放的串行化靠两件事:LockByID的SELECT FOR UPDATE,
// 以及UpdateQuantity里带守卫条件的原子UPDATE
type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository 创建库存仓储
func NewStockRepository(db *gorm.DB) inventory.Repository {
	return &stockRepository{db: db}
}

// Create 创建库存行
func (r *stockRepository) Create(ctx context.Context, s *inventory.DealerStock) error {
	model := toStockModel(s)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeDuplicateEntry, "该配置的库存行已存在")
		}
		return apperrors.Wrap(err, "创建库存行失败")
	}
	s.ID = model.ID
	s.CreatedAt = model.CreatedAt
	s.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找库存行
func (r *stockRepository) FindByID(ctx context.Context, id uint) (*inventory.DealerStock, error) {
	var model DealerStockModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrStockNotFound
		}
		return nil, apperrors.Wrap(err, "查询库存行失败")
	}
	return toStockEntity(&model), nil
}

// FindByConfig 根据业务键查找库存行
func (r *stockRepository) FindByConfig(ctx context.Context, dealerID, variantID, colorID uint) (*inventory.DealerStock, error) {
	var model DealerStockModel
	err := getDB(ctx, r.db).
		Where("dealer_id = ? AND variant_id = ? AND color_id = ?", dealerID, variantID, colorID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrStockNotFound
		}
		return nil, apperrors.Wrap(err, "查询库存行失败")
	}
	return toStockEntity(&model), nil
}

// LockByID 悲观锁查询(SELECT FOR UPDATE,必须在事务内调用)
func (r *stockRepository) LockByID(ctx context.Context, id uint) (*inventory.DealerStock, error) {
	var model DealerStockModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrStockNotFound
		}
		return nil, apperrors.Wrap(err, "锁定库存行失败")
	}
	return toStockEntity(&model), nil
}

// UpdateQuantity 原子更新数量
// UPDATE dealer_stocks SET quantity = quantity + delta
// WHERE id = ? AND quantity + delta >= 0
// RowsAffected=0时再查一次区分"行不存在"和"数量不足"
func (r *stockRepository) UpdateQuantity(ctx context.Context, id uint, delta int) error {
	db := getDB(ctx, r.db)
	result := db.Model(&DealerStockModel{}).
		Where("id = ?", id).
		Where("quantity + ? >= 0", delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新库存数量失败")
	}
	if result.RowsAffected == 0 {
		var model DealerStockModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return inventory.ErrStockNotFound
			}
			return apperrors.Wrap(err, "查询库存行失败")
		}
		return inventory.NewInsufficientError(model.Quantity, -delta)
	}
	return nil
}

// UpdatePriceAndStatus 部分更新价格/状态
func (r *stockRepository) UpdatePriceAndStatus(ctx context.Context, id uint, price *decimal.Decimal, status *inventory.StockStatus) error {
	updates := make(map[string]interface{})
	if price != nil {
		updates["dealer_price"] = *price
	}
	if status != nil {
		updates["status"] = string(*status)
	}
	if len(updates) == 0 {
		return nil
	}

	result := getDB(ctx, r.db).Model(&DealerStockModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新库存价格状态失败")
	}
	if result.RowsAffected == 0 {
		return inventory.ErrStockNotFound
	}
	return nil
}

// ListByDealer 分页查询经销商库存
func (r *stockRepository) ListByDealer(ctx context.Context, dealerID uint, page, pageSize int) ([]*inventory.DealerStock, int64, error) {
	db := getDB(ctx, r.db)
	query := db.Model(&DealerStockModel{}).Where("dealer_id = ?", dealerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询库存总数失败")
	}

	var models []DealerStockModel
	err := query.Order("variant_id ASC, color_id ASC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询库存列表失败")
	}

	stocks := make([]*inventory.DealerStock, len(models))
	for i := range models {
		stocks[i] = toStockEntity(&models[i])
	}
	return stocks, total, nil
}

func toStockModel(s *inventory.DealerStock) *DealerStockModel {
	return &DealerStockModel{
		ID:          s.ID,
		DealerID:    s.DealerID,
		VariantID:   s.VariantID,
		ColorID:     s.ColorID,
		Quantity:    s.Quantity,
		DealerPrice: s.DealerPrice,
		Status:      string(s.Status),
	}
}

func toStockEntity(model *DealerStockModel) *inventory.DealerStock {
	return &inventory.DealerStock{
		ID:          model.ID,
		DealerID:    model.DealerID,
		VariantID:   model.VariantID,
		ColorID:     model.ColorID,
		Quantity:    model.Quantity,
		DealerPrice: model.DealerPrice,
		Status:      inventory.StockStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
