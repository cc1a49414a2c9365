package mysql

import (
	"context"

	"gorm.io/gorm"
)

// TxManager 事务管理器
// 封装GORM的Transaction,事务DB通过context传递给仓储,
// fn返回error时自动ROLLBACK,返回nil时自动COMMIT
//
// 典型用法(订单加明细):
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    locked, err := stockRepo.LockByID(ctx, stockID) // SELECT FOR UPDATE
//	    if err != nil {
//	        return err
//	    }
//	    if err := stockRepo.UpdateQuantity(ctx, stockID, -qty); err != nil {
//	        return err // 回滚
//	    }
//	    return orderRepo.SaveItem(ctx, item) // nil则提交
//	})
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return fn(txCtx)
	})
}
