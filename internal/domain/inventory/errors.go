package inventory

import (
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// 库存领域错误定义
var (
	// ErrStockNotFound 库存配置不存在
	ErrStockNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeStockNotFound, "库存配置不存在")

	// ErrInvalidQuantity 数量必须大于0
	ErrInvalidQuantity = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "数量必须大于0")

	// ErrInvalidPrice 价格不能为负
	ErrInvalidPrice = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "价格不能为负")

	// ErrInvalidStatus 状态不合法
	ErrInvalidStatus = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "库存状态不合法")

	// ErrStockNotOnSale 库存未上架，不能加入订单
	ErrStockNotOnSale = apperrors.New(apperrors.KindInvalidState, apperrors.ErrCodeBusinessError, "该配置尚未上架销售")
)

// NewInsufficientError 库存不足错误
// 消息必须同时携带可用数量与请求数量（运营排查依赖这两个数字）
func NewInsufficientError(available, requested int) *apperrors.AppError {
	return apperrors.Newf(apperrors.KindInsufficientInventory, apperrors.ErrCodeInsufficientInventory,
		"库存不足,当前库存:%d,需要:%d", available, requested)
}
