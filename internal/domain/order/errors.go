package order

import (
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrLineItemNotFound 订单明细不存在
	ErrLineItemNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeLineItemNotFound, "订单明细不存在")

	// ErrAccessDenied 调用者经销商与订单归属不一致
	ErrAccessDenied = apperrors.New(apperrors.KindAccessDenied, apperrors.ErrCodeForbidden, "无权操作其他经销商的订单")

	// ErrInvalidStatus 订单状态不在允许词表内
	ErrInvalidStatus = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidOrderStatus, "订单状态不合法")

	// ErrInvalidQuantity 明细数量必须为正
	ErrInvalidQuantity = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "数量必须大于0")

	// ErrNegativeTotal 折扣后总额为负
	ErrNegativeTotal = apperrors.New(apperrors.KindInvalidState, apperrors.ErrCodeNegativeTotal, "折扣后订单总额不能为负")

	// ErrEmptyOrder 小计为0的订单不能应用促销
	ErrEmptyOrder = apperrors.New(apperrors.KindInvalidState, apperrors.ErrCodeEmptyOrder, "订单没有可折扣的金额")
)
