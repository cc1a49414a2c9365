package payment

import (
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// 支付领域错误定义
var (
	// ErrPaymentNotFound 支付记录不存在
	ErrPaymentNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodePaymentNotFound, "支付记录不存在")

	// ErrInvalidMethod 支付方式不合法
	ErrInvalidMethod = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "支付方式不合法")

	// ErrInvalidStatus 支付状态不合法
	ErrInvalidStatus = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "支付状态不合法")

	// ErrInvalidAmount 支付金额不合法
	ErrInvalidAmount = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "支付金额必须大于0")
)
