package promotion

import (
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// 促销领域错误定义
var (
	// ErrPromotionNotFound 促销不存在（含不属于订单所在经销商的情况）
	ErrPromotionNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodePromotionNotFound, "促销不存在")

	// ErrPromotionInactive 促销未生效或已过期
	ErrPromotionInactive = apperrors.New(apperrors.KindInvalidState, apperrors.ErrCodePromotionInactive, "促销未生效或已过期")

	// ErrInvalidType 促销类型不合法
	ErrInvalidType = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "促销类型不合法")

	// ErrInvalidValue 促销数值不合法
	ErrInvalidValue = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "促销数值必须大于0")

	// ErrInvalidWindow 生效窗口不合法
	ErrInvalidWindow = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "结束日期不能早于开始日期")
)
