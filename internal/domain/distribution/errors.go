package distribution

import (
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// 调拨领域错误定义
var (
	// ErrRequestNotFound 调拨申请不存在
	ErrRequestNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeDistributionNotFound, "调拨申请不存在")

	// ErrInvalidStatus 调拨状态不合法
	ErrInvalidStatus = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "调拨状态不合法")

	// ErrInvalidQuantity 申请数量必须为正
	ErrInvalidQuantity = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "申请数量必须大于0")

	// ErrAlreadyDecided 申请已被审批过,不允许重复审批
	ErrAlreadyDecided = apperrors.New(apperrors.KindInvalidState, apperrors.ErrCodeBusinessError, "调拨申请已审批,不能重复操作")

	// ErrNotApproved 未批准的申请不能标记送达
	ErrNotApproved = apperrors.New(apperrors.KindInvalidState, apperrors.ErrCodeBusinessError, "只有已批准的调拨申请才能标记送达")

	// ErrFactoryStockNotFound 厂商库存不存在
	ErrFactoryStockNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeStockNotFound, "厂商库存不存在")

	// ErrInsufficientFactoryStock 厂商库存不足
	ErrInsufficientFactoryStock = apperrors.New(apperrors.KindInsufficientInventory, apperrors.ErrCodeInsufficientInventory, "厂商库存不足")
)
