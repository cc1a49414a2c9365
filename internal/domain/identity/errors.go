package identity

import (
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeUserNotFound, "用户不存在")

	// ErrEmailDuplicate 邮箱已被注册
	ErrEmailDuplicate = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeDuplicateEntry, "邮箱已被注册")

	// ErrInvalidRole 角色不合法
	ErrInvalidRole = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "角色不合法")

	// ErrInvalidPassword 密码错误
	ErrInvalidPassword = apperrors.New(apperrors.KindAccessDenied, apperrors.ErrCodeUnauthorized, "邮箱或密码错误")

	// ErrDealerRequired 经销商侧角色必须归属一个经销商
	ErrDealerRequired = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "经销商侧角色必须指定所属经销商")

	// ErrDealerNotExists 注册时指定的经销商不存在
	ErrDealerNotExists = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "指定的经销商不存在")
)
