package catalog

import (
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// 车型目录领域错误定义
var (
	// ErrModelNotFound 车型不存在
	ErrModelNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeCatalogNotFound, "车型不存在")

	// ErrVariantNotFound 车型版本不存在
	ErrVariantNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeCatalogNotFound, "车型版本不存在")

	// ErrColorNotFound 颜色不存在
	ErrColorNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeCatalogNotFound, "颜色不存在")

	// ErrNameDuplicate 名称重复
	ErrNameDuplicate = apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeDuplicateEntry, "名称已存在")
)
