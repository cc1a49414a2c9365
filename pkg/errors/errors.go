package errors

import (
	"errors"
	"fmt"
)

// Kind 业务错误类别
// 设计说明：
// 1. 旧系统用RuntimeException的message子串区分错误（如判断message是否包含"not found"）
// 2. 这里改为显式的错误类别，响应层按Kind映射HTTP状态码，永远不做字符串匹配
type Kind int

const (
	// KindInternal 基础设施错误（数据库、Redis、MQ等），与业务错误严格区分
	KindInternal Kind = iota

	// KindNotFound 引用的订单/客户/库存配置/促销/支付不存在
	KindNotFound

	// KindAccessDenied 调用者所属经销商与资源不匹配，或角色无权限
	KindAccessDenied

	// KindInsufficientInventory 预留数量超过可用库存
	KindInsufficientInventory

	// KindInvalidArgument 参数非法：数量<=0、未知状态/类型字符串、必填字段为空
	KindInvalidArgument

	// KindInvalidState 参数合法但当前数据状态不允许：促销未生效/已过期、折后金额为负等
	KindInvalidState
)

// String 实现Stringer接口(方便日志输出)
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindAccessDenied:
		return "ACCESS_DENIED"
	case KindInsufficientInventory:
		return "INSUFFICIENT_INVENTORY"
	case KindInvalidArgument:
		return "INVALID_ARGUMENT"
	case KindInvalidState:
		return "INVALID_STATE"
	default:
		return "INTERNAL"
	}
}

// AppError 自定义应用错误
// 设计说明：
// 1. Kind用于响应层映射HTTP状态码，Code用于客户端细分错误类型
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Kind    Kind   `json:"-"`
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(kind Kind, code int, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(kind Kind, code int, format string, args ...interface{}) *AppError {
	return New(kind, code, fmt.Sprintf(format, args...))
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（数据库异常、外部服务调用失败）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误
	ErrCodeMQError       = 50003 // 消息队列错误

	// 认证授权错误（40100-40199）
	ErrCodeUnauthorized = 40100 // 未登录
	ErrCodeInvalidToken = 40101 // Token无效
	ErrCodeTokenExpired = 40102 // Token过期
	ErrCodeForbidden    = 40104 // 无权限

	// 资源错误（40400-40499）
	ErrCodeNotFound             = 40400 // 资源不存在(通用)
	ErrCodeUserNotFound         = 40401 // 用户不存在
	ErrCodeCustomerNotFound     = 40402 // 客户不存在
	ErrCodeOrderNotFound        = 40403 // 订单不存在
	ErrCodeStockNotFound        = 40404 // 库存配置不存在
	ErrCodePromotionNotFound    = 40405 // 促销不存在
	ErrCodePaymentNotFound      = 40406 // 支付记录不存在
	ErrCodeLineItemNotFound     = 40407 // 订单明细不存在
	ErrCodeDealerNotFound       = 40408 // 经销商不存在
	ErrCodeCatalogNotFound      = 40409 // 车型/版本/颜色不存在
	ErrCodeDistributionNotFound = 40410 // 调拨申请不存在

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError         = 40000 // 业务错误(通用)
	ErrCodeInsufficientInventory = 40001 // 库存不足
	ErrCodeInvalidOrderStatus    = 40002 // 订单状态非法
	ErrCodePromotionInactive     = 40003 // 促销未生效或已过期
	ErrCodeNegativeTotal         = 40004 // 折后金额为负
	ErrCodeEmptyOrder            = 40005 // 订单小计为0
	ErrCodeDuplicateEntry        = 40009 // 重复记录(通用)

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定失败
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal      = New(KindInternal, ErrCodeInternal, "系统内部错误")
	ErrDatabaseError = New(KindInternal, ErrCodeDatabaseError, "数据库错误")
	ErrRedisError    = New(KindInternal, ErrCodeRedisError, "缓存服务错误")

	// 认证授权
	ErrUnauthorized = New(KindAccessDenied, ErrCodeUnauthorized, "请先登录")
	ErrInvalidToken = New(KindAccessDenied, ErrCodeInvalidToken, "无效的Token")
	ErrTokenExpired = New(KindAccessDenied, ErrCodeTokenExpired, "Token已过期")
	ErrForbidden    = New(KindAccessDenied, ErrCodeForbidden, "无权限访问")

	// 参数错误
	ErrInvalidParams = New(KindInvalidArgument, ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(KindInvalidArgument, ErrCodeBindError, "参数格式错误")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// IsKind 判断错误是否属于指定类别
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
