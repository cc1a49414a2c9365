package distribution

import (
	"strings"
	"time"
)

// Status 调拨申请状态
type Status string

const (
	StatusPending   Status = "Pending"   // 待厂商审批
	StatusApproved  Status = "Approved"  // 已批准,库存已划拨
	StatusRejected  Status = "Rejected"  // 已驳回
	StatusDelivered Status = "Delivered" // 已送达经销商
)

// ParseStatus 大小写不敏感地解析调拨状态
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "approved":
		return StatusApproved, nil
	case "rejected":
		return StatusRejected, nil
	case "delivered":
		return StatusDelivered, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Request 经销商向厂商发起的车辆调拨申请
//
// 业务规则:
// - 只有Pending状态可以被审批(批准或驳回)
// - 批准时厂商库存划拨到经销商库存,两步必须要么都成功要么都回滚
// - Reason 记录驳回原因,批准时为空
type Request struct {
	ID        uint
	DealerID  uint
	VariantID uint
	ColorID   uint
	Quantity  int
	Status    Status
	Reason    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRequest 创建调拨申请
func NewRequest(dealerID, variantID, colorID uint, quantity int) (*Request, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &Request{
		DealerID:  dealerID,
		VariantID: variantID,
		ColorID:   colorID,
		Quantity:  quantity,
		Status:    StatusPending,
	}, nil
}

// CanDecide 是否还允许审批
func (r *Request) CanDecide() bool {
	return r.Status == StatusPending
}

// Approve 标记为已批准
func (r *Request) Approve() error {
	if !r.CanDecide() {
		return ErrAlreadyDecided
	}
	r.Status = StatusApproved
	r.Reason = ""
	return nil
}

// Reject 标记为已驳回并记录原因
func (r *Request) Reject(reason string) error {
	if !r.CanDecide() {
		return ErrAlreadyDecided
	}
	r.Status = StatusRejected
	r.Reason = reason
	return nil
}

// MarkDelivered 标记为已送达,只有已批准的申请可以送达
func (r *Request) MarkDelivered() error {
	if r.Status != StatusApproved {
		return ErrNotApproved
	}
	r.Status = StatusDelivered
	return nil
}

// FactoryStock 厂商侧库存,调拨批准时从这里划出
type FactoryStock struct {
	ID        uint
	VariantID uint
	ColorID   uint
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
