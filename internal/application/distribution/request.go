package distribution

import (
	"context"

	"github.com/lekimlong/evdealer/internal/domain/distribution"
	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/order"
)

// RequestUseCase 调拨申请用例(经销商侧发起与查询)
type RequestUseCase struct {
	requestRepo distribution.Repository
}

// NewRequestUseCase 创建调拨申请用例
func NewRequestUseCase(requestRepo distribution.Repository) *RequestUseCase {
	return &RequestUseCase{requestRepo: requestRepo}
}

// CreateRequestRequest 发起调拨申请
type CreateRequestRequest struct {
	VariantID uint
	ColorID   uint
	Quantity  int
}

// RequestView 调拨申请视图
type RequestView struct {
	RequestID uint   `json:"request_id"`
	DealerID  uint   `json:"dealer_id"`
	VariantID uint   `json:"variant_id"`
	ColorID   uint   `json:"color_id"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

// Create 经销商店长向厂商申请调车
func (uc *RequestUseCase) Create(ctx context.Context, caller identity.Caller, req CreateRequestRequest) (*RequestView, error) {
	if caller.Role != identity.RoleDealerManager {
		return nil, order.ErrAccessDenied
	}

	r, err := distribution.NewRequest(caller.DealerID, req.VariantID, req.ColorID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if err := uc.requestRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toRequestView(r), nil
}

// ListMine 查询本经销商的调拨申请
func (uc *RequestUseCase) ListMine(ctx context.Context, caller identity.Caller) ([]*RequestView, error) {
	if !caller.Role.IsDealerSide() {
		return nil, order.ErrAccessDenied
	}
	requests, err := uc.requestRepo.ListByDealer(ctx, caller.DealerID)
	if err != nil {
		return nil, err
	}
	return toRequestViews(requests), nil
}

// ListPending 厂商侧查询待审批列表
func (uc *RequestUseCase) ListPending(ctx context.Context, caller identity.Caller) ([]*RequestView, error) {
	if caller.Role != identity.RoleEVMStaff && caller.Role != identity.RoleAdmin {
		return nil, order.ErrAccessDenied
	}
	requests, err := uc.requestRepo.ListByStatus(ctx, distribution.StatusPending)
	if err != nil {
		return nil, err
	}
	return toRequestViews(requests), nil
}

// MarkDelivered 经销商确认到车
func (uc *RequestUseCase) MarkDelivered(ctx context.Context, caller identity.Caller, requestID uint) (*RequestView, error) {
	r, err := uc.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !caller.OwnsDealer(r.DealerID) {
		return nil, order.ErrAccessDenied
	}
	if err := r.MarkDelivered(); err != nil {
		return nil, err
	}
	if err := uc.requestRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toRequestView(r), nil
}

func toRequestView(r *distribution.Request) *RequestView {
	return &RequestView{
		RequestID: r.ID,
		DealerID:  r.DealerID,
		VariantID: r.VariantID,
		ColorID:   r.ColorID,
		Quantity:  r.Quantity,
		Status:    string(r.Status),
		Reason:    r.Reason,
	}
}

func toRequestViews(requests []*distribution.Request) []*RequestView {
	views := make([]*RequestView, len(requests))
	for i, r := range requests {
		views[i] = toRequestView(r)
	}
	return views
}
