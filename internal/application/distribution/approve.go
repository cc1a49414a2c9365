package distribution

import (
	"context"
	"time"

	"github.com/lekimlong/evdealer/internal/domain/distribution"
	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/inventory"
	"github.com/lekimlong/evdealer/internal/domain/order"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
	"github.com/lekimlong/evdealer/pkg/saga"
)

// ApproveUseCase 厂商审批调拨用例
//
// 批准是跨两套库存的划拨:厂商库存扣减+经销商库存增加。
// 用Saga编排:任一步失败,已执行的步骤按逆序补偿,
// 不会出现"厂商扣了经销商没加"的悬挂状态
type ApproveUseCase struct {
	requestRepo distribution.Repository
	factoryRepo distribution.FactoryStockRepository
	stockRepo   inventory.Repository
	sagaTimeout time.Duration
}

// NewApproveUseCase 创建审批用例
func NewApproveUseCase(
	requestRepo distribution.Repository,
	factoryRepo distribution.FactoryStockRepository,
	stockRepo inventory.Repository,
) *ApproveUseCase {
	return &ApproveUseCase{
		requestRepo: requestRepo,
		factoryRepo: factoryRepo,
		stockRepo:   stockRepo,
		sagaTimeout: 10 * time.Second,
	}
}

// DecideRequest 审批请求
type DecideRequest struct {
	RequestID uint
	Approve   bool
	Reason    string // 驳回原因,批准时忽略
}

// Execute 审批调拨申请
func (uc *ApproveUseCase) Execute(ctx context.Context, caller identity.Caller, req DecideRequest) (*RequestView, error) {
	if caller.Role != identity.RoleEVMStaff && caller.Role != identity.RoleAdmin {
		return nil, order.ErrAccessDenied
	}

	r, err := uc.requestRepo.FindByID(ctx, req.RequestID)
	if err != nil {
		return nil, err
	}
	if !r.CanDecide() {
		return nil, distribution.ErrAlreadyDecided
	}

	if !req.Approve {
		if err := r.Reject(req.Reason); err != nil {
			return nil, err
		}
		if err := uc.requestRepo.Update(ctx, r); err != nil {
			return nil, err
		}
		return toRequestView(r), nil
	}

	factory, err := uc.factoryRepo.FindByConfig(ctx, r.VariantID, r.ColorID)
	if err != nil {
		return nil, err
	}
	if factory.Quantity < r.Quantity {
		return nil, distribution.ErrInsufficientFactoryStock
	}

	s := saga.NewSaga(uc.sagaTimeout)
	s.AddStep("扣减厂商库存",
		func(ctx context.Context) error {
			return uc.factoryRepo.UpdateQuantity(ctx, factory.ID, -r.Quantity)
		},
		func(ctx context.Context) error {
			return uc.factoryRepo.UpdateQuantity(ctx, factory.ID, r.Quantity)
		},
	)
	s.AddStep("增加经销商库存",
		func(ctx context.Context) error {
			return uc.addDealerStock(ctx, r)
		},
		func(ctx context.Context) error {
			existing, err := uc.stockRepo.FindByConfig(ctx, r.DealerID, r.VariantID, r.ColorID)
			if err != nil {
				return err
			}
			return uc.stockRepo.UpdateQuantity(ctx, existing.ID, -r.Quantity)
		},
	)
	s.AddStep("更新申请状态",
		func(ctx context.Context) error {
			if err := r.Approve(); err != nil {
				return err
			}
			return uc.requestRepo.Update(ctx, r)
		},
		func(ctx context.Context) error {
			r.Status = distribution.StatusPending
			return uc.requestRepo.Update(ctx, r)
		},
	)

	if err := s.Execute(ctx); err != nil {
		return nil, err
	}
	return toRequestView(r), nil
}

// addDealerStock 划入经销商库存:已有配置累加,新配置建行待定价
func (uc *ApproveUseCase) addDealerStock(ctx context.Context, r *distribution.Request) error {
	existing, err := uc.stockRepo.FindByConfig(ctx, r.DealerID, r.VariantID, r.ColorID)
	if err != nil {
		if !apperrors.IsKind(err, apperrors.KindNotFound) {
			return err
		}
		return uc.stockRepo.Create(ctx, inventory.NewDealerStock(r.DealerID, r.VariantID, r.ColorID, r.Quantity))
	}
	return uc.stockRepo.UpdateQuantity(ctx, existing.ID, r.Quantity)
}
