package distribution

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lekimlong/evdealer/internal/domain/distribution"
	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/inventory"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// fakeRequestRepo 内存调拨申请仓储
type fakeRequestRepo struct {
	requests     map[uint]*distribution.Request
	nextID       uint
	failOnUpdate bool // 触发Saga最后一步失败,验证补偿
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uint]*distribution.Request), nextID: 1}
}

func (r *fakeRequestRepo) Create(_ context.Context, req *distribution.Request) error {
	req.ID = r.nextID
	r.nextID++
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id uint) (*distribution.Request, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, distribution.ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *fakeRequestRepo) Update(_ context.Context, req *distribution.Request) error {
	if r.failOnUpdate && req.Status == distribution.StatusApproved {
		return apperrors.ErrDatabaseError
	}
	if _, ok := r.requests[req.ID]; !ok {
		return distribution.ErrRequestNotFound
	}
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *fakeRequestRepo) ListByDealer(_ context.Context, dealerID uint) ([]*distribution.Request, error) {
	var result []*distribution.Request
	for _, req := range r.requests {
		if req.DealerID == dealerID {
			cp := *req
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *fakeRequestRepo) ListByStatus(_ context.Context, status distribution.Status) ([]*distribution.Request, error) {
	var result []*distribution.Request
	for _, req := range r.requests {
		if req.Status == status {
			cp := *req
			result = append(result, &cp)
		}
	}
	return result, nil
}

// fakeFactoryRepo 内存厂商库存
type fakeFactoryRepo struct {
	stocks map[uint]*distribution.FactoryStock
}

func (r *fakeFactoryRepo) FindByConfig(_ context.Context, variantID, colorID uint) (*distribution.FactoryStock, error) {
	for _, s := range r.stocks {
		if s.VariantID == variantID && s.ColorID == colorID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, distribution.ErrFactoryStockNotFound
}

func (r *fakeFactoryRepo) UpdateQuantity(_ context.Context, id uint, delta int) error {
	s, ok := r.stocks[id]
	if !ok {
		return distribution.ErrFactoryStockNotFound
	}
	if s.Quantity+delta < 0 {
		return distribution.ErrInsufficientFactoryStock
	}
	s.Quantity += delta
	return nil
}

func (r *fakeFactoryRepo) List(_ context.Context) ([]*distribution.FactoryStock, error) {
	return nil, nil
}

// fakeStockRepo 内存经销商库存(只实现审批用到的方法)
type fakeStockRepo struct {
	stocks map[uint]*inventory.DealerStock
	nextID uint
}

func newDealerStockRepo() *fakeStockRepo {
	return &fakeStockRepo{stocks: make(map[uint]*inventory.DealerStock), nextID: 1}
}

func (r *fakeStockRepo) Create(_ context.Context, s *inventory.DealerStock) error {
	s.ID = r.nextID
	r.nextID++
	cp := *s
	r.stocks[s.ID] = &cp
	return nil
}

func (r *fakeStockRepo) FindByID(_ context.Context, id uint) (*inventory.DealerStock, error) {
	s, ok := r.stocks[id]
	if !ok {
		return nil, inventory.ErrStockNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStockRepo) FindByConfig(_ context.Context, dealerID, variantID, colorID uint) (*inventory.DealerStock, error) {
	for _, s := range r.stocks {
		if s.DealerID == dealerID && s.VariantID == variantID && s.ColorID == colorID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, inventory.ErrStockNotFound
}

func (r *fakeStockRepo) LockByID(ctx context.Context, id uint) (*inventory.DealerStock, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeStockRepo) UpdateQuantity(_ context.Context, id uint, delta int) error {
	s, ok := r.stocks[id]
	if !ok {
		return inventory.ErrStockNotFound
	}
	if s.Quantity+delta < 0 {
		return inventory.NewInsufficientError(s.Quantity, -delta)
	}
	s.Quantity += delta
	return nil
}

func (r *fakeStockRepo) UpdatePriceAndStatus(_ context.Context, _ uint, _ *decimal.Decimal, _ *inventory.StockStatus) error {
	return nil
}

func (r *fakeStockRepo) ListByDealer(_ context.Context, _ uint, _, _ int) ([]*inventory.DealerStock, int64, error) {
	return nil, 0, nil
}

var (
	dealerManager = identity.Caller{UserID: 1, DealerID: 1, Role: identity.RoleDealerManager}
	evmStaff      = identity.Caller{UserID: 9, DealerID: 0, Role: identity.RoleEVMStaff}
)

type approveEnv struct {
	requestRepo *fakeRequestRepo
	factoryRepo *fakeFactoryRepo
	stockRepo   *fakeStockRepo
	requestID   uint
}

func newApproveEnv(t *testing.T, factoryQty, requestQty int) *approveEnv {
	t.Helper()
	requestRepo := newFakeRequestRepo()
	uc := NewRequestUseCase(requestRepo)
	view, err := uc.Create(context.Background(), dealerManager, CreateRequestRequest{
		VariantID: 2, ColorID: 3, Quantity: requestQty,
	})
	require.NoError(t, err)

	return &approveEnv{
		requestRepo: requestRepo,
		factoryRepo: &fakeFactoryRepo{stocks: map[uint]*distribution.FactoryStock{
			50: {ID: 50, VariantID: 2, ColorID: 3, Quantity: factoryQty},
		}},
		stockRepo: newDealerStockRepo(),
		requestID: view.RequestID,
	}
}

func TestApprove(t *testing.T) {
	env := newApproveEnv(t, 20, 5)

	uc := NewApproveUseCase(env.requestRepo, env.factoryRepo, env.stockRepo)
	view, err := uc.Execute(context.Background(), evmStaff, DecideRequest{RequestID: env.requestID, Approve: true})
	require.NoError(t, err)
	assert.Equal(t, "Approved", view.Status)

	// 厂商扣5,经销商新建行得5
	assert.Equal(t, 15, env.factoryRepo.stocks[50].Quantity)
	s, err := env.stockRepo.FindByConfig(context.Background(), 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Quantity)
	assert.Equal(t, inventory.StockStatusPending, s.Status, "划入的新配置待店长定价")
}

func TestApprove_InsufficientFactory(t *testing.T) {
	env := newApproveEnv(t, 3, 5)

	uc := NewApproveUseCase(env.requestRepo, env.factoryRepo, env.stockRepo)
	_, err := uc.Execute(context.Background(), evmStaff, DecideRequest{RequestID: env.requestID, Approve: true})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInsufficientInventory))

	// 两边库存都不动,申请保持Pending
	assert.Equal(t, 3, env.factoryRepo.stocks[50].Quantity)
	_, err = env.stockRepo.FindByConfig(context.Background(), 1, 2, 3)
	assert.Error(t, err)
	r, _ := env.requestRepo.FindByID(context.Background(), env.requestID)
	assert.Equal(t, distribution.StatusPending, r.Status)
}

// TestApprove_CompensationOnFailure 最后一步落库失败时逆序补偿两套库存
func TestApprove_CompensationOnFailure(t *testing.T) {
	env := newApproveEnv(t, 20, 5)
	env.requestRepo.failOnUpdate = true

	uc := NewApproveUseCase(env.requestRepo, env.factoryRepo, env.stockRepo)
	_, err := uc.Execute(context.Background(), evmStaff, DecideRequest{RequestID: env.requestID, Approve: true})
	require.Error(t, err)

	assert.Equal(t, 20, env.factoryRepo.stocks[50].Quantity, "厂商库存补偿回原值")
	s, err := env.stockRepo.FindByConfig(context.Background(), 1, 2, 3)
	if err == nil {
		assert.Equal(t, 0, s.Quantity, "经销商侧划入被补偿清零")
	}
}

func TestReject(t *testing.T) {
	env := newApproveEnv(t, 20, 5)

	uc := NewApproveUseCase(env.requestRepo, env.factoryRepo, env.stockRepo)
	view, err := uc.Execute(context.Background(), evmStaff, DecideRequest{
		RequestID: env.requestID, Approve: false, Reason: "该配置本月配额已用完",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rejected", view.Status)
	assert.Equal(t, "该配置本月配额已用完", view.Reason)
	assert.Equal(t, 20, env.factoryRepo.stocks[50].Quantity, "驳回不动库存")

	// 已审批的不能再批
	_, err = uc.Execute(context.Background(), evmStaff, DecideRequest{RequestID: env.requestID, Approve: true})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestApprove_DealerForbidden(t *testing.T) {
	env := newApproveEnv(t, 20, 5)

	uc := NewApproveUseCase(env.requestRepo, env.factoryRepo, env.stockRepo)
	_, err := uc.Execute(context.Background(), dealerManager, DecideRequest{RequestID: env.requestID, Approve: true})
	assert.True(t, apperrors.IsKind(err, apperrors.KindAccessDenied))
}

func TestMarkDelivered(t *testing.T) {
	env := newApproveEnv(t, 20, 5)
	approveUC := NewApproveUseCase(env.requestRepo, env.factoryRepo, env.stockRepo)
	_, err := approveUC.Execute(context.Background(), evmStaff, DecideRequest{RequestID: env.requestID, Approve: true})
	require.NoError(t, err)

	uc := NewRequestUseCase(env.requestRepo)
	view, err := uc.MarkDelivered(context.Background(), dealerManager, env.requestID)
	require.NoError(t, err)
	assert.Equal(t, "Delivered", view.Status)
}
