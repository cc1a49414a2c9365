package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/inventory"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

type passTx struct{}

func (passTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeStockRepo 内存库存仓储
type fakeStockRepo struct {
	stocks map[uint]*inventory.DealerStock
	nextID uint
}

func newFakeStockRepo() *fakeStockRepo {
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

func (r *fakeStockRepo) UpdatePriceAndStatus(_ context.Context, id uint, price *decimal.Decimal, status *inventory.StockStatus) error {
	s, ok := r.stocks[id]
	if !ok {
		return inventory.ErrStockNotFound
	}
	if price != nil {
		s.DealerPrice = *price
	}
	if status != nil {
		s.Status = *status
	}
	return nil
}

func (r *fakeStockRepo) ListByDealer(_ context.Context, dealerID uint, page, pageSize int) ([]*inventory.DealerStock, int64, error) {
	var result []*inventory.DealerStock
	for _, s := range r.stocks {
		if s.DealerID == dealerID {
			cp := *s
			result = append(result, &cp)
		}
	}
	return result, int64(len(result)), nil
}

var (
	manager = identity.Caller{UserID: 1, DealerID: 1, Role: identity.RoleDealerManager}
	staff   = identity.Caller{UserID: 2, DealerID: 1, Role: identity.RoleDealerStaff}
)

func TestAddStock_NewConfig(t *testing.T) {
	repo := newFakeStockRepo()
	uc := NewAddStockUseCase(repo, passTx{})

	resp, err := uc.Execute(context.Background(), manager, AddStockRequest{VariantID: 2, ColorID: 3, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Quantity)
	assert.Equal(t, "Pending", resp.Status, "新配置入库待定价")

	s, err := repo.FindByID(context.Background(), resp.StockID)
	require.NoError(t, err)
	assert.True(t, s.DealerPrice.IsZero())
}

func TestAddStock_ExistingConfig(t *testing.T) {
	repo := newFakeStockRepo()
	uc := NewAddStockUseCase(repo, passTx{})

	first, err := uc.Execute(context.Background(), manager, AddStockRequest{VariantID: 2, ColorID: 3, Quantity: 5})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), manager, AddStockRequest{VariantID: 2, ColorID: 3, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, first.StockID, resp.StockID, "同配置复用同一行")
	assert.Equal(t, 8, resp.Quantity)
}

func TestAddStock_InvalidQuantity(t *testing.T) {
	uc := NewAddStockUseCase(newFakeStockRepo(), passTx{})

	_, err := uc.Execute(context.Background(), manager, AddStockRequest{VariantID: 2, ColorID: 3, Quantity: 0})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
}

func TestSetPriceStatus(t *testing.T) {
	repo := newFakeStockRepo()
	addUC := NewAddStockUseCase(repo, passTx{})
	added, err := addUC.Execute(context.Background(), manager, AddStockRequest{VariantID: 2, ColorID: 3, Quantity: 5})
	require.NoError(t, err)

	uc := NewSetPriceStatusUseCase(repo)
	price := decimal.RequireFromString("250000000")
	status := "onsale"

	resp, err := uc.Execute(context.Background(), manager, SetPriceStatusRequest{
		StockID: added.StockID, Price: &price, Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "250000000", resp.Price)
	assert.Equal(t, "OnSale", resp.Status)
}

// TestSetPriceStatus_StaffForbidden 销售不能定价
func TestSetPriceStatus_StaffForbidden(t *testing.T) {
	repo := newFakeStockRepo()
	addUC := NewAddStockUseCase(repo, passTx{})
	added, err := addUC.Execute(context.Background(), manager, AddStockRequest{VariantID: 2, ColorID: 3, Quantity: 5})
	require.NoError(t, err)

	uc := NewSetPriceStatusUseCase(repo)
	price := decimal.RequireFromString("100")
	_, err = uc.Execute(context.Background(), staff, SetPriceStatusRequest{StockID: added.StockID, Price: &price})
	assert.True(t, apperrors.IsKind(err, apperrors.KindAccessDenied))
}

func TestSetPriceStatus_NegativePrice(t *testing.T) {
	repo := newFakeStockRepo()
	addUC := NewAddStockUseCase(repo, passTx{})
	added, err := addUC.Execute(context.Background(), manager, AddStockRequest{VariantID: 2, ColorID: 3, Quantity: 5})
	require.NoError(t, err)

	uc := NewSetPriceStatusUseCase(repo)
	price := decimal.RequireFromString("-1")
	_, err = uc.Execute(context.Background(), manager, SetPriceStatusRequest{StockID: added.StockID, Price: &price})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
}

func TestListStocks(t *testing.T) {
	repo := newFakeStockRepo()
	addUC := NewAddStockUseCase(repo, passTx{})
	_, err := addUC.Execute(context.Background(), manager, AddStockRequest{VariantID: 2, ColorID: 3, Quantity: 5})
	require.NoError(t, err)
	_, err = addUC.Execute(context.Background(), manager, AddStockRequest{VariantID: 2, ColorID: 4, Quantity: 2})
	require.NoError(t, err)

	uc := NewQueryUseCase(repo)
	views, total, err := uc.List(context.Background(), staff, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, views, 2)
}
