package promotion

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/promotion"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
	"github.com/lekimlong/evdealer/pkg/metrics"
)

func TestMain(m *testing.M) {
	metrics.InitMetrics()
	os.Exit(m.Run())
}

// fakePromotionRepo 内存促销仓储
type fakePromotionRepo struct {
	promotions map[uint]*promotion.Promotion
	nextID     uint
	failOnID   uint // UpdateStatus遇到该ID返回错误,测试部分失败继续
}

func newFakePromotionRepo() *fakePromotionRepo {
	return &fakePromotionRepo{promotions: make(map[uint]*promotion.Promotion), nextID: 1}
}

func (r *fakePromotionRepo) Create(_ context.Context, p *promotion.Promotion) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.promotions[p.ID] = &cp
	return nil
}

func (r *fakePromotionRepo) FindByID(_ context.Context, id uint) (*promotion.Promotion, error) {
	p, ok := r.promotions[id]
	if !ok {
		return nil, promotion.ErrPromotionNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePromotionRepo) ListByDealer(_ context.Context, dealerID uint) ([]*promotion.Promotion, error) {
	var result []*promotion.Promotion
	for _, p := range r.promotions {
		if p.DealerID == dealerID {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *fakePromotionRepo) ListAll(_ context.Context) ([]*promotion.Promotion, error) {
	var result []*promotion.Promotion
	for _, p := range r.promotions {
		cp := *p
		result = append(result, &cp)
	}
	return result, nil
}

func (r *fakePromotionRepo) UpdateStatus(_ context.Context, id uint, status promotion.Status) error {
	if id == r.failOnID {
		return apperrors.ErrDatabaseError
	}
	p, ok := r.promotions[id]
	if !ok {
		return promotion.ErrPromotionNotFound
	}
	p.Status = status
	return nil
}

var manager = identity.Caller{UserID: 1, DealerID: 1, Role: identity.RoleDealerManager}

func TestCreatePromotion(t *testing.T) {
	repo := newFakePromotionRepo()
	uc := NewManageUseCase(repo)
	uc.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) }

	view, err := uc.Create(context.Background(), manager, CreatePromotionRequest{
		Name:      "三月促销",
		Type:      "percentage",
		Value:     decimal.NewFromInt(10),
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Active", view.Status, "窗口内创建直接Active")

	// 未来窗口创建为Scheduled
	view, err = uc.Create(context.Background(), manager, CreatePromotionRequest{
		Name:      "四月促销",
		Type:      "fixedamount",
		Value:     decimal.NewFromInt(1000000),
		StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Scheduled", view.Status)
}

func TestCreatePromotion_Invalid(t *testing.T) {
	uc := NewManageUseCase(newFakePromotionRepo())
	base := CreatePromotionRequest{
		Name:      "促销",
		Type:      "percentage",
		Value:     decimal.NewFromInt(10),
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 0, 7),
	}

	req := base
	req.Value = decimal.NewFromInt(150)
	_, err := uc.Create(context.Background(), manager, req)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument), "比例超100拒绝")

	req = base
	req.Value = decimal.Zero
	_, err = uc.Create(context.Background(), manager, req)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))

	req = base
	req.EndDate = req.StartDate.AddDate(0, 0, -1)
	_, err = uc.Create(context.Background(), manager, req)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument), "结束早于开始拒绝")

	req = base
	staff := identity.Caller{UserID: 2, DealerID: 1, Role: identity.RoleDealerStaff}
	_, err = uc.Create(context.Background(), staff, req)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAccessDenied), "销售不能建促销")
}

func TestRefreshStatus(t *testing.T) {
	repo := newFakePromotionRepo()
	now := time.Date(2026, 4, 10, 1, 0, 0, 0, time.UTC)

	// 三条促销:该转Active的、该转Expired的、无需变化的
	seed := []*promotion.Promotion{
		{DealerID: 1, Name: "a", Type: promotion.TypePercentage, Value: decimal.NewFromInt(5),
			Status:    promotion.StatusScheduled,
			StartDate: now.AddDate(0, 0, -1), EndDate: now.AddDate(0, 0, 5)},
		{DealerID: 1, Name: "b", Type: promotion.TypePercentage, Value: decimal.NewFromInt(5),
			Status:    promotion.StatusActive,
			StartDate: now.AddDate(0, 0, -30), EndDate: now.AddDate(0, 0, -2)},
		{DealerID: 1, Name: "c", Type: promotion.TypePercentage, Value: decimal.NewFromInt(5),
			Status:    promotion.StatusActive,
			StartDate: now.AddDate(0, 0, -1), EndDate: now.AddDate(0, 0, 5)},
	}
	for _, p := range seed {
		require.NoError(t, repo.Create(context.Background(), p))
	}

	uc := NewRefreshStatusUseCase(repo)
	uc.now = func() time.Time { return now }

	changed, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, changed)

	a, _ := repo.FindByID(context.Background(), 1)
	assert.Equal(t, promotion.StatusActive, a.Status)
	b, _ := repo.FindByID(context.Background(), 2)
	assert.Equal(t, promotion.StatusExpired, b.Status)

	// 幂等:再跑一轮无变化
	changed, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, changed)
}

// TestRefreshStatus_PartialFailure 单条失败不中断整轮
func TestRefreshStatus_PartialFailure(t *testing.T) {
	repo := newFakePromotionRepo()
	now := time.Date(2026, 4, 10, 1, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Create(context.Background(), &promotion.Promotion{
			DealerID: 1, Name: "p", Type: promotion.TypePercentage, Value: decimal.NewFromInt(5),
			Status:    promotion.StatusScheduled,
			StartDate: now.AddDate(0, 0, -1), EndDate: now.AddDate(0, 0, 5),
		}))
	}
	repo.failOnID = 1

	uc := NewRefreshStatusUseCase(repo)
	uc.now = func() time.Time { return now }

	changed, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, changed, "失败的跳过,成功的照常落库")

	p2, _ := repo.FindByID(context.Background(), 2)
	assert.Equal(t, promotion.StatusActive, p2.Status)
}
