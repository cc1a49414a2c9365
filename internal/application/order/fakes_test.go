package order

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lekimlong/evdealer/internal/domain/catalog"
	"github.com/lekimlong/evdealer/internal/domain/customer"
	"github.com/lekimlong/evdealer/internal/domain/inventory"
	"github.com/lekimlong/evdealer/internal/domain/order"
	"github.com/lekimlong/evdealer/internal/domain/promotion"
	"github.com/lekimlong/evdealer/pkg/metrics"
)

func TestMain(m *testing.M) {
	// 业务指标是包级变量,用例代码会直接递增
	metrics.InitMetrics()
	os.Exit(m.Run())
}

// passTx 直通事务:直接执行fn,不提供回滚
// 用例的失败路径都发生在首次写操作之前,直通实现足以验证"无部分状态"
type passTx struct{}

func (passTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeOrderRepo 内存订单仓储
// FindByID返回深拷贝,模拟真实仓储"改了聚合不落库就不生效"的语义
type fakeOrderRepo struct {
	orders map[uint]*order.Order
	items  map[uint]*order.LineItem
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[uint]*order.Order),
		items:  make(map[uint]*order.LineItem),
		nextID: 1,
	}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *order.Order) error {
	o.ID = r.nextID
	r.nextID++
	r.orders[o.ID] = copyOrder(o)
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uint) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	cp := copyOrder(o)
	cp.Items = nil
	for _, li := range r.items {
		if li.OrderID == id {
			item := *li
			cp.Items = append(cp.Items, &item)
		}
	}
	return cp, nil
}

func (r *fakeOrderRepo) FindItemByID(_ context.Context, itemID uint) (*order.LineItem, error) {
	li, ok := r.items[itemID]
	if !ok {
		return nil, order.ErrLineItemNotFound
	}
	cp := *li
	return &cp, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *order.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return order.ErrOrderNotFound
	}
	r.orders[o.ID] = copyOrder(o)
	return nil
}

func (r *fakeOrderRepo) SaveItem(_ context.Context, li *order.LineItem) error {
	if li.ID == 0 {
		li.ID = r.nextID
		r.nextID++
	}
	cp := *li
	r.items[li.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) DeleteItem(_ context.Context, itemID uint) error {
	if _, ok := r.items[itemID]; !ok {
		return order.ErrLineItemNotFound
	}
	delete(r.items, itemID)
	return nil
}

func (r *fakeOrderRepo) ListByDealer(_ context.Context, dealerID uint, page, pageSize int) ([]*order.Order, int64, error) {
	var result []*order.Order
	for _, o := range r.orders {
		if o.DealerID == dealerID {
			result = append(result, copyOrder(o))
		}
	}
	return result, int64(len(result)), nil
}

func copyOrder(o *order.Order) *order.Order {
	cp := *o
	if o.PromotionID != nil {
		pid := *o.PromotionID
		cp.PromotionID = &pid
	}
	if o.PaymentMethod != nil {
		m := *o.PaymentMethod
		cp.PaymentMethod = &m
	}
	cp.Items = make([]*order.LineItem, len(o.Items))
	for i, li := range o.Items {
		item := *li
		cp.Items[i] = &item
	}
	return &cp
}

// fakeStockRepo 内存库存仓储,UpdateQuantity带不为负的守卫
type fakeStockRepo struct {
	stocks map[uint]*inventory.DealerStock
}

func newFakeStockRepo(stocks ...*inventory.DealerStock) *fakeStockRepo {
	r := &fakeStockRepo{stocks: make(map[uint]*inventory.DealerStock)}
	for _, s := range stocks {
		r.stocks[s.ID] = s
	}
	return r
}

func (r *fakeStockRepo) Create(_ context.Context, s *inventory.DealerStock) error {
	r.stocks[s.ID] = s
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
	panic("not used in order tests")
}

func (r *fakeStockRepo) ListByDealer(_ context.Context, dealerID uint, page, pageSize int) ([]*inventory.DealerStock, int64, error) {
	panic("not used in order tests")
}

// fakeCatalogRepo 内存车型目录,只实现按名称解析
type fakeCatalogRepo struct {
	variants map[string]*catalog.Variant // key: modelName/variantName(小写)
	colors   map[string]*catalog.Color   // key: name(小写)
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		variants: make(map[string]*catalog.Variant),
		colors:   make(map[string]*catalog.Color),
	}
}

func (r *fakeCatalogRepo) addVariant(modelName, variantName string, id uint) {
	r.variants[strings.ToLower(modelName+"/"+variantName)] = &catalog.Variant{ID: id, Name: variantName}
}

func (r *fakeCatalogRepo) addColor(name string, id uint) {
	r.colors[strings.ToLower(name)] = &catalog.Color{ID: id, Name: name}
}

func (r *fakeCatalogRepo) CreateModel(_ context.Context, _ *catalog.VehicleModel) error { return nil }
func (r *fakeCatalogRepo) CreateVariant(_ context.Context, _ *catalog.Variant) error    { return nil }
func (r *fakeCatalogRepo) CreateColor(_ context.Context, _ *catalog.Color) error        { return nil }

func (r *fakeCatalogRepo) FindModelByID(_ context.Context, _ uint) (*catalog.VehicleModel, error) {
	return nil, catalog.ErrModelNotFound
}

func (r *fakeCatalogRepo) FindVariantByName(_ context.Context, modelName, variantName string) (*catalog.Variant, error) {
	v, ok := r.variants[strings.ToLower(modelName+"/"+variantName)]
	if !ok {
		return nil, catalog.ErrVariantNotFound
	}
	return v, nil
}

func (r *fakeCatalogRepo) FindColorByName(_ context.Context, name string) (*catalog.Color, error) {
	c, ok := r.colors[strings.ToLower(name)]
	if !ok {
		return nil, catalog.ErrColorNotFound
	}
	return c, nil
}

func (r *fakeCatalogRepo) ListModels(_ context.Context) ([]*catalog.VehicleModel, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) ListVariantsByModel(_ context.Context, _ uint) ([]*catalog.Variant, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) ListColors(_ context.Context) ([]*catalog.Color, error) { return nil, nil }

// fakeCustomerRepo 内存客户仓储
type fakeCustomerRepo struct {
	customers map[uint]*customer.Customer
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *customer.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) FindByID(_ context.Context, id uint) (*customer.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) ListByDealer(_ context.Context, dealerID uint, page, pageSize int) ([]*customer.Customer, int64, error) {
	return nil, 0, nil
}

// fakePromotionRepo 内存促销仓储
type fakePromotionRepo struct {
	promotions map[uint]*promotion.Promotion
}

func (r *fakePromotionRepo) Create(_ context.Context, p *promotion.Promotion) error {
	r.promotions[p.ID] = p
	return nil
}

func (r *fakePromotionRepo) FindByID(_ context.Context, id uint) (*promotion.Promotion, error) {
	p, ok := r.promotions[id]
	if !ok {
		return nil, promotion.ErrPromotionNotFound
	}
	return p, nil
}

func (r *fakePromotionRepo) ListByDealer(_ context.Context, _ uint) ([]*promotion.Promotion, error) {
	return nil, nil
}

func (r *fakePromotionRepo) ListAll(_ context.Context) ([]*promotion.Promotion, error) {
	return nil, nil
}

func (r *fakePromotionRepo) UpdateStatus(_ context.Context, _ uint, _ promotion.Status) error {
	return nil
}

// fakePublisher 记录发布过的事件
type fakePublisher struct {
	published []string
}

func (p *fakePublisher) Publish(routingKey string, _ interface{}) error {
	p.published = append(p.published, routingKey)
	return nil
}
