// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三类：
// - Counter（只增不减）：请求数、订单数、事件发布数
// - Gauge（可增可减）：处理中请求数、熔断器状态
// - Histogram（分布）：请求耗时（自动计算P50/P90/P99）
//
// 命名规范：
// - Counter以_total结尾（orders_created_total）
// - Histogram以单位结尾（http_request_duration_seconds）
//
// 使用方式：main中调用InitMetrics()一次，/metrics路由挂promhttp.Handler()，
// Prometheus定期抓取。业务代码直接操作包级指标变量。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/api/v1/orders）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 订单业务指标

	// OrdersCreatedTotal 草稿订单创建总数（Counter）
	OrdersCreatedTotal prometheus.Counter

	// OrderLineItemOpsTotal 订单明细操作总数（Counter）
	// 标签：op（add/update/remove）、result（success/failure）
	OrderLineItemOpsTotal *prometheus.CounterVec

	// ReservationFailuresTotal 库存预留失败总数（Counter）
	ReservationFailuresTotal prometheus.Counter

	// PromotionsAppliedTotal 促销应用总数（Counter）
	PromotionsAppliedTotal prometheus.Counter

	// PaymentsRecordedTotal 支付记录总数（Counter）
	PaymentsRecordedTotal prometheus.Counter

	// 事件发布指标

	// EventsPublishedTotal 订单事件发布总数（Counter）
	// 标签：routing_key（order.created等）、result（success/failure/rejected）
	EventsPublishedTotal *prometheus.CounterVec

	// 熔断器指标

	// CircuitBreakerState 熔断器状态（Gauge）
	// 0=CLOSED, 1=OPEN, 2=HALF_OPEN
	CircuitBreakerState *prometheus.GaugeVec

	// 定时任务指标

	// PromotionRefreshTotal 促销状态刷新执行总数（Counter）
	// 标签：result（success/failure）
	PromotionRefreshTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，promauto自动注册到默认Registry
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	OrdersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "草稿订单创建总数",
		},
	)

	OrderLineItemOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_line_item_ops_total",
			Help: "订单明细操作总数",
		},
		[]string{"op", "result"},
	)

	ReservationFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reservation_failures_total",
			Help: "库存预留失败总数",
		},
	)

	PromotionsAppliedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "promotions_applied_total",
			Help: "促销应用总数",
		},
	)

	PaymentsRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_recorded_total",
			Help: "支付记录总数",
		},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "订单事件发布总数",
		},
		[]string{"routing_key", "result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	PromotionRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promotion_refresh_total",
			Help: "促销状态刷新执行总数",
		},
		[]string{"result"},
	)
}
