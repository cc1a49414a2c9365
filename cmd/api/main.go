package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appcatalog "github.com/lekimlong/evdealer/internal/application/catalog"
	appcustomer "github.com/lekimlong/evdealer/internal/application/customer"
	appdealer "github.com/lekimlong/evdealer/internal/application/dealer"
	appdistribution "github.com/lekimlong/evdealer/internal/application/distribution"
	appidentity "github.com/lekimlong/evdealer/internal/application/identity"
	appinventory "github.com/lekimlong/evdealer/internal/application/inventory"
	apporder "github.com/lekimlong/evdealer/internal/application/order"
	apppayment "github.com/lekimlong/evdealer/internal/application/payment"
	apppromotion "github.com/lekimlong/evdealer/internal/application/promotion"
	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/infrastructure/config"
	"github.com/lekimlong/evdealer/internal/infrastructure/persistence/mysql"
	"github.com/lekimlong/evdealer/internal/infrastructure/persistence/redis"
	"github.com/lekimlong/evdealer/internal/infrastructure/scheduler"
	"github.com/lekimlong/evdealer/internal/interface/http/handler"
	"github.com/lekimlong/evdealer/internal/interface/http/middleware"
	"github.com/lekimlong/evdealer/pkg/circuitbreaker"
	"github.com/lekimlong/evdealer/pkg/jwt"
	"github.com/lekimlong/evdealer/pkg/metrics"
	"github.com/lekimlong/evdealer/pkg/mq"
	"github.com/lekimlong/evdealer/pkg/response"
)

// resilientPublisher 带熔断保护的事件发布者
// RabbitMQ不可用时快速失败,避免每次发布都等到连接超时;
// 发布失败只记录,不影响业务事务
type resilientPublisher struct {
	pub *mq.Publisher
	cb  *circuitbreaker.CircuitBreaker
}

func (p *resilientPublisher) Publish(routingKey string, message interface{}) error {
	err := p.cb.Execute(func() error {
		return p.pub.Publish(routingKey, message)
	})
	result := "success"
	if err != nil {
		result = "failure"
	}
	metrics.EventsPublishedTotal.WithLabelValues(routingKey, result).Inc()
	return err
}

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化指标(必须在任何业务指标使用前)
	metrics.InitMetrics()

	// 3. 初始化存储
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 4. 基础设施层
	userRepo := mysql.NewUserRepository(db)
	dealerRepo := mysql.NewDealerRepository(db)
	customerRepo := mysql.NewCustomerRepository(db)
	catalogRepo := mysql.NewCatalogRepository(db)
	stockRepo := mysql.NewStockRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	promotionRepo := mysql.NewPromotionRepository(db)
	paymentRepo := mysql.NewPaymentRepository(db)
	distributionRepo := mysql.NewDistributionRepository(db)
	factoryStockRepo := mysql.NewFactoryStockRepository(db)
	txManager := mysql.NewTxManager(db)

	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 事件发布者(可选,MQ未启用时事件静默跳过)
	var publisher *resilientPublisher
	var rawPublisher *mq.Publisher
	if cfg.MQ.Enabled {
		rawPublisher, err = mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
		if err != nil {
			log.Fatalf("初始化MQ失败: %v", err)
		}
		cb := circuitbreaker.NewCircuitBreaker("mq-publisher", circuitbreaker.Config{
			MaxRequests: 3,
			Interval:    60 * time.Second,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5 || counts.FailureRate() > 0.5
			},
		})
		cb.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
			log.Printf("熔断器[%s]状态变化: %s -> %s", name, from, to)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		})
		publisher = &resilientPublisher{pub: rawPublisher, cb: cb}
	}
	// interface持有nil具体类型不等于nil interface,没启用MQ时必须传真正的nil
	var orderPublisher apporder.EventPublisher
	var paymentPublisher apppayment.EventPublisher
	if publisher != nil {
		orderPublisher = publisher
		paymentPublisher = publisher
	}

	// 5. 领域层
	userService := identity.NewService(userRepo, dealerRepo)

	// 6. 应用层
	registerUseCase := appidentity.NewRegisterUseCase(userService)
	loginUseCase := appidentity.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appidentity.NewLogoutUseCase(sessionStore)

	catalogUseCase := appcatalog.NewUseCase(catalogRepo)
	customerUseCase := appcustomer.NewUseCase(customerRepo)
	dealerUseCase := appdealer.NewUseCase(dealerRepo)

	addStockUseCase := appinventory.NewAddStockUseCase(stockRepo, txManager)
	setPriceStatusUseCase := appinventory.NewSetPriceStatusUseCase(stockRepo)
	inventoryQueryUseCase := appinventory.NewQueryUseCase(stockRepo)

	createDraftUseCase := apporder.NewCreateDraftUseCase(orderRepo, customerRepo, orderPublisher)
	addLineItemUseCase := apporder.NewAddLineItemUseCase(orderRepo, stockRepo, catalogRepo, txManager)
	updateLineItemUseCase := apporder.NewUpdateLineItemUseCase(orderRepo, stockRepo, txManager)
	removeLineItemUseCase := apporder.NewRemoveLineItemUseCase(orderRepo, stockRepo, txManager)
	applyPromotionUseCase := apporder.NewApplyPromotionUseCase(orderRepo, promotionRepo, txManager)
	setStatusUseCase := apporder.NewSetStatusUseCase(orderRepo, orderPublisher)
	setPaymentMethodUseCase := apporder.NewSetPaymentMethodUseCase(orderRepo)
	orderQueryUseCase := apporder.NewQueryUseCase(orderRepo)

	promotionManageUseCase := apppromotion.NewManageUseCase(promotionRepo)
	promotionRefreshUseCase := apppromotion.NewRefreshStatusUseCase(promotionRepo)

	createPaymentUseCase := apppayment.NewCreatePaymentUseCase(paymentRepo, orderRepo, paymentPublisher)
	updatePaymentUseCase := apppayment.NewUpdatePaymentUseCase(paymentRepo, orderRepo)
	deletePaymentUseCase := apppayment.NewDeletePaymentUseCase(paymentRepo, orderRepo)
	paymentQueryUseCase := apppayment.NewQueryUseCase(paymentRepo, orderRepo)

	distributionRequestUseCase := appdistribution.NewRequestUseCase(distributionRepo)
	distributionApproveUseCase := appdistribution.NewApproveUseCase(distributionRepo, factoryStockRepo, stockRepo)

	// 7. 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase)
	catalogHandler := handler.NewCatalogHandler(catalogUseCase)
	customerHandler := handler.NewCustomerHandler(customerUseCase)
	dealerHandler := handler.NewDealerHandler(dealerUseCase)
	inventoryHandler := handler.NewInventoryHandler(addStockUseCase, setPriceStatusUseCase, inventoryQueryUseCase)
	orderHandler := handler.NewOrderHandler(
		createDraftUseCase,
		addLineItemUseCase,
		updateLineItemUseCase,
		removeLineItemUseCase,
		applyPromotionUseCase,
		setStatusUseCase,
		setPaymentMethodUseCase,
		orderQueryUseCase,
	)
	promotionHandler := handler.NewPromotionHandler(promotionManageUseCase)
	paymentHandler := handler.NewPaymentHandler(createPaymentUseCase, updatePaymentUseCase, deletePaymentUseCase, paymentQueryUseCase)
	distributionHandler := handler.NewDistributionHandler(distributionRequestUseCase, distributionApproveUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 8. Gin引擎与路由
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics())

	registerRoutes(r, routeHandlers{
		user:         userHandler,
		catalog:      catalogHandler,
		customer:     customerHandler,
		dealer:       dealerHandler,
		inventory:    inventoryHandler,
		order:        orderHandler,
		promotion:    promotionHandler,
		payment:      paymentHandler,
		distribution: distributionHandler,
		auth:         authMiddleware,
	})

	// 9. 后台促销状态刷新
	refresher := scheduler.NewPromotionRefresher(promotionRefreshUseCase, cfg.Scheduler.PromotionRefreshInterval)

	// 10. 启动与优雅停机
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	refresher.Start(ctx)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		fmt.Printf("\n🚀 服务启动成功！\n")
		fmt.Printf("   访问地址: http://localhost%s\n", srv.Addr)
		fmt.Printf("   健康检查: http://localhost%s/ping\n", srv.Addr)
		fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", srv.Addr)
		fmt.Printf("   指标采集: http://localhost%s/metrics\n", srv.Addr)
		fmt.Printf("\n按Ctrl+C停止服务\n\n")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("启动服务失败: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("收到停止信号,开始优雅停机...")

	refresher.Stop()
	if rawPublisher != nil {
		_ = rawPublisher.Close()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("停机超时: %v", err)
	}
	log.Println("服务已停止")
}

// routeHandlers 路由注册所需的全部处理器
type routeHandlers struct {
	user         *handler.UserHandler
	catalog      *handler.CatalogHandler
	customer     *handler.CustomerHandler
	dealer       *handler.DealerHandler
	inventory    *handler.InventoryHandler
	order        *handler.OrderHandler
	promotion    *handler.PromotionHandler
	payment      *handler.PaymentHandler
	distribution *handler.DistributionHandler
	auth         *middleware.AuthMiddleware
}

// registerRoutes 注册路由
// 除注册/登录外的所有接口都要求登录,经销商归属等业务鉴权在应用层
func registerRoutes(r *gin.Engine, h routeHandlers) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 用户模块(公开接口)
		users := v1.Group("/users")
		{
			users.POST("/register", h.user.Register)
			users.POST("/login", h.user.Login)
			users.POST("/logout", h.auth.RequireAuth(), h.user.Logout)
		}

		authorized := v1.Group("")
		authorized.Use(h.auth.RequireAuth())
		{
			// 车型目录
			catalog := authorized.Group("/catalog")
			{
				catalog.POST("/models", h.catalog.CreateModel)
				catalog.GET("/models", h.catalog.ListModels)
				catalog.GET("/models/:id/variants", h.catalog.ListVariants)
				catalog.POST("/variants", h.catalog.CreateVariant)
				catalog.POST("/colors", h.catalog.CreateColor)
				catalog.GET("/colors", h.catalog.ListColors)
			}

			// 经销商档案
			dealers := authorized.Group("/dealers")
			{
				dealers.POST("", h.dealer.Create)
				dealers.GET("", h.dealer.List)
				dealers.GET("/:id", h.dealer.Get)
			}

			// 客户
			customers := authorized.Group("/customers")
			{
				customers.POST("", h.customer.Create)
				customers.GET("", h.customer.List)
				customers.GET("/:id", h.customer.Get)
			}

			// 经销商库存
			inventory := authorized.Group("/inventory")
			{
				inventory.POST("", h.inventory.AddStock)
				inventory.GET("", h.inventory.List)
				inventory.PATCH("/:id", h.inventory.SetPriceStatus)
			}

			// 订单
			orders := authorized.Group("/orders")
			{
				orders.POST("", h.order.CreateDraft)
				orders.GET("", h.order.List)
				orders.GET("/:id", h.order.Get)
				orders.POST("/:id/items", h.order.AddLineItem)
				orders.PUT("/:id/promotion", h.order.ApplyPromotion)
				orders.PUT("/:id/status", h.order.SetStatus)
				orders.PUT("/:id/payment-method", h.order.SetPaymentMethod)
				orders.GET("/:id/payments", h.payment.ListByOrder)
				orders.PUT("/items/:id", h.order.UpdateLineItem)
				orders.DELETE("/items/:id", h.order.RemoveLineItem)
			}

			// 促销
			promotions := authorized.Group("/promotions")
			{
				promotions.POST("", h.promotion.Create)
				promotions.GET("", h.promotion.List)
			}

			// 支付记录
			payments := authorized.Group("/payments")
			{
				payments.POST("", h.payment.Create)
				payments.PUT("/:id/method", h.payment.UpdateMethod)
				payments.PUT("/:id/status", h.payment.UpdateStatus)
				payments.DELETE("/:id", h.payment.Delete)
			}

			// 调拨
			distributions := authorized.Group("/distributions")
			{
				distributions.POST("", h.distribution.Create)
				distributions.GET("", h.distribution.ListMine)
				distributions.GET("/pending", h.distribution.ListPending)
				distributions.PUT("/:id/decision", h.distribution.Decide)
				distributions.PUT("/:id/delivered", h.distribution.MarkDelivered)
			}
		}
	}
}
