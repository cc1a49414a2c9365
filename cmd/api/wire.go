//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 使用方式:
//
//	wire gen ./cmd/api
//
// 生成wire_gen.go后,main可改为调用InitializeApp()。
// 当前main.go仍使用手动注入,本文件用于核对依赖链的完整性。
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appcatalog "github.com/lekimlong/evdealer/internal/application/catalog"
	appcustomer "github.com/lekimlong/evdealer/internal/application/customer"
	appdealer "github.com/lekimlong/evdealer/internal/application/dealer"
	appdistribution "github.com/lekimlong/evdealer/internal/application/distribution"
	appidentity "github.com/lekimlong/evdealer/internal/application/identity"
	appinventory "github.com/lekimlong/evdealer/internal/application/inventory"
	apporder "github.com/lekimlong/evdealer/internal/application/order"
	apppayment "github.com/lekimlong/evdealer/internal/application/payment"
	apppromotion "github.com/lekimlong/evdealer/internal/application/promotion"
	"github.com/lekimlong/evdealer/internal/domain/dealer"
	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/infrastructure/config"
	"github.com/lekimlong/evdealer/internal/infrastructure/persistence/mysql"
	"github.com/lekimlong/evdealer/internal/infrastructure/persistence/redis"
	"github.com/lekimlong/evdealer/internal/interface/http/handler"
	"github.com/lekimlong/evdealer/internal/interface/http/middleware"
	"github.com/lekimlong/evdealer/pkg/jwt"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewDealerRepository,
	mysql.NewCustomerRepository,
	mysql.NewCatalogRepository,
	mysql.NewStockRepository,
	mysql.NewOrderRepository,
	mysql.NewPromotionRepository,
	mysql.NewPaymentRepository,
	mysql.NewDistributionRepository,
	mysql.NewFactoryStockRepository,
	mysql.NewTxManager,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	identity.NewService,
	wire.Bind(new(identity.DealerChecker), new(dealer.Repository)),
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appidentity.NewRegisterUseCase,
	appidentity.NewLoginUseCase,
	appidentity.NewLogoutUseCase,
	appcatalog.NewUseCase,
	appcustomer.NewUseCase,
	appdealer.NewUseCase,
	appinventory.NewAddStockUseCase,
	appinventory.NewSetPriceStatusUseCase,
	appinventory.NewQueryUseCase,
	apporder.NewCreateDraftUseCase,
	apporder.NewAddLineItemUseCase,
	apporder.NewUpdateLineItemUseCase,
	apporder.NewRemoveLineItemUseCase,
	apporder.NewApplyPromotionUseCase,
	apporder.NewSetStatusUseCase,
	apporder.NewSetPaymentMethodUseCase,
	apporder.NewQueryUseCase,
	apppromotion.NewManageUseCase,
	apppromotion.NewRefreshStatusUseCase,
	apppayment.NewCreatePaymentUseCase,
	apppayment.NewUpdatePaymentUseCase,
	apppayment.NewDeletePaymentUseCase,
	apppayment.NewQueryUseCase,
	appdistribution.NewRequestUseCase,
	appdistribution.NewApproveUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewCatalogHandler,
	handler.NewCustomerHandler,
	handler.NewDealerHandler,
	handler.NewInventoryHandler,
	handler.NewOrderHandler,
	handler.NewPromotionHandler,
	handler.NewPaymentHandler,
	handler.NewDistributionHandler,
)

// provideJWTManager 从配置提取JWT参数
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建会话存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideGinEngine 组装Gin引擎并注册全部路由
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	customerHandler *handler.CustomerHandler,
	dealerHandler *handler.DealerHandler,
	inventoryHandler *handler.InventoryHandler,
	orderHandler *handler.OrderHandler,
	promotionHandler *handler.PromotionHandler,
	paymentHandler *handler.PaymentHandler,
	distributionHandler *handler.DistributionHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
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

	return r
}

// InitializeApp 初始化整个应用(Wire Injector)
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
