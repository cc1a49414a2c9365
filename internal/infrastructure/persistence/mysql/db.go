package mysql

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lekimlong/evdealer/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 连接池参数走配置;debug模式打印SQL;启动时AutoMigrate
// (生产环境建议改用版本化迁移脚本)
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&DealerModel{},
		&CustomerModel{},
		&VehicleModelModel{},
		&VariantModel{},
		&ColorModel{},
		&DealerStockModel{},
		&FactoryStockModel{},
		&OrderModel{},
		&OrderItemModel{},
		&PromotionModel{},
		&PaymentModel{},
		&DistributionRequestModel{},
	)
}

// UserModel GORM用户模型
// infrastructure层的数据模型(带GORM tag),与domain实体分离,
// 仓储负责两者转换
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string    `gorm:"size:255;not null;comment:密码(bcrypt)"`
	FullName  string    `gorm:"size:100;not null;comment:姓名"`
	Role      string    `gorm:"size:20;not null;comment:角色"`
	DealerID  uint      `gorm:"index;comment:归属经销商(厂商侧为0)"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (UserModel) TableName() string { return "users" }

// DealerModel GORM经销商模型
type DealerModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:100;not null;comment:经销商名称"`
	Address   string    `gorm:"size:255;comment:地址"`
	Phone     string    `gorm:"size:20;comment:联系电话"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (DealerModel) TableName() string { return "dealers" }

// CustomerModel GORM客户模型
type CustomerModel struct {
	ID        uint      `gorm:"primaryKey"`
	DealerID  uint      `gorm:"index;not null;comment:录入经销商"`
	FullName  string    `gorm:"size:100;not null;comment:姓名"`
	Phone     string    `gorm:"index;size:20;not null;comment:电话"`
	Email     string    `gorm:"size:100;comment:邮箱"`
	Address   string    `gorm:"size:255;comment:地址"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (CustomerModel) TableName() string { return "customers" }

// VehicleModelModel GORM车型模型
type VehicleModelModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"uniqueIndex;size:100;not null;comment:车型名称"`
	Description string    `gorm:"type:text;comment:描述"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

func (VehicleModelModel) TableName() string { return "vehicle_models" }

// VariantModel GORM车型版本模型
// (model_id, name)联合唯一:同一车型下版本名不重复
type VariantModel struct {
	ID         uint      `gorm:"primaryKey"`
	ModelID    uint      `gorm:"uniqueIndex:idx_model_variant;not null;comment:车型ID"`
	Name       string    `gorm:"uniqueIndex:idx_model_variant;size:100;not null;comment:版本名称"`
	BatteryKWh float64   `gorm:"comment:电池容量(kWh)"`
	RangeKm    int       `gorm:"comment:续航里程(km)"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
	UpdatedAt  time.Time `gorm:"comment:更新时间"`
}

func (VariantModel) TableName() string { return "variants" }

// ColorModel GORM颜色模型
type ColorModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:50;not null;comment:颜色名称"`
	HexCode   string    `gorm:"size:10;comment:色值"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (ColorModel) TableName() string { return "colors" }

// DealerStockModel GORM经销商库存模型
// 业务键(dealer_id, variant_id, color_id)联合唯一;
// 金额统一decimal(19,4),不用浮点
type DealerStockModel struct {
	ID          uint            `gorm:"primaryKey"`
	DealerID    uint            `gorm:"uniqueIndex:idx_dealer_config;not null;comment:经销商ID"`
	VariantID   uint            `gorm:"uniqueIndex:idx_dealer_config;not null;comment:版本ID"`
	ColorID     uint            `gorm:"uniqueIndex:idx_dealer_config;not null;comment:颜色ID"`
	Quantity    int             `gorm:"not null;default:0;comment:库存数量"`
	DealerPrice decimal.Decimal `gorm:"type:decimal(19,4);not null;default:0;comment:经销商售价"`
	Status      string          `gorm:"size:20;not null;comment:销售状态"`
	CreatedAt   time.Time       `gorm:"comment:创建时间"`
	UpdatedAt   time.Time       `gorm:"comment:更新时间"`
}

func (DealerStockModel) TableName() string { return "dealer_stocks" }

// FactoryStockModel GORM厂商库存模型
type FactoryStockModel struct {
	ID        uint      `gorm:"primaryKey"`
	VariantID uint      `gorm:"uniqueIndex:idx_factory_config;not null;comment:版本ID"`
	ColorID   uint      `gorm:"uniqueIndex:idx_factory_config;not null;comment:颜色ID"`
	Quantity  int       `gorm:"not null;default:0;comment:库存数量"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (FactoryStockModel) TableName() string { return "factory_stocks" }

// OrderModel GORM订单模型
// 与OrderItemModel一对多;三个金额字段冗余存储,
// 读取后在应用层按恒等式校验
type OrderModel struct {
	ID             uint             `gorm:"primaryKey"`
	CustomerID     uint             `gorm:"index;not null;comment:客户ID"`
	DealerID       uint             `gorm:"index;not null;comment:经销商ID"`
	OrderDate      time.Time        `gorm:"not null;comment:下单日期"`
	Status         string           `gorm:"index;size:32;not null;comment:订单状态"`
	SubTotal       decimal.Decimal  `gorm:"type:decimal(19,4);not null;default:0;comment:小计"`
	DiscountAmount decimal.Decimal  `gorm:"type:decimal(19,4);not null;default:0;comment:折扣金额"`
	TotalAmount    decimal.Decimal  `gorm:"type:decimal(19,4);not null;default:0;comment:总额"`
	PaymentMethod  *string          `gorm:"size:20;comment:支付方式"`
	PromotionID    *uint            `gorm:"index;comment:促销ID"`
	Items          []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt      time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt      time.Time        `gorm:"comment:更新时间"`
}

func (OrderModel) TableName() string { return "orders" }

// OrderItemModel GORM订单明细模型
// unit_price是创建时的价格快照
type OrderItemModel struct {
	ID         uint            `gorm:"primaryKey"`
	OrderID    uint            `gorm:"index;not null;comment:订单ID"`
	StockID    uint            `gorm:"index;not null;comment:库存行ID"`
	Quantity   int             `gorm:"not null;comment:数量"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(19,4);not null;comment:单价快照"`
	FinalPrice decimal.Decimal `gorm:"type:decimal(19,4);not null;comment:明细小计"`
	CreatedAt  time.Time       `gorm:"comment:创建时间"`
	UpdatedAt  time.Time       `gorm:"comment:更新时间"`
}

func (OrderItemModel) TableName() string { return "order_items" }

// PromotionModel GORM促销模型
type PromotionModel struct {
	ID        uint            `gorm:"primaryKey"`
	DealerID  uint            `gorm:"index;not null;comment:经销商ID"`
	Name      string          `gorm:"size:100;not null;comment:促销名称"`
	Type      string          `gorm:"size:20;not null;comment:促销类型"`
	Value     decimal.Decimal `gorm:"type:decimal(19,4);not null;comment:金额或百分比"`
	Status    string          `gorm:"index;size:20;not null;comment:状态"`
	StartDate time.Time       `gorm:"not null;comment:开始日期"`
	EndDate   time.Time       `gorm:"not null;comment:结束日期"`
	CreatedAt time.Time       `gorm:"comment:创建时间"`
	UpdatedAt time.Time       `gorm:"comment:更新时间"`
}

func (PromotionModel) TableName() string { return "promotions" }

// PaymentModel GORM支付记录模型
type PaymentModel struct {
	ID          uint            `gorm:"primaryKey"`
	OrderID     uint            `gorm:"index;not null;comment:订单ID"`
	Amount      decimal.Decimal `gorm:"type:decimal(19,4);not null;comment:金额"`
	Method      string          `gorm:"size:20;not null;comment:支付方式"`
	Status      string          `gorm:"size:20;not null;comment:状态"`
	PaymentDate time.Time       `gorm:"not null;comment:支付日期"`
	Note        string          `gorm:"size:255;comment:备注"`
	CreatedAt   time.Time       `gorm:"comment:创建时间"`
	UpdatedAt   time.Time       `gorm:"comment:更新时间"`
}

func (PaymentModel) TableName() string { return "payments" }

// DistributionRequestModel GORM调拨申请模型
type DistributionRequestModel struct {
	ID        uint      `gorm:"primaryKey"`
	DealerID  uint      `gorm:"index;not null;comment:申请经销商ID"`
	VariantID uint      `gorm:"not null;comment:版本ID"`
	ColorID   uint      `gorm:"not null;comment:颜色ID"`
	Quantity  int       `gorm:"not null;comment:申请数量"`
	Status    string    `gorm:"index;size:20;not null;comment:状态"`
	Reason    string    `gorm:"size:255;comment:驳回原因"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (DistributionRequestModel) TableName() string { return "distribution_requests" }
