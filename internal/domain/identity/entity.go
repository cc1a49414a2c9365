package identity

import (
	"strings"
	"time"
)

// Role 用户角色
// 设计说明：旧系统角色是散落各处做字符串比较的自由文本，
// 这里收敛为封闭枚举，入口处一次性解析校验
type Role string

const (
	RoleAdmin         Role = "Admin"         // 系统管理员
	RoleEVMStaff      Role = "EVMStaff"      // 厂商员工（管理车型目录、审批调拨）
	RoleDealerManager Role = "DealerManager" // 经销商店长（定价、促销、调拨申请）
	RoleDealerStaff   Role = "DealerStaff"   // 经销商销售（客户、订单、支付）
)

// ParseRole 解析角色字符串（大小写不敏感）
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, true
	case "evmstaff":
		return RoleEVMStaff, true
	case "dealermanager":
		return RoleDealerManager, true
	case "dealerstaff":
		return RoleDealerStaff, true
	default:
		return "", false
	}
}

// IsDealerSide 是否为经销商侧角色
func (r Role) IsDealerSide() bool {
	return r == RoleDealerManager || r == RoleDealerStaff
}

// Caller 调用者身份
// 设计说明：
// 1. 旧系统通过线程级安全上下文隐式读取"当前用户"，
//    这里改为显式参数，所有用例的签名都携带Caller
// 2. 认证（Token→Caller）发生在HTTP中间件，核心层只做经销商归属与角色校验
type Caller struct {
	UserID   uint
	DealerID uint // 厂商侧角色为0
	Role     Role
}

// OwnsDealer 判断调用者是否属于指定经销商
// 订单、库存、促销、支付的所有变更操作都必须先通过此校验
func (c Caller) OwnsDealer(dealerID uint) bool {
	return c.Role.IsDealerSide() && c.DealerID == dealerID
}

// User 用户实体（经销商员工/厂商员工账号）
type User struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希
	FullName  string
	Role      Role
	DealerID  uint // 厂商员工为0
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建用户实体（工厂方法）
func NewUser(email, hashedPassword, fullName string, role Role, dealerID uint) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		FullName:  fullName,
		Role:      role,
		DealerID:  dealerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Caller 从用户实体构造调用者身份
func (u *User) Caller() Caller {
	return Caller{
		UserID:   u.ID,
		DealerID: u.DealerID,
		Role:     u.Role,
	}
}
