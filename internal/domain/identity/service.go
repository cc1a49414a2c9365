package identity

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// Service 用户领域服务
// 密码加密、凭据验证等不属于单个实体的业务逻辑放在这里
type Service interface {
	// Register 注册账号
	Register(ctx context.Context, email, password, fullName string, role Role, dealerID uint) (*User, error)

	// Authenticate 验证邮箱密码
	Authenticate(ctx context.Context, email, password string) (*User, error)
}

// DealerChecker 校验经销商归属是否真实存在
// 由经销商仓储实现,避免identity直接依赖dealer包
type DealerChecker interface {
	Exists(ctx context.Context, dealerID uint) (bool, error)
}

type service struct {
	repo    Repository
	dealers DealerChecker
}

// NewService 创建用户领域服务
func NewService(repo Repository, dealers DealerChecker) Service {
	return &service{repo: repo, dealers: dealers}
}

// Register 注册账号
// 业务规则：
// 1. 邮箱格式校验
// 2. 密码强度校验（8-20位，包含字母和数字）
// 3. 经销商侧角色必须归属一个真实存在的经销商；厂商侧角色DealerID必须为0
// 4. 密码bcrypt加密（cost=12），邮箱唯一性由数据库UNIQUE索引保证
func (s *service) Register(ctx context.Context, email, password, fullName string, role Role, dealerID uint) (*User, error) {
	if !isValidEmail(email) {
		return nil, apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	}

	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	if len(fullName) < 2 || len(fullName) > 100 {
		return nil, apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "姓名长度应为2-100个字符")
	}

	// 角色与经销商归属必须一致,归属的经销商必须真实存在
	if role.IsDealerSide() {
		if dealerID == 0 {
			return nil, ErrDealerRequired
		}
		exists, err := s.dealers.Exists(ctx, dealerID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrDealerNotExists
		}
	} else if dealerID != 0 {
		return nil, apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "厂商侧角色不能归属经销商")
	}

	// bcrypt自动加盐，cost=12平衡安全性与性能
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	user := NewUser(email, string(hashedPassword), fullName, role, dealerID)

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err // Repository已转换为业务错误
	}

	return user, nil
}

// Authenticate 验证邮箱密码
// 注意：用户不存在与密码错误返回同一个错误，避免账号枚举
func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, ErrInvalidPassword
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	return user, nil
}

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// isValidEmail 邮箱格式校验
func isValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// validatePasswordStrength 密码强度校验（8-20位，包含字母和数字）
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "密码长度应为8-20位")
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasDigit {
		return apperrors.New(apperrors.KindInvalidArgument, apperrors.ErrCodeInvalidParams, "密码必须包含字母和数字")
	}

	return nil
}
