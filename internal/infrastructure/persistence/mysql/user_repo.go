package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

// userRepository 用户仓储实现(MySQL)
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
func NewUserRepository(db *gorm.DB) identity.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *identity.User) error {
	model := toUserModel(u)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		// 邮箱唯一索引冲突转领域错误,注册接口靠它报"已被注册"
		if isDuplicateError(err) {
			return identity.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建用户失败")
	}
	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*identity.User, error) {
	var model UserModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, identity.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var model UserModel
	if err := getDB(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, identity.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

func toUserModel(u *identity.User) *UserModel {
	return &UserModel{
		ID:       u.ID,
		Email:    u.Email,
		Password: u.Password,
		FullName: u.FullName,
		Role:     string(u.Role),
		DealerID: u.DealerID,
	}
}

func toUserEntity(model *UserModel) *identity.User {
	return &identity.User{
		ID:        model.ID,
		Email:     model.Email,
		Password:  model.Password,
		FullName:  model.FullName,
		Role:      identity.Role(model.Role),
		DealerID:  model.DealerID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
