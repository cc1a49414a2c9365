package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lekimlong/evdealer/pkg/errors"
)

type fakeUserRepo struct {
	users  map[string]*User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, u *User) error {
	if _, ok := r.users[u.Email]; ok {
		return ErrEmailDuplicate
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

type fakeDealerChecker struct {
	existing map[uint]bool
}

func (c *fakeDealerChecker) Exists(_ context.Context, dealerID uint) (bool, error) {
	return c.existing[dealerID], nil
}

func newTestService() (Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewService(repo, &fakeDealerChecker{existing: map[uint]bool{1: true}}), repo
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), "staff@dealer1.vn", "Pass1234", "陈氏兰", RoleDealerStaff, 1)
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, RoleDealerStaff, u.Role)
	assert.NotEqual(t, "Pass1234", u.Password, "密码必须加密存储")
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		fullName string
		role     Role
		dealerID uint
	}{
		{"邮箱格式非法", "not-an-email", "Pass1234", "测试", RoleDealerStaff, 1},
		{"密码过短", "a@test.vn", "Pw1", "测试", RoleDealerStaff, 1},
		{"密码缺数字", "a@test.vn", "Password", "测试", RoleDealerStaff, 1},
		{"姓名过短", "a@test.vn", "Pass1234", "x", RoleDealerStaff, 1},
		{"经销商侧角色未指定经销商", "a@test.vn", "Pass1234", "测试", RoleDealerManager, 0},
		{"指定的经销商不存在", "a@test.vn", "Pass1234", "测试", RoleDealerManager, 99},
		{"厂商侧角色不能归属经销商", "a@test.vn", "Pass1234", "测试", RoleEVMStaff, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.email, tt.password, tt.fullName, tt.role, tt.dealerID)
			assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument), "期望参数错误,实际: %v", err)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "dup@test.vn", "Pass1234", "测试", RoleEVMStaff, 0)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "dup@test.vn", "Pass1234", "测试二", RoleEVMStaff, 0)
	assert.ErrorIs(t, err, ErrEmailDuplicate)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "login@test.vn", "Pass1234", "测试", RoleEVMStaff, 0)
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "login@test.vn", "Pass1234")
	require.NoError(t, err)
	assert.Equal(t, "login@test.vn", u.Email)

	t.Run("密码错误", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "login@test.vn", "WrongPass1")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("用户不存在返回同一错误", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ghost@test.vn", "Pass1234")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})
}
