package identity

import (
	"context"

	"github.com/lekimlong/evdealer/internal/domain/identity"
)

// RegisterUseCase 注册账号用例
type RegisterUseCase struct {
	userService identity.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService identity.Service) *RegisterUseCase {
	return &RegisterUseCase{userService: userService}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string
	Password string
	FullName string
	Role     string
	DealerID uint
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	DealerID uint   `json:"dealer_id"`
}

// Execute 注册账号(角色解析+领域服务校验)
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	role, ok := identity.ParseRole(req.Role)
	if !ok {
		return nil, identity.ErrInvalidRole
	}

	u, err := uc.userService.Register(ctx, req.Email, req.Password, req.FullName, role, req.DealerID)
	if err != nil {
		return nil, err
	}

	return &RegisterResponse{
		UserID:   u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
		DealerID: u.DealerID,
	}, nil
}
