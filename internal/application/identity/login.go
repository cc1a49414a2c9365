package identity

import (
	"context"
	"log"
	"time"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/infrastructure/persistence/redis"
	"github.com/lekimlong/evdealer/pkg/jwt"
)

// LoginUseCase 登录用例
// 验证凭据→签发JWT→会话落Redis
type LoginUseCase struct {
	userService  identity.Service
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	userService identity.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
) *LoginUseCase {
	return &LoginUseCase{
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse 登录响应
type LoginResponse struct {
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	DealerID     uint   `json:"dealer_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Execute 登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := uc.userService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	tokenPair, err := uc.jwtManager.GenerateToken(u.ID, u.DealerID, string(u.Role), u.Email)
	if err != nil {
		return nil, err
	}

	// 会话保存失败不阻塞登录
	session := map[string]interface{}{
		"user_id":   u.ID,
		"email":     u.Email,
		"role":      string(u.Role),
		"dealer_id": u.DealerID,
		"login_at":  time.Now().Unix(),
	}
	if err := uc.sessionStore.SaveSession(ctx, u.ID, session, 7*24*time.Hour); err != nil {
		log.Printf("保存会话失败: user_id=%d, err=%v", u.ID, err)
	}

	return &LoginResponse{
		UserID:       u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         string(u.Role),
		DealerID:     u.DealerID,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// LogoutUseCase 登出用例
type LogoutUseCase struct {
	sessionStore *redis.SessionStore
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(sessionStore *redis.SessionStore) *LogoutUseCase {
	return &LogoutUseCase{sessionStore: sessionStore}
}

// Execute 登出:删会话+Token进黑名单(防止过期前继续使用)
func (uc *LogoutUseCase) Execute(ctx context.Context, userID uint, accessToken string) error {
	if err := uc.sessionStore.DeleteSession(ctx, userID); err != nil {
		return err
	}
	return uc.sessionStore.AddToBlacklist(ctx, accessToken, 2*time.Hour)
}
