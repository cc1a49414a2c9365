package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/infrastructure/persistence/redis"
	"github.com/lekimlong/evdealer/pkg/jwt"
	"github.com/lekimlong/evdealer/pkg/response"
)

// AuthMiddleware JWT认证中间件
//
// 设计说明:
// 1. 从Header提取Token并校验格式
// 2. 先查黑名单(已登出Token立即失效),再验签解析Claims
// 3. 把Claims还原成identity.Caller注入Context,
//    经销商归属等业务鉴权统一在应用层做,中间件只负责身份
type AuthMiddleware struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// RequireAuth 要求登录
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.ErrorWithCode(c, http.StatusUnauthorized, 40100, "请先登录")
			c.Abort()
			return
		}

		// 格式：Authorization: Bearer <token>
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.ErrorWithCode(c, http.StatusUnauthorized, 40101, "Token格式错误")
			c.Abort()
			return
		}
		tokenString := parts[1]

		isBlacklisted, err := m.sessionStore.IsInBlacklist(c.Request.Context(), tokenString)
		if err != nil {
			response.ErrorWithCode(c, http.StatusInternalServerError, 50000, "验证Token失败")
			c.Abort()
			return
		}
		if isBlacklisted {
			response.ErrorWithCode(c, http.StatusUnauthorized, 40102, "Token已失效，请重新登录")
			c.Abort()
			return
		}

		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set("caller", identity.Caller{
			UserID:   claims.UserID,
			DealerID: claims.DealerID,
			Role:     identity.Role(claims.Role),
		})
		c.Set("access_token", tokenString)

		c.Next()
	}
}

// GetCaller 从Context获取当前调用者身份
// 仅在RequireAuth之后的Handler中使用,未登录时返回零值Caller
func GetCaller(c *gin.Context) identity.Caller {
	if v, exists := c.Get("caller"); exists {
		if caller, ok := v.(identity.Caller); ok {
			return caller
		}
	}
	return identity.Caller{}
}

// GetAccessToken 从Context获取原始Token(登出时加黑名单用)
func GetAccessToken(c *gin.Context) string {
	if v, exists := c.Get("access_token"); exists {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}
