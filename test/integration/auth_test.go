package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 账号与会话集成测试

func TestRegisterAndLogin(t *testing.T) {
	RequireServer(t)

	email := GenerateTestEmail("auth")
	password := "S3cret!pass"

	// 注册厂商员工
	registerResp := PostJSON(t, BaseURL+"/users/register", map[string]interface{}{
		"email":     email,
		"password":  password,
		"full_name": "测试用户",
		"role":      "EVMStaff",
	}, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	var registered struct {
		UserID uint   `json:"user_id"`
		Email  string `json:"email"`
		Role   string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(registerResp.Data, &registered))
	assert.NotZero(t, registered.UserID)
	assert.Equal(t, "EVMStaff", registered.Role)

	t.Run("重复邮箱注册失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/users/register", map[string]interface{}{
			"email":     email,
			"password":  password,
			"full_name": "测试用户二",
			"role":      "EVMStaff",
		}, "")
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("非法角色注册失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/users/register", map[string]interface{}{
			"email":     GenerateTestEmail("badrole"),
			"password":  password,
			"full_name": "测试用户三",
			"role":      "SuperUser",
		}, "")
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("错误密码登录失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/users/login", map[string]interface{}{
			"email":    email,
			"password": "wrong-password",
		}, "")
		assert.NotEqual(t, 0, resp.Code)
	})

	// 正确登录
	loginResp := PostJSON(t, BaseURL+"/users/login", map[string]interface{}{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var login LoginData
	require.NoError(t, json.Unmarshal(loginResp.Data, &login))
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, registered.UserID, login.UserID)
}

func TestLogoutRevokesToken(t *testing.T) {
	RequireServer(t)

	token, _ := RegisterAndLogin(t, "logout", "EVMStaff", 0)

	// 登出前可访问受保护接口
	resp := GetJSON(t, BaseURL+"/catalog/models", token)
	require.Equal(t, 0, resp.Code, "登出前访问应成功: %s", resp.Message)

	logoutResp := PostJSON(t, BaseURL+"/users/logout", nil, token)
	require.Equal(t, 0, logoutResp.Code, "登出失败: %s", logoutResp.Message)

	// 同一token再访问应被黑名单拦截
	afterResp := GetJSON(t, BaseURL+"/catalog/models", token)
	assert.NotEqual(t, 0, afterResp.Code, "吊销的token不应再通过认证")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	RequireServer(t)

	for name, url := range map[string]string{
		"目录": BaseURL + "/catalog/models",
		"库存": BaseURL + "/inventory",
		"订单": BaseURL + "/orders",
		"客户": BaseURL + "/customers",
	} {
		t.Run(name, func(t *testing.T) {
			resp := GetJSON(t, url, "")
			assert.NotEqual(t, 0, resp.Code)
		})

		t.Run(name+"_伪token", func(t *testing.T) {
			resp := GetJSON(t, url, "not-a-real-token")
			assert.NotEqual(t, 0, resp.Code)
		})
	}
}
