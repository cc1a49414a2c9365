package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 测试依赖一个本地运行的完整服务(MySQL+Redis+API),
// 服务未启动时整组测试跳过而不是失败

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// PingURL 健康检查URL
	PingURL = "http://localhost:8080/ping"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// PageData 分页响应结构
type PageData struct {
	List  json.RawMessage `json:"list"`
	Total int64           `json:"total"`
}

// LoginData 登录响应数据
type LoginData struct {
	UserID      uint   `json:"user_id"`
	DealerID    uint   `json:"dealer_id"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
}

// serverState 0=未探测 1=可用 2=不可用
var serverState int32

// RequireServer 探测服务可用性,不可用时跳过当前测试
func RequireServer(t *testing.T) {
	t.Helper()

	switch atomic.LoadInt32(&serverState) {
	case 1:
		return
	case 2:
		t.Skip("本地服务未启动,跳过集成测试")
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(PingURL)
	if err != nil {
		atomic.StoreInt32(&serverState, 2)
		t.Skip("本地服务未启动,跳过集成测试")
	}
	resp.Body.Close()
	atomic.StoreInt32(&serverState, 1)
}

// doJSON 发送请求并解析统一响应
func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))
	return &result
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPost, url, data, token)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPut, url, data, token)
}

// PatchJSON 发送PATCH请求
func PatchJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPatch, url, data, token)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodGet, url, nil, token)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodDelete, url, nil, token)
}

// GenerateTestEmail 生成唯一的测试邮箱,避免重复运行时邮箱冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.vn", prefix, time.Now().UnixNano())
}

// UniqueName 生成唯一名称(车型/颜色等带唯一索引的实体用)
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// RegisterAndLogin 注册指定角色的用户并返回Token
func RegisterAndLogin(t *testing.T, prefix, role string, dealerID uint) (string, *LoginData) {
	t.Helper()

	email := GenerateTestEmail(prefix)
	registerReq := map[string]interface{}{
		"email":     email,
		"password":  "Test1234!",
		"full_name": prefix,
		"role":      role,
		"dealer_id": dealerID,
	}
	registerResp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	loginResp := PostJSON(t, BaseURL+"/users/login", map[string]string{
		"email":    email,
		"password": "Test1234!",
	}, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")
	return loginData.AccessToken, &loginData
}

// SetupDealer 创建测试经销商并返回ID(需要厂商侧Token)
func SetupDealer(t *testing.T, evmToken string) uint {
	t.Helper()

	resp := PostJSON(t, BaseURL+"/dealers", map[string]interface{}{
		"name":    UniqueName("测试经销商"),
		"address": "河内市",
		"phone":   "0240000000",
	}, evmToken)
	require.Equal(t, 0, resp.Code, "创建经销商失败: %s", resp.Message)

	var data struct {
		DealerID uint `json:"dealer_id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.DealerID
}

// SetupCatalog 创建车型+版本+颜色,返回版本ID、颜色ID和三个名称
func SetupCatalog(t *testing.T, evmToken string) (variantID, colorID uint, modelName, variantName, colorName string) {
	t.Helper()

	modelName = UniqueName("VF")
	modelResp := PostJSON(t, BaseURL+"/catalog/models", map[string]interface{}{
		"name":        modelName,
		"description": "集成测试车型",
	}, evmToken)
	require.Equal(t, 0, modelResp.Code, "创建车型失败: %s", modelResp.Message)

	var modelData struct {
		ModelID uint `json:"model_id"`
	}
	require.NoError(t, json.Unmarshal(modelResp.Data, &modelData))

	variantName = "Eco"
	variantResp := PostJSON(t, BaseURL+"/catalog/variants", map[string]interface{}{
		"model_id":    modelData.ModelID,
		"name":        variantName,
		"battery_kwh": 18.64,
		"range_km":    210,
	}, evmToken)
	require.Equal(t, 0, variantResp.Code, "创建版本失败: %s", variantResp.Message)

	var variantData struct {
		VariantID uint `json:"variant_id"`
	}
	require.NoError(t, json.Unmarshal(variantResp.Data, &variantData))

	colorName = UniqueName("Color")
	colorResp := PostJSON(t, BaseURL+"/catalog/colors", map[string]interface{}{
		"name":     colorName,
		"hex_code": "#FFFFFF",
	}, evmToken)
	require.Equal(t, 0, colorResp.Code, "创建颜色失败: %s", colorResp.Message)

	var colorData struct {
		ColorID uint `json:"color_id"`
	}
	require.NoError(t, json.Unmarshal(colorResp.Data, &colorData))

	return variantData.VariantID, colorData.ColorID, modelName, variantName, colorName
}
