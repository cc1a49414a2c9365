package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 调拨流程集成测试
//
// 注意:批准路径依赖厂商库存表有对应配置的存量,
// 干净环境下没有播种入口,这里只走驳回与权限分支。

func createDistributionRequest(t *testing.T, managerToken string, variantID, colorID uint) uint {
	t.Helper()
	resp := PostJSON(t, BaseURL+"/distributions", map[string]interface{}{
		"variant_id": variantID,
		"color_id":   colorID,
		"quantity":   5,
	}, managerToken)
	require.Equal(t, 0, resp.Code, "创建调拨申请失败: %s", resp.Message)

	var data struct {
		RequestID uint   `json:"request_id"`
		Status    string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Equal(t, "Pending", data.Status)
	return data.RequestID
}

// TestDistributionRejectFlow 申请→驳回→终态不可再变
func TestDistributionRejectFlow(t *testing.T) {
	RequireServer(t)

	evmToken, _ := RegisterAndLogin(t, "evm_dist", "EVMStaff", 0)
	dealerID := SetupDealer(t, evmToken)
	variantID, colorID, _, _, _ := SetupCatalog(t, evmToken)

	managerToken, _ := RegisterAndLogin(t, "dist_manager", "DealerManager", dealerID)
	staffToken, _ := RegisterAndLogin(t, "dist_staff", "DealerStaff", dealerID)

	t.Run("销售无权发起申请", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/distributions", map[string]interface{}{
			"variant_id": variantID,
			"color_id":   colorID,
			"quantity":   5,
		}, staffToken)
		assert.NotEqual(t, 0, resp.Code)
	})

	requestID := createDistributionRequest(t, managerToken, variantID, colorID)

	// 经销商侧可见自己的申请
	mineResp := GetJSON(t, BaseURL+"/distributions", managerToken)
	require.Equal(t, 0, mineResp.Code)
	var mine []struct {
		RequestID uint `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(mineResp.Data, &mine))
	found := false
	for _, r := range mine {
		if r.RequestID == requestID {
			found = true
		}
	}
	assert.True(t, found, "申请应出现在本店列表中")

	t.Run("经销商无权查看待审批队列", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/distributions/pending", managerToken)
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("经销商无权审批", func(t *testing.T) {
		resp := PutJSON(t, fmt.Sprintf("%s/distributions/%d/decision", BaseURL, requestID), map[string]interface{}{
			"approve": false,
			"reason":  "自审自批",
		}, managerToken)
		assert.NotEqual(t, 0, resp.Code)
	})

	// 厂商待审批队列能看到该申请
	pendingResp := GetJSON(t, BaseURL+"/distributions/pending", evmToken)
	require.Equal(t, 0, pendingResp.Code)

	// 驳回
	rejectResp := PutJSON(t, fmt.Sprintf("%s/distributions/%d/decision", BaseURL, requestID), map[string]interface{}{
		"approve": false,
		"reason":  "厂商排产不足",
	}, evmToken)
	require.Equal(t, 0, rejectResp.Code, "驳回失败: %s", rejectResp.Message)

	var rejected struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(rejectResp.Data, &rejected))
	assert.Equal(t, "Rejected", rejected.Status)
	assert.Equal(t, "厂商排产不足", rejected.Reason)

	t.Run("已决的申请不可再审", func(t *testing.T) {
		resp := PutJSON(t, fmt.Sprintf("%s/distributions/%d/decision", BaseURL, requestID), map[string]interface{}{
			"approve": true,
		}, evmToken)
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("驳回件不可标记到货", func(t *testing.T) {
		resp := PutJSON(t, fmt.Sprintf("%s/distributions/%d/delivered", BaseURL, requestID), nil, managerToken)
		assert.NotEqual(t, 0, resp.Code)
	})
}

// TestDistributionApproveWithoutFactoryStock 厂商无存量时批准应失败且申请保持待审
func TestDistributionApproveWithoutFactoryStock(t *testing.T) {
	RequireServer(t)

	evmToken, _ := RegisterAndLogin(t, "evm_nostock", "EVMStaff", 0)
	dealerID := SetupDealer(t, evmToken)
	variantID, colorID, _, _, _ := SetupCatalog(t, evmToken)
	managerToken, _ := RegisterAndLogin(t, "nostock_manager", "DealerManager", dealerID)

	requestID := createDistributionRequest(t, managerToken, variantID, colorID)

	// 新建的配置厂商库存表里没有对应行
	resp := PutJSON(t, fmt.Sprintf("%s/distributions/%d/decision", BaseURL, requestID), map[string]interface{}{
		"approve": true,
	}, evmToken)
	assert.NotEqual(t, 0, resp.Code, "无厂商存量时批准应失败")

	// 失败后申请仍为待审,可被驳回
	rejectResp := PutJSON(t, fmt.Sprintf("%s/distributions/%d/decision", BaseURL, requestID), map[string]interface{}{
		"approve": false,
		"reason":  "无备货",
	}, evmToken)
	assert.Equal(t, 0, rejectResp.Code, "失败的批准不应吞掉申请: %s", rejectResp.Message)
}
