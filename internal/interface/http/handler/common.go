// Package handler HTTP处理器
//
// 分层约定:Handler只做参数绑定、身份提取和响应构建,
// 业务规则(经销商归属、库存校验、金额计算)全部在应用层用例里
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lekimlong/evdealer/pkg/response"
)

// parseIDParam 解析路径中的数字ID,非法时直接写400响应并返回false
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, http.StatusBadRequest, 40000, "非法的"+name+"参数")
		return 0, false
	}
	return uint(id), true
}

// parsePageQuery 解析分页参数,缺省page=1/page_size=20
func parsePageQuery(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// bindError 参数绑定失败的统一响应
func bindError(c *gin.Context, err error) {
	response.ErrorWithCode(c, http.StatusBadRequest, 40000, "参数错误: "+err.Error())
}
