package dto

// CreateDraftRequest HTTP创建草稿订单请求
type CreateDraftRequest struct {
	CustomerID uint `json:"customer_id" binding:"required" example:"10"`
}

// AddLineItemRequest HTTP添加订单明细请求
// 配置按名称指定(车型+版本+颜色),名称匹配大小写不敏感
type AddLineItemRequest struct {
	ModelName   string `json:"model_name" binding:"required,max=100" example:"VF3"`
	VariantName string `json:"variant_name" binding:"required,max=100" example:"Eco"`
	ColorName   string `json:"color_name" binding:"required,max=50" example:"White"`
	Quantity    int    `json:"quantity" binding:"required,min=1,max=999" example:"2"`
}

// UpdateLineItemRequest HTTP修改明细数量请求
type UpdateLineItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=999" example:"3"`
}

// ApplyPromotionRequest HTTP应用促销请求
// promotion_id为null时表示移除当前促销
type ApplyPromotionRequest struct {
	PromotionID *uint `json:"promotion_id" example:"5"`
}

// SetStatusRequest HTTP设置订单状态请求
type SetStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Confirmed"`
}

// SetPaymentMethodRequest HTTP设置支付方式请求
type SetPaymentMethodRequest struct {
	Method string `json:"method" binding:"required" example:"Cash"`
}
