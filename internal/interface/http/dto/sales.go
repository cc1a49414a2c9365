package dto

// CreateCustomerRequest HTTP录入客户请求
type CreateCustomerRequest struct {
	FullName string `json:"full_name" binding:"required,max=100" example:"阮文安"`
	Phone    string `json:"phone" binding:"required,max=20" example:"0901234567"`
	Email    string `json:"email" binding:"omitempty,email,max=100" example:"an.nguyen@example.com"`
	Address  string `json:"address" binding:"max=255" example:"河内市还剑区"`
}

// CreatePromotionRequest HTTP创建促销请求
// 日期格式：2006-01-02,生效窗口为闭区间
type CreatePromotionRequest struct {
	Name      string `json:"name" binding:"required,max=100" example:"国庆钜惠"`
	Type      string `json:"type" binding:"required" example:"Percentage"`
	Value     string `json:"value" binding:"required" example:"5"`
	StartDate string `json:"start_date" binding:"required" example:"2026-09-01"`
	EndDate   string `json:"end_date" binding:"required" example:"2026-09-07"`
}

// CreatePaymentRequest HTTP记录支付请求
// payment_date缺省为当前时间,分期付款会对同一订单创建多条记录
type CreatePaymentRequest struct {
	OrderID     uint   `json:"order_id" binding:"required" example:"1"`
	Amount      string `json:"amount" binding:"required" example:"50000000.0000"`
	Method      string `json:"method" binding:"required" example:"Installment"`
	PaymentDate string `json:"payment_date" binding:"omitempty" example:"2026-09-05"`
	Note        string `json:"note" binding:"max=255" example:"第一期"`
}

// UpdatePaymentMethodRequest HTTP修改支付方式请求
type UpdatePaymentMethodRequest struct {
	Method string `json:"method" binding:"required" example:"Cash"`
}

// UpdatePaymentStatusRequest HTTP修改支付状态请求
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Completed"`
}
