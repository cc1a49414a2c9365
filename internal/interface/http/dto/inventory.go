package dto

// AddStockRequest HTTP入库请求
type AddStockRequest struct {
	VariantID uint `json:"variant_id" binding:"required" example:"2"`
	ColorID   uint `json:"color_id" binding:"required" example:"3"`
	Quantity  int  `json:"quantity" binding:"required,min=1,max=9999" example:"10"`
}

// SetPriceStatusRequest HTTP设置价格/状态请求
// 两个字段都可选,只更新传入的字段
type SetPriceStatusRequest struct {
	Price  *string `json:"price" binding:"omitempty" example:"250000000.0000"`
	Status *string `json:"status" binding:"omitempty" example:"OnSale"`
}

// CreateDistributionRequest HTTP创建调拨申请请求
type CreateDistributionRequest struct {
	VariantID uint `json:"variant_id" binding:"required" example:"2"`
	ColorID   uint `json:"color_id" binding:"required" example:"3"`
	Quantity  int  `json:"quantity" binding:"required,min=1,max=9999" example:"5"`
}

// DecideDistributionRequest HTTP审批调拨申请请求
type DecideDistributionRequest struct {
	Approve bool   `json:"approve" example:"true"`
	Reason  string `json:"reason" binding:"max=255" example:"库存不足"`
}
