package dto

// CreateModelRequest HTTP创建车型请求
type CreateModelRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"VF3"`
	Description string `json:"description" binding:"max=5000" example:"城市微型电动车"`
}

// CreateVariantRequest HTTP创建车型版本请求
type CreateVariantRequest struct {
	ModelID    uint    `json:"model_id" binding:"required" example:"1"`
	Name       string  `json:"name" binding:"required,max=100" example:"Eco"`
	BatteryKWh float64 `json:"battery_kwh" binding:"omitempty,gt=0" example:"18.64"`
	RangeKm    int     `json:"range_km" binding:"omitempty,gt=0" example:"210"`
}

// CreateColorRequest HTTP创建颜色请求
type CreateColorRequest struct {
	Name    string `json:"name" binding:"required,max=50" example:"White"`
	HexCode string `json:"hex_code" binding:"omitempty,max=10" example:"#FFFFFF"`
}
