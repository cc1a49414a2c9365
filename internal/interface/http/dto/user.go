package dto

// RegisterRequest HTTP注册请求
// role取值:Admin/EVMStaff/DealerManager/DealerStaff(大小写不敏感)
// 经销商侧角色必须带dealer_id
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"manager@dealer1.vn"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"S3cret!pass"`
	FullName string `json:"full_name" binding:"required,max=100" example:"阮文雄"`
	Role     string `json:"role" binding:"required" example:"DealerManager"`
	DealerID uint   `json:"dealer_id" binding:"omitempty" example:"1"`
}

// LoginRequest HTTP登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"manager@dealer1.vn"`
	Password string `json:"password" binding:"required" example:"S3cret!pass"`
}

// CreateDealerRequest HTTP创建经销商请求
type CreateDealerRequest struct {
	Name    string `json:"name" binding:"required,max=100" example:"河内第一经销商"`
	Address string `json:"address" binding:"max=255" example:"河内市栋多郡"`
	Phone   string `json:"phone" binding:"max=20" example:"02438561234"`
}
