package catalog

import "time"

// VehicleModel 车型（如 VF3、VF5）
type VehicleModel struct {
	ID          uint
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Variant 车型版本（如 VF3 Eco、VF3 Plus），归属一个车型
type Variant struct {
	ID         uint
	ModelID    uint
	Name       string
	BatteryKWh float64 // 电池容量(kWh)
	RangeKm    int     // 续航里程(km)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Color 车身颜色
type Color struct {
	ID        uint
	Name      string
	HexCode   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
