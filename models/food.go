package models

import "time"

type FoodItem struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	RestaurantID  uint       `json:"restaurant_id" gorm:"not null"`
	Restaurant    Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Name          string     `json:"name" gorm:"not null"`
	Description   string     `json:"description"`
	Image         string     `json:"image"`
	Category      string     `json:"category"`
	Quantity      int        `json:"quantity" gorm:"not null;default:1"`
	OriginalPrice float64    `json:"original_price" gorm:"not null"`
	DiscountPrice float64    `json:"discount_price"`
	ExpiryTime    time.Time  `json:"expiry_time"`
	IsAvailable   bool       `json:"is_available" gorm:"default:true"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Price returns the discount price when one is set, else the original price.
// Order lines snapshot this value at creation time.
func (f *FoodItem) Price() float64 {
	if f.DiscountPrice > 0 {
		return f.DiscountPrice
	}
	return f.OriginalPrice
}
