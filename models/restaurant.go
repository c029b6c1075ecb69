package models

import "time"

type Restaurant struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"user_id" gorm:"not null"`
	User         User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name         string     `json:"name" gorm:"not null"`
	Location     string     `json:"location"`
	Address      string     `json:"address"`
	Contact      string     `json:"contact"`
	Cuisine      string     `json:"cuisine"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	OpeningHours string     `json:"opening_hours"`
	Rating       float64    `json:"rating" gorm:"default:0"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	FoodItems    []FoodItem `json:"food_items,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
