package models

import "time"

// OrderStatus represents all possible states of a donation order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusInTransit OrderStatus = "in-transit"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID                  uint        `json:"id" gorm:"primaryKey"`
	UserID              uint        `json:"user_id" gorm:"not null"`
	User                User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	NGOID               uint        `json:"ngo_id" gorm:"column:ngo_id;not null"`
	NGO                 NGO         `json:"ngo,omitempty" gorm:"foreignKey:NGOID"`
	Lines               []OrderLine `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	TotalPrice          float64     `json:"total_price"`
	Status              OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	DeliveryAddress     string      `json:"delivery_address" gorm:"not null"`
	DeliveryContact     string      `json:"delivery_contact"`
	DeliveryTime        time.Time   `json:"delivery_time"`
	SpecialInstructions string      `json:"special_instructions"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// OrderLine is one (food item, quantity) pair within an order. Price and Name
// are snapshots taken at order-creation time; later edits to the food item do
// not rewrite history.
type OrderLine struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null"`
	FoodItemID uint     `json:"food_item_id" gorm:"not null"`
	FoodItem   FoodItem `json:"food_item,omitempty" gorm:"foreignKey:FoodItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	Price      float64  `json:"price" gorm:"not null"`
	Name       string   `json:"name"`
}
