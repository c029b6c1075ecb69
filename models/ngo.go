package models

import "time"

// NGO is the role profile for ngo-role users. Only verified NGOs may place
// orders; verification is an admin action.
type NGO struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"not null"`
	User          User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name          string    `json:"name" gorm:"not null"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	Beneficiaries string    `json:"beneficiaries"`
	Description   string    `json:"description"`
	Website       string    `json:"website"`
	Image         string    `json:"image"`
	Verified      bool      `json:"verified" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
