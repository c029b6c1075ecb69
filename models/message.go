package models

import "time"

// Message is a contact-form submission
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject"`
	Body      string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
