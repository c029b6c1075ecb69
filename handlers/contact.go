package handlers

import (
	"log"
	"net/http"

	"food-rescue-api/config"
	"food-rescue-api/models"
	"food-rescue-api/utils"

	"github.com/gin-gonic/gin"
)

type CreateMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// CreateMessage stores a contact-form submission and notifies the admin by
// email. The record is the source of truth: a failed send is logged and the
// request still succeeds.
func CreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	}
	if err := config.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}

	if err := utils.SendContactEmail(utils.ContactEmailData{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}); err != nil {
		log.Println("Contact email not sent:", err)
	}

	c.JSON(http.StatusCreated, gin.H{"message": message})
}

// ListMessages returns all contact messages, newest first (admin only)
func ListMessages(c *gin.Context) {
	var messages []models.Message
	config.DB.Order("created_at desc").Find(&messages)
	c.JSON(http.StatusOK, gin.H{"count": len(messages), "messages": messages})
}

// GetMessage returns a single contact message (admin only)
func GetMessage(c *gin.Context) {
	var message models.Message
	if err := config.DB.First(&message, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// DeleteMessage removes a contact message (admin only)
func DeleteMessage(c *gin.Context) {
	var message models.Message
	if err := config.DB.First(&message, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	config.DB.Delete(&message)
	c.JSON(http.StatusOK, gin.H{"message": "Message removed"})
}
