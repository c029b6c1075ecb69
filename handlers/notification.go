package handlers

import (
	"net/http"

	"food-rescue-api/config"
	"food-rescue-api/middleware"
	"food-rescue-api/models"

	"github.com/gin-gonic/gin"
)

// ListNotifications returns the caller's 20 most recent notifications
func ListNotifications(c *gin.Context) {
	var notifications []models.Notification
	config.DB.Where("user_id = ?", middleware.GetUserID(c)).
		Order("created_at desc").
		Limit(20).
		Find(&notifications)
	c.JSON(http.StatusOK, gin.H{"count": len(notifications), "notifications": notifications})
}

type CreateNotificationRequest struct {
	UserID  uint                    `json:"user_id" binding:"required"`
	Type    models.NotificationType `json:"type" binding:"required,oneof=order system alert update"`
	Message string                  `json:"message" binding:"required"`
	Link    string                  `json:"link"`
}

// CreateNotification targets a user with a notification (admin only)
func CreateNotification(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var target models.User
	if err := config.DB.First(&target, req.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	notification := models.Notification{
		UserID:  req.UserID,
		Type:    req.Type,
		Message: req.Message,
		Link:    req.Link,
	}
	if err := config.DB.Create(&notification).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notification"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"notification": notification})
}

// MarkNotificationRead marks one of the caller's notifications read
func MarkNotificationRead(c *gin.Context) {
	var notification models.Notification
	err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), middleware.GetUserID(c)).
		First(&notification).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if err := config.DB.Model(&notification).Update("read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	notification.Read = true
	c.JSON(http.StatusOK, gin.H{"notification": notification})
}

// MarkAllNotificationsRead marks all of the caller's unread notifications read
func MarkAllNotificationsRead(c *gin.Context) {
	err := config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", middleware.GetUserID(c), false).
		Update("read", true).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
