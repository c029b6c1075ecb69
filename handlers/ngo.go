package handlers

import (
	"net/http"

	"food-rescue-api/config"
	"food-rescue-api/middleware"
	"food-rescue-api/models"

	"github.com/gin-gonic/gin"
)

// ListNGOs returns all NGOs, optionally filtered by verification (public)
func ListNGOs(c *gin.Context) {
	query := config.DB.Preload("User")
	if verified := c.Query("verified"); verified != "" {
		query = query.Where("verified = ?", verified == "true")
	}

	var ngos []models.NGO
	query.Find(&ngos)
	c.JSON(http.StatusOK, gin.H{"count": len(ngos), "ngos": ngos})
}

// GetNGO returns a single NGO (public)
func GetNGO(c *gin.Context) {
	var ngo models.NGO
	if err := config.DB.Preload("User").First(&ngo, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "NGO not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ngo": ngo})
}

// GetMyNGOProfile returns the caller's NGO profile
func GetMyNGOProfile(c *gin.Context) {
	var ngo models.NGO
	if err := config.DB.Preload("User").Where("user_id = ?", middleware.GetUserID(c)).First(&ngo).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No NGO profile found for your account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ngo": ngo})
}

// UpdateMyNGOProfile partially updates the caller's NGO profile
func UpdateMyNGOProfile(c *gin.Context) {
	var ngo models.NGO
	if err := config.DB.Where("user_id = ?", middleware.GetUserID(c)).First(&ngo).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No NGO profile found for your account"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Verified is deliberately absent: only an admin may flip it
	allowed := map[string]bool{
		"name": true, "address": true, "phone": true, "beneficiaries": true,
		"description": true, "website": true, "image": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}

	if err := config.DB.Model(&ngo).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update NGO profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "NGO profile updated", "ngo": ngo})
}

// VerifyNGO flips the verified flag to true (admin only). Re-verifying an
// already-verified NGO succeeds silently.
func VerifyNGO(c *gin.Context) {
	var ngo models.NGO
	if err := config.DB.First(&ngo, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "NGO not found"})
		return
	}

	if !ngo.Verified {
		if err := config.DB.Model(&ngo).Update("verified", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify NGO"})
			return
		}
		ngo.Verified = true

		config.DB.Create(&models.Notification{
			UserID:  ngo.UserID,
			Type:    models.NotificationSystem,
			Message: "Your NGO has been verified. You can now place orders.",
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": "NGO verified", "ngo": ngo})
}
