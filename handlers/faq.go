package handlers

import (
	"net/http"

	"food-rescue-api/config"
	"food-rescue-api/models"

	"github.com/gin-gonic/gin"
)

// ListFAQs returns all FAQs, newest first (public)
func ListFAQs(c *gin.Context) {
	var faqs []models.FAQ
	config.DB.Order("created_at desc").Find(&faqs)
	c.JSON(http.StatusOK, gin.H{"count": len(faqs), "faqs": faqs})
}

type FAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// CreateFAQ adds a new FAQ entry (admin only)
func CreateFAQ(c *gin.Context) {
	var req FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faq := models.FAQ{Question: req.Question, Answer: req.Answer}
	if err := config.DB.Create(&faq).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create FAQ"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"faq": faq})
}

// UpdateFAQ partially updates an FAQ (admin only)
func UpdateFAQ(c *gin.Context) {
	var faq models.FAQ
	if err := config.DB.First(&faq, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
		return
	}

	var req struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Question != "" {
		faq.Question = req.Question
	}
	if req.Answer != "" {
		faq.Answer = req.Answer
	}
	if err := config.DB.Save(&faq).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update FAQ"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"faq": faq})
}

// DeleteFAQ removes an FAQ (admin only)
func DeleteFAQ(c *gin.Context) {
	var faq models.FAQ
	if err := config.DB.First(&faq, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
		return
	}
	config.DB.Delete(&faq)
	c.JSON(http.StatusOK, gin.H{"message": "FAQ removed"})
}
