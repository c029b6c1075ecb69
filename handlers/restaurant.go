package handlers

import (
	"net/http"

	"food-rescue-api/config"
	"food-rescue-api/middleware"
	"food-rescue-api/models"

	"github.com/gin-gonic/gin"
)

var restaurantSortOptions = map[string]string{
	"rating-desc": "rating desc",
	"name-asc":    "name asc",
	"newest":      "created_at desc",
}

// ListRestaurants returns active restaurants, filtered and sorted (public)
func ListRestaurants(c *gin.Context) {
	query := config.DB.Where("is_active = ?", true)

	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.Where("cuisine LIKE ?", "%"+cuisine+"%")
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR address LIKE ? OR location LIKE ?", like, like, like)
	}

	order, ok := restaurantSortOptions[c.Query("sort")]
	if !ok {
		order = "created_at desc"
	}

	var restaurants []models.Restaurant
	query.Order(order).Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// FeaturedRestaurants returns the top 6 active restaurants by rating
func FeaturedRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	config.DB.Where("is_active = ?", true).
		Order("rating desc").
		Limit(6).
		Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// GetRestaurant returns a single restaurant with its listings (public)
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Preload("FoodItems").First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetRestaurantFoods returns the available listings of one restaurant (public)
func GetRestaurantFoods(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var foods []models.FoodItem
	config.DB.Where("restaurant_id = ? AND is_available = ?", restaurant.ID, true).Find(&foods)
	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(foods),
		"foods":      foods,
	})
}

type CreateRestaurantRequest struct {
	UserID       uint   `json:"user_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Location     string `json:"location"`
	Address      string `json:"address"`
	Contact      string `json:"contact"`
	Cuisine      string `json:"cuisine"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	OpeningHours string `json:"opening_hours"`
}

// CreateRestaurant registers a restaurant profile for a user (admin only)
func CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var owner models.User
	if err := config.DB.First(&owner, req.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	restaurant := models.Restaurant{
		UserID:       req.UserID,
		Name:         req.Name,
		Location:     req.Location,
		Address:      req.Address,
		Contact:      req.Contact,
		Cuisine:      req.Cuisine,
		Description:  req.Description,
		Image:        req.Image,
		OpeningHours: req.OpeningHours,
		IsActive:     true,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": restaurant})
}

// UpdateRestaurant partially updates a restaurant (owner or admin)
func UpdateRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	if middleware.GetRole(c) != models.RoleAdmin && restaurant.UserID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this restaurant"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allowed := map[string]bool{
		"name": true, "location": true, "address": true, "contact": true,
		"cuisine": true, "description": true, "image": true,
		"opening_hours": true, "is_active": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}

	if err := config.DB.Model(&restaurant).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}
