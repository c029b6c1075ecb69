package handlers

import (
	"net/http"
	"strconv"

	"food-rescue-api/config"
	"food-rescue-api/middleware"
	"food-rescue-api/models"

	"github.com/gin-gonic/gin"
)

// foodSortOptions maps named sort enumerations to order clauses
var foodSortOptions = map[string]string{
	"price-asc":  "discount_price asc",
	"price-desc": "discount_price desc",
	"newest":     "created_at desc",
}

// ListFoods returns available food items, filtered and sorted (public)
func ListFoods(c *gin.Context) {
	query := config.DB.Preload("Restaurant").Where("is_available = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if minPrice := c.Query("minPrice"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query = query.Where("discount_price >= ?", v)
		}
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("discount_price <= ?", v)
		}
	}
	if restaurant := c.Query("restaurant"); restaurant != "" {
		query = query.Where("restaurant_id = ?", restaurant)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	order, ok := foodSortOptions[c.Query("sort")]
	if !ok {
		order = "created_at desc"
	}

	var foods []models.FoodItem
	query.Order(order).Find(&foods)
	c.JSON(http.StatusOK, gin.H{"count": len(foods), "foods": foods})
}

// FeaturedFoods returns up to 8 available items with stock, cheapest first
func FeaturedFoods(c *gin.Context) {
	var foods []models.FoodItem
	config.DB.Preload("Restaurant").
		Where("is_available = ? AND quantity > 0", true).
		Order("discount_price asc").
		Limit(8).
		Find(&foods)
	c.JSON(http.StatusOK, gin.H{"count": len(foods), "foods": foods})
}

// GetFood returns a single food item (public)
func GetFood(c *gin.Context) {
	var food models.FoodItem
	if err := config.DB.Preload("Restaurant").First(&food, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"food": food})
}

type CreateFoodRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	Quantity      int     `json:"quantity" binding:"required,min=1"`
	OriginalPrice float64 `json:"original_price" binding:"required,gt=0"`
	DiscountPrice float64 `json:"discount_price" binding:"omitempty,gt=0"`
	ExpiryTime    string  `json:"expiry_time"`
}

// CreateFood adds a surplus listing to the caller's restaurant
func CreateFood(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("user_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}

	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food := models.FoodItem{
		RestaurantID:  restaurant.ID,
		Name:          req.Name,
		Description:   req.Description,
		Image:         req.Image,
		Category:      req.Category,
		Quantity:      req.Quantity,
		OriginalPrice: req.OriginalPrice,
		DiscountPrice: req.DiscountPrice,
		IsAvailable:   true,
	}
	if req.ExpiryTime != "" {
		expiry, err := parseTime(req.ExpiryTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expiry_time must be RFC 3339"})
			return
		}
		food.ExpiryTime = expiry
	}

	if err := config.DB.Create(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create food item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Food item created", "food": food})
}

// loadOwnedFood fetches a food item and enforces ownership unless the caller
// is an admin. Writes the error response itself and returns ok=false on
// failure.
func loadOwnedFood(c *gin.Context) (models.FoodItem, bool) {
	var food models.FoodItem
	if err := config.DB.First(&food, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return food, false
	}

	if middleware.GetRole(c) == models.RoleAdmin {
		return food, true
	}

	var restaurant models.Restaurant
	err := config.DB.Where("id = ? AND user_id = ?", food.RestaurantID, middleware.GetUserID(c)).
		First(&restaurant).Error
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this food item"})
		return food, false
	}
	return food, true
}

// UpdateFood partially updates a listing (owner or admin)
func UpdateFood(c *gin.Context) {
	food, ok := loadOwnedFood(c)
	if !ok {
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allowed := map[string]bool{
		"name": true, "description": true, "image": true, "category": true,
		"quantity": true, "original_price": true, "discount_price": true,
		"expiry_time": true, "is_available": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}

	if err := config.DB.Model(&food).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update food item"})
		return
	}

	// Availability tracks stock: a listing at zero cannot stay orderable
	config.DB.First(&food, food.ID)
	if food.Quantity <= 0 && food.IsAvailable {
		config.DB.Model(&food).Update("is_available", false)
		food.IsAvailable = false
	}

	c.JSON(http.StatusOK, gin.H{"message": "Food item updated", "food": food})
}

// DeleteFood removes a listing (owner or admin)
func DeleteFood(c *gin.Context) {
	food, ok := loadOwnedFood(c)
	if !ok {
		return
	}
	config.DB.Delete(&food)
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted"})
}
