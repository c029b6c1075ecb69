package handlers

import (
	"net/http"

	"food-rescue-api/config"
	"food-rescue-api/middleware"
	"food-rescue-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required"`
	Phone    string          `json:"phone"`
	Address  string          `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account plus the role profile for ngo and
// restaurant roles. NGOs start unverified.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validRoles := map[models.UserRole]bool{
		models.RoleUser:       true,
		models.RoleRestaurant: true,
		models.RoleNGO:        true,
		models.RoleAdmin:      true,
	}
	if !validRoles[req.Role] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: user, restaurant, ngo, or admin"})
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Phone:        req.Phone,
		Address:      req.Address,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	switch req.Role {
	case models.RoleNGO:
		config.DB.Create(&models.NGO{
			UserID:   user.ID,
			Name:     req.Name,
			Address:  req.Address,
			Phone:    req.Phone,
			Verified: false,
		})
	case models.RoleRestaurant:
		config.DB.Create(&models.Restaurant{
			UserID:   user.ID,
			Name:     req.Name,
			Address:  req.Address,
			Contact:  req.Phone,
			IsActive: true,
		})
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Login authenticates a user and returns a JWT
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// roleProfile resolves the NGO or Restaurant profile for a user, nil otherwise
func roleProfile(user *models.User) interface{} {
	switch user.Role {
	case models.RoleNGO:
		var ngo models.NGO
		if err := config.DB.Where("user_id = ?", user.ID).First(&ngo).Error; err == nil {
			return ngo
		}
	case models.RoleRestaurant:
		var restaurant models.Restaurant
		if err := config.DB.Where("user_id = ?", user.ID).First(&restaurant).Error; err == nil {
			return restaurant
		}
	}
	return nil
}

// GetMe returns the authenticated user's profile plus role profile
func GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"profile": roleProfile(&user),
	})
}

type UpdateMeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// UpdateMe partially updates the caller's profile. Unset fields keep their
// previous value; the role is immutable. Role-profile contact fields follow.
func UpdateMe(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user.PasswordHash = string(hash)
	}

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	// Keep the role profile's contact details in step
	switch user.Role {
	case models.RoleNGO:
		config.DB.Model(&models.NGO{}).Where("user_id = ?", user.ID).Updates(map[string]interface{}{
			"name":    user.Name,
			"address": user.Address,
			"phone":   user.Phone,
		})
	case models.RoleRestaurant:
		config.DB.Model(&models.Restaurant{}).Where("user_id = ?", user.ID).Updates(map[string]interface{}{
			"name":    user.Name,
			"address": user.Address,
			"contact": user.Phone,
		})
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated",
		"token":   token,
		"user":    user,
		"profile": roleProfile(&user),
	})
}
