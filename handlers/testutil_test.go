package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"food-rescue-api/config"
	"food-rescue-api/middleware"
	"food-rescue-api/models"
	"food-rescue-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires the full route table against a fresh in-memory database.
// The pool is pinned to one connection so transactions share the same
// in-memory store.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateModels(db))
	config.DB = db
	config.JWTSecret = []byte("test-secret")

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createUser(t *testing.T, role models.UserRole, email string) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:         "Test " + string(role),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return user, token
}

func createNGO(t *testing.T, user models.User, verified bool) models.NGO {
	t.Helper()
	ngo := models.NGO{
		UserID:   user.ID,
		Name:     user.Name,
		Verified: verified,
	}
	require.NoError(t, config.DB.Create(&ngo).Error)
	return ngo
}

func createRestaurant(t *testing.T, user models.User) models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{
		UserID:   user.ID,
		Name:     user.Name + "'s Kitchen",
		IsActive: true,
	}
	require.NoError(t, config.DB.Create(&restaurant).Error)
	return restaurant
}

func createFood(t *testing.T, restaurantID uint, name string, quantity int, originalPrice, discountPrice float64) models.FoodItem {
	t.Helper()
	food := models.FoodItem{
		RestaurantID:  restaurantID,
		Name:          name,
		Description:   "surplus " + name,
		Quantity:      quantity,
		OriginalPrice: originalPrice,
		DiscountPrice: discountPrice,
		ExpiryTime:    time.Now().Add(12 * time.Hour),
		IsAvailable:   quantity > 0,
	}
	require.NoError(t, config.DB.Create(&food).Error)
	return food
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// orderPayload builds a valid order request for the given lines
func orderPayload(lines ...map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"items": lines,
		"delivery_details": map[string]interface{}{
			"address":       "12 Shelter Road",
			"contact":       "555-0101",
			"delivery_time": time.Now().Add(2 * time.Hour).Format(time.RFC3339),
		},
	}
}

func line(foodItemID uint, quantity int) map[string]interface{} {
	return map[string]interface{}{"food_item_id": foodItemID, "quantity": quantity}
}

func reloadFood(t *testing.T, id uint) models.FoodItem {
	t.Helper()
	var food models.FoodItem
	require.NoError(t, config.DB.First(&food, id).Error)
	return food
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
