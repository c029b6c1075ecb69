package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"food-rescue-api/config"
	"food-rescue-api/models"

	"github.com/stretchr/testify/require"
)

func TestFeaturedFoods(t *testing.T) {
	r := setupRouter(t)

	owner, _ := createUser(t, models.RoleRestaurant, "owner@example.org")
	restaurant := createRestaurant(t, owner)

	for i := 1; i <= 9; i++ {
		createFood(t, restaurant.ID, fmt.Sprintf("Meal %d", i), 3, 10.00, float64(i))
	}
	// Excluded: drained and unavailable items
	createFood(t, restaurant.ID, "Drained", 0, 10.00, 0.10)
	unavailable := createFood(t, restaurant.ID, "Off menu", 3, 10.00, 0.20)
	require.NoError(t, config.DB.Model(&unavailable).Update("is_available", false).Error)

	w := doJSON(t, r, http.MethodGet, "/api/foods/featured", nil, "")
	mustStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	require.EqualValues(t, 8, body["count"])

	foods := body["foods"].([]interface{})
	var prev float64
	for _, f := range foods {
		item := f.(map[string]interface{})
		require.NotEqual(t, "Drained", item["name"])
		require.NotEqual(t, "Off menu", item["name"])
		price := item["discount_price"].(float64)
		require.GreaterOrEqual(t, price, prev)
		prev = price
	}
}

func TestListFoodsFilters(t *testing.T) {
	r := setupRouter(t)

	owner, _ := createUser(t, models.RoleRestaurant, "owner@example.org")
	restaurant := createRestaurant(t, owner)
	createFood(t, restaurant.ID, "Lentil Soup", 5, 6.00, 2.00)
	createFood(t, restaurant.ID, "Fruit Crate", 5, 9.00, 7.00)

	w := doJSON(t, r, http.MethodGet, "/api/foods?search=soup", nil, "")
	mustStatus(t, w, http.StatusOK)
	require.EqualValues(t, 1, decodeBody(t, w)["count"])

	w = doJSON(t, r, http.MethodGet, "/api/foods?maxPrice=3", nil, "")
	mustStatus(t, w, http.StatusOK)
	require.EqualValues(t, 1, decodeBody(t, w)["count"])

	w = doJSON(t, r, http.MethodGet, "/api/foods?sort=price-desc", nil, "")
	mustStatus(t, w, http.StatusOK)
	foods := decodeBody(t, w)["foods"].([]interface{})
	require.Equal(t, "Fruit Crate", foods[0].(map[string]interface{})["name"])
}

func TestUpdateFoodOwnership(t *testing.T) {
	r := setupRouter(t)

	ownerA, _ := createUser(t, models.RoleRestaurant, "a@example.org")
	restaurantA := createRestaurant(t, ownerA)
	food := createFood(t, restaurantA.ID, "Veggie Bowls", 5, 8.00, 3.00)

	ownerB, tokenB := createUser(t, models.RoleRestaurant, "b@example.org")
	createRestaurant(t, ownerB)

	// A different restaurant cannot touch the item
	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/foods/%d", food.ID),
		map[string]interface{}{"quantity": 99}, tokenB)
	mustStatus(t, w, http.StatusForbidden)
	require.Equal(t, 5, reloadFood(t, food.ID).Quantity)

	// An admin can
	_, adminToken := createUser(t, models.RoleAdmin, "admin@example.org")
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/foods/%d", food.ID),
		map[string]interface{}{"quantity": 7}, adminToken)
	mustStatus(t, w, http.StatusOK)
	require.Equal(t, 7, reloadFood(t, food.ID).Quantity)
}

func TestUpdateFoodToZeroFlipsAvailability(t *testing.T) {
	r := setupRouter(t)

	owner, token := createUser(t, models.RoleRestaurant, "owner@example.org")
	restaurant := createRestaurant(t, owner)
	food := createFood(t, restaurant.ID, "Veggie Bowls", 5, 8.00, 3.00)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/foods/%d", food.ID),
		map[string]interface{}{"quantity": 0}, token)
	mustStatus(t, w, http.StatusOK)

	updated := reloadFood(t, food.ID)
	require.Equal(t, 0, updated.Quantity)
	require.False(t, updated.IsAvailable)
}

func TestCreateFoodRequiresRestaurantProfile(t *testing.T) {
	r := setupRouter(t)

	_, token := createUser(t, models.RoleRestaurant, "profileless@example.org")
	w := doJSON(t, r, http.MethodPost, "/api/foods", map[string]interface{}{
		"name":           "Veggie Bowls",
		"quantity":       5,
		"original_price": 8.00,
	}, token)
	mustStatus(t, w, http.StatusNotFound)
}

func TestDeleteFood(t *testing.T) {
	r := setupRouter(t)

	owner, token := createUser(t, models.RoleRestaurant, "owner@example.org")
	restaurant := createRestaurant(t, owner)
	food := createFood(t, restaurant.ID, "Veggie Bowls", 5, 8.00, 3.00)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/foods/%d", food.ID), nil, token)
	mustStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/foods/%d", food.ID), nil, "")
	mustStatus(t, w, http.StatusNotFound)
}
