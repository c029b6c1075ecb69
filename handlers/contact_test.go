package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"food-rescue-api/config"
	"food-rescue-api/models"

	"github.com/stretchr/testify/require"
)

func TestCreateMessagePersistsDespiteMailFailure(t *testing.T) {
	r := setupRouter(t)

	// No SMTP settings in the test environment, so the send always fails;
	// the message must be stored anyway.
	w := doJSON(t, r, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Jamie",
		"email":   "jamie@example.org",
		"subject": "Pickup question",
		"message": "Can orders be picked up after 8pm?",
	}, "")
	mustStatus(t, w, http.StatusCreated)

	var message models.Message
	require.NoError(t, config.DB.Where("email = ?", "jamie@example.org").First(&message).Error)
	require.Equal(t, "Can orders be picked up after 8pm?", message.Body)
}

func TestContactAdminEndpoints(t *testing.T) {
	r := setupRouter(t)

	message := models.Message{Name: "Jamie", Email: "jamie@example.org", Body: "hi"}
	require.NoError(t, config.DB.Create(&message).Error)

	_, userToken := createUser(t, models.RoleUser, "user@example.org")
	_, adminToken := createUser(t, models.RoleAdmin, "admin@example.org")
	path := fmt.Sprintf("/api/contact/%d", message.ID)

	mustStatus(t, doJSON(t, r, http.MethodGet, "/api/contact", nil, userToken), http.StatusForbidden)
	mustStatus(t, doJSON(t, r, http.MethodGet, "/api/contact", nil, ""), http.StatusUnauthorized)

	w := doJSON(t, r, http.MethodGet, "/api/contact", nil, adminToken)
	mustStatus(t, w, http.StatusOK)
	require.EqualValues(t, 1, decodeBody(t, w)["count"])

	mustStatus(t, doJSON(t, r, http.MethodGet, path, nil, adminToken), http.StatusOK)
	mustStatus(t, doJSON(t, r, http.MethodDelete, path, nil, adminToken), http.StatusOK)
	mustStatus(t, doJSON(t, r, http.MethodGet, path, nil, adminToken), http.StatusNotFound)
}
