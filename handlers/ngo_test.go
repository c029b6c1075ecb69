package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"food-rescue-api/config"
	"food-rescue-api/models"

	"github.com/stretchr/testify/require"
)

func TestVerifyNGOIsIdempotent(t *testing.T) {
	r := setupRouter(t)

	ngoUser, _ := createUser(t, models.RoleNGO, "ngo@example.org")
	ngo := createNGO(t, ngoUser, false)
	_, adminToken := createUser(t, models.RoleAdmin, "admin@example.org")
	path := fmt.Sprintf("/api/ngos/%d/verify", ngo.ID)

	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPut, path, nil, adminToken)
		mustStatus(t, w, http.StatusOK)
	}

	var reloaded models.NGO
	require.NoError(t, config.DB.First(&reloaded, ngo.ID).Error)
	require.True(t, reloaded.Verified)

	// Exactly one verification notification despite the repeat
	var count int64
	config.DB.Model(&models.Notification{}).Where("user_id = ?", ngoUser.ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestVerifyNGOAdminOnly(t *testing.T) {
	r := setupRouter(t)

	ngoUser, ngoToken := createUser(t, models.RoleNGO, "ngo@example.org")
	ngo := createNGO(t, ngoUser, false)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/ngos/%d/verify", ngo.ID), nil, ngoToken)
	mustStatus(t, w, http.StatusForbidden)

	var reloaded models.NGO
	require.NoError(t, config.DB.First(&reloaded, ngo.ID).Error)
	require.False(t, reloaded.Verified)
}

func TestListNGOsVerifiedFilter(t *testing.T) {
	r := setupRouter(t)

	u1, _ := createUser(t, models.RoleNGO, "one@example.org")
	createNGO(t, u1, true)
	u2, _ := createUser(t, models.RoleNGO, "two@example.org")
	createNGO(t, u2, false)

	w := doJSON(t, r, http.MethodGet, "/api/ngos?verified=true", nil, "")
	mustStatus(t, w, http.StatusOK)
	require.EqualValues(t, 1, decodeBody(t, w)["count"])

	w = doJSON(t, r, http.MethodGet, "/api/ngos", nil, "")
	mustStatus(t, w, http.StatusOK)
	require.EqualValues(t, 2, decodeBody(t, w)["count"])
}

func TestUpdateMyNGOProfileCannotSelfVerify(t *testing.T) {
	r := setupRouter(t)

	ngoUser, token := createUser(t, models.RoleNGO, "ngo@example.org")
	ngo := createNGO(t, ngoUser, false)

	w := doJSON(t, r, http.MethodPut, "/api/ngos/profile/me", map[string]interface{}{
		"beneficiaries": "200 families",
		"verified":      true,
	}, token)
	mustStatus(t, w, http.StatusOK)

	var reloaded models.NGO
	require.NoError(t, config.DB.First(&reloaded, ngo.ID).Error)
	require.Equal(t, "200 families", reloaded.Beneficiaries)
	require.False(t, reloaded.Verified)
}
