package repository

import (
	"testing"

	"edu_tracker_backend/internal/model"
	"edu_tracker_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertRefreshesProfileKeepsRole(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))

	require.NoError(t, repo.Upsert(&model.User{
		OpenID:      "google_123",
		Name:        "Ana",
		Email:       "ana@example.com",
		LoginMethod: "google",
		Role:        model.RoleUser,
	}))

	stored, err := repo.FindByOpenID("google_123")
	require.NoError(t, err)
	require.NoError(t, repo.UpdateProfile(stored.ID, map[string]interface{}{"role": model.RoleAdmin}))

	// A later sign-in refreshes the profile fields but never demotes.
	require.NoError(t, repo.Upsert(&model.User{
		OpenID:      "google_123",
		Name:        "Ana Maria",
		Email:       "ana@example.com",
		LoginMethod: "google",
		Role:        model.RoleUser,
	}))

	stored, err = repo.FindByOpenID("google_123")
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", stored.Name)
	assert.Equal(t, model.RoleAdmin, stored.Role)

	var count int64
	require.NoError(t, repo.DB.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFindAllPaginates(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))

	for _, openID := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Upsert(&model.User{OpenID: openID, Name: openID, Role: model.RoleUser}))
	}

	users, total, err := repo.FindAll(2, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, users, 2)
}
