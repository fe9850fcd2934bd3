package service

import (
	"testing"

	"edu_tracker_backend/internal/repository"
	"edu_tracker_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAchievementService(t *testing.T) *AchievementService {
	t.Helper()
	db := testutil.NewDB(t)
	return NewAchievementService(repository.NewAchievementRepository(db))
}

func TestUnlockRecordsBadge(t *testing.T) {
	s := newAchievementService(t)

	badge, created, err := s.Unlock(1, "Completou: Go", "Finalizou o curso")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, DefaultBadgeIcon, badge.Icon)
	assert.False(t, badge.UnlockedAt.IsZero())
}

func TestUnlockIsIdempotentPerTitle(t *testing.T) {
	s := newAchievementService(t)

	_, created, err := s.Unlock(1, "Completou: Go", "Finalizou o curso")
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = s.Unlock(1, "Completou: Go", "outra descrição")
	require.NoError(t, err)
	assert.False(t, created)

	badges, err := s.List(1)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, "Finalizou o curso", badges[0].Description)
}

func TestUnlockSameTitleDifferentUsers(t *testing.T) {
	s := newAchievementService(t)

	_, created, err := s.Unlock(1, "Completou: Go", "")
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = s.Unlock(2, "Completou: Go", "")
	require.NoError(t, err)
	assert.True(t, created)
}

func TestListIsPerUser(t *testing.T) {
	s := newAchievementService(t)

	_, _, err := s.Unlock(1, "Completou: Go", "")
	require.NoError(t, err)
	_, _, err = s.Unlock(2, "Completou: Rust", "")
	require.NoError(t, err)

	badges, err := s.List(1)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, "Completou: Go", badges[0].Title)
}
