package service

import (
	"testing"

	"edu_tracker_backend/internal/repository"
	"edu_tracker_backend/internal/testutil"
	"edu_tracker_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgressService(t *testing.T) *ProgressService {
	t.Helper()
	db := testutil.NewDB(t)
	return NewProgressService(repository.NewProgressRepository(db))
}

func TestGetOrCreateSeedsInitialState(t *testing.T) {
	s := newProgressService(t)

	p, err := s.GetOrCreate(1)
	require.NoError(t, err)

	assert.Equal(t, 1, p.CurrentLevel)
	assert.Equal(t, 0, p.TotalExperience)
	assert.Equal(t, 0, p.CurrentExperience)
	assert.Equal(t, 1000, p.ExperienceToNextLevel)
	assert.Equal(t, 0, p.CoursesCompleted)
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	s := newProgressService(t)

	first, err := s.GetOrCreate(1)
	require.NoError(t, err)

	second, err := s.GetOrCreate(1)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, s.ProgressRepo.DB.Table("user_progress").Where("user_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAwardExperienceBelowThreshold(t *testing.T) {
	s := newProgressService(t)

	p, err := s.AwardExperience(1, 500)
	require.NoError(t, err)

	assert.Equal(t, 1, p.CurrentLevel)
	assert.Equal(t, 500, p.TotalExperience)
	assert.Equal(t, 500, p.CurrentExperience)
	assert.Equal(t, 1000, p.ExperienceToNextLevel)
}

func TestAwardExperienceExactThresholdLevelsUp(t *testing.T) {
	s := newProgressService(t)

	p, err := s.AwardExperience(1, 1000)
	require.NoError(t, err)

	assert.Equal(t, 2, p.CurrentLevel)
	assert.Equal(t, 1000, p.TotalExperience)
	assert.Equal(t, 0, p.CurrentExperience)
	assert.Equal(t, 1100, p.ExperienceToNextLevel)
}

func TestAwardExperienceCarriesOverflow(t *testing.T) {
	s := newProgressService(t)

	p, err := s.AwardExperience(1, 1200)
	require.NoError(t, err)

	assert.Equal(t, 2, p.CurrentLevel)
	assert.Equal(t, 1200, p.TotalExperience)
	assert.Equal(t, 200, p.CurrentExperience)
	assert.Equal(t, 1100, p.ExperienceToNextLevel)
}

func TestAwardExperienceThresholdGrowthIsFloored(t *testing.T) {
	s := newProgressService(t)

	// 1000 -> 1100 -> 1210 -> 1331, each step floor(threshold * 1.1).
	thresholds := []int{1100, 1210, 1331}
	for i, want := range thresholds {
		p, err := s.AwardExperience(1, 10000)
		require.NoError(t, err)
		assert.Equal(t, i+2, p.CurrentLevel)
		assert.Equal(t, want, p.ExperienceToNextLevel)
	}
}

func TestAwardExperienceRejectsNonPositiveAmounts(t *testing.T) {
	s := newProgressService(t)

	_, err := s.AwardExperience(1, 0)
	assert.ErrorIs(t, err, util.ErrInvalidAmount)

	_, err = s.AwardExperience(1, -50)
	assert.ErrorIs(t, err, util.ErrInvalidAmount)

	p, err := s.GetOrCreate(1)
	require.NoError(t, err)
	assert.Equal(t, 0, p.TotalExperience)
}

func TestAwardExperienceMonotonicAcrossAwards(t *testing.T) {
	s := newProgressService(t)

	prevLevel, prevTotal, prevThreshold := 1, 0, 1000
	for _, amount := range []int{300, 800, 150, 2000, 1} {
		p, err := s.AwardExperience(1, amount)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, p.CurrentLevel, prevLevel)
		assert.Equal(t, prevTotal+amount, p.TotalExperience)
		assert.GreaterOrEqual(t, p.ExperienceToNextLevel, prevThreshold)

		prevLevel = p.CurrentLevel
		prevTotal = p.TotalExperience
		prevThreshold = p.ExperienceToNextLevel
	}
}

func TestIncrementCoursesCompleted(t *testing.T) {
	s := newProgressService(t)

	require.NoError(t, s.IncrementCoursesCompleted(1))
	require.NoError(t, s.IncrementCoursesCompleted(1))

	p, err := s.GetOrCreate(1)
	require.NoError(t, err)
	assert.Equal(t, 2, p.CoursesCompleted)
}

func TestApplyAwardSingleStep(t *testing.T) {
	p, err := newProgressService(t).GetOrCreate(1)
	require.NoError(t, err)

	// One award crosses at most one threshold; the surplus rides along as
	// currentExperience even when it exceeds the grown threshold.
	next, leveledUp := applyAward(*p, 5000)
	assert.True(t, leveledUp)
	assert.Equal(t, 2, next.CurrentLevel)
	assert.Equal(t, 4000, next.CurrentExperience)
	assert.Equal(t, 1100, next.ExperienceToNextLevel)
}
