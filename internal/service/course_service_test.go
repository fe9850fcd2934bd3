package service

import (
	"testing"

	"edu_tracker_backend/internal/model"
	"edu_tracker_backend/internal/repository"
	"edu_tracker_backend/internal/testutil"
	"edu_tracker_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourseService(t *testing.T) *CourseService {
	t.Helper()
	db := testutil.NewDB(t)

	progress := NewProgressService(repository.NewProgressRepository(db))
	achievements := NewAchievementService(repository.NewAchievementRepository(db))
	return NewCourseService(repository.NewCourseRepository(db), progress, achievements)
}

func mustCreateCourse(t *testing.T, s *CourseService, userID uint, req CourseRequest) *model.Course {
	t.Helper()
	course, err := s.Create(userID, req)
	require.NoError(t, err)
	return course
}

func TestCreateCourseValidation(t *testing.T) {
	s := newCourseService(t)

	_, err := s.Create(1, CourseRequest{Title: "Go", Category: "webinar", TotalHours: 10})
	assert.ErrorIs(t, err, util.ErrInvalidCategory)

	_, err = s.Create(1, CourseRequest{Title: "Go", Category: "course", TotalHours: 0})
	assert.ErrorIs(t, err, util.ErrInvalidTotalHours)

	_, err = s.Create(1, CourseRequest{Title: "Go", Category: "course", TotalHours: -3})
	assert.ErrorIs(t, err, util.ErrInvalidTotalHours)
}

func TestCreateCourseStartsFresh(t *testing.T) {
	s := newCourseService(t)

	course := mustCreateCourse(t, s, 1, CourseRequest{Title: "Go", Category: "course", TotalHours: 20})

	assert.Equal(t, model.StatusNotStarted, course.Status)
	assert.Equal(t, 0, course.CompletedHours)
}

func TestApplyHourUpdateDerivesStatus(t *testing.T) {
	s := newCourseService(t)
	course := mustCreateCourse(t, s, 1, CourseRequest{Title: "Go", Category: "course", TotalHours: 20})

	updated, err := s.ApplyHourUpdate(1, course.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, updated.Status)

	updated, err = s.ApplyHourUpdate(1, course.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotStarted, updated.Status)
}

func TestCompletionGrantsReward(t *testing.T) {
	s := newCourseService(t)
	course := mustCreateCourse(t, s, 1, CourseRequest{Title: "Go Avançado", Category: "course", TotalHours: 20})

	updated, err := s.ApplyHourUpdate(1, course.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, updated.Status)

	p, err := s.ProgressService.GetOrCreate(1)
	require.NoError(t, err)
	assert.Equal(t, 500, p.TotalExperience)
	assert.Equal(t, 1, p.CoursesCompleted)

	badges, err := s.AchievementService.List(1)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, "Completou: Go Avançado", badges[0].Title)
	assert.Equal(t, DefaultBadgeIcon, badges[0].Icon)
}

func TestCompletionRewardFiresOnce(t *testing.T) {
	s := newCourseService(t)
	course := mustCreateCourse(t, s, 1, CourseRequest{Title: "Go", Category: "course", TotalHours: 10})

	_, err := s.ApplyHourUpdate(1, course.ID, 10)
	require.NoError(t, err)

	// Re-submitting the same hours never pays again.
	_, err = s.ApplyHourUpdate(1, course.ID, 10)
	require.NoError(t, err)

	// Neither does dipping below the total and re-completing.
	_, err = s.ApplyHourUpdate(1, course.ID, 5)
	require.NoError(t, err)
	_, err = s.ApplyHourUpdate(1, course.ID, 10)
	require.NoError(t, err)

	p, err := s.ProgressService.GetOrCreate(1)
	require.NoError(t, err)
	assert.Equal(t, 500, p.TotalExperience)
	assert.Equal(t, 1, p.CoursesCompleted)

	badges, err := s.AchievementService.List(1)
	require.NoError(t, err)
	assert.Len(t, badges, 1)
}

func TestCompletionRewardFailureRollsBackStatus(t *testing.T) {
	s := newCourseService(t)
	course := mustCreateCourse(t, s, 1, CourseRequest{Title: "Go", Category: "course", TotalHours: 10})

	// With the progress table gone the XP grant fails; the status write and
	// the badge must roll back with it.
	require.NoError(t, s.CourseRepo.DB.Migrator().DropTable(&model.UserProgress{}))

	_, err := s.ApplyHourUpdate(1, course.ID, 10)
	require.Error(t, err)

	stored, err := s.CourseRepo.FindByIDAndUserID(course.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.CompletedHours)
	assert.Equal(t, model.StatusNotStarted, stored.Status)

	badges, err := s.AchievementService.List(1)
	require.NoError(t, err)
	assert.Empty(t, badges)

	// Once the store recovers the same submission completes and pays.
	require.NoError(t, s.CourseRepo.DB.AutoMigrate(&model.UserProgress{}))

	updated, err := s.ApplyHourUpdate(1, course.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, updated.Status)

	p, err := s.ProgressService.GetOrCreate(1)
	require.NoError(t, err)
	assert.Equal(t, 500, p.TotalExperience)
	assert.Equal(t, 1, p.CoursesCompleted)
}

func TestBootcampCompletionPaysExtra(t *testing.T) {
	s := newCourseService(t)
	course := mustCreateCourse(t, s, 1, CourseRequest{Title: "Bootcamp Go", Category: "bootcamp", TotalHours: 40})

	_, err := s.ApplyHourUpdate(1, course.ID, 40)
	require.NoError(t, err)

	p, err := s.ProgressService.GetOrCreate(1)
	require.NoError(t, err)
	assert.Equal(t, 750, p.TotalExperience)
}

func TestHoursOutOfRangeRejectedWithoutSideEffects(t *testing.T) {
	s := newCourseService(t)
	course := mustCreateCourse(t, s, 1, CourseRequest{Title: "Go", Category: "course", TotalHours: 20})

	_, err := s.ApplyHourUpdate(1, course.ID, 25)
	assert.ErrorIs(t, err, util.ErrHoursOutOfRange)

	_, err = s.ApplyHourUpdate(1, course.ID, -1)
	assert.ErrorIs(t, err, util.ErrHoursOutOfRange)

	stored, err := s.CourseRepo.FindByIDAndUserID(course.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.CompletedHours)
	assert.Equal(t, model.StatusNotStarted, stored.Status)
}

func TestCourseLookupIsOwnerScoped(t *testing.T) {
	s := newCourseService(t)
	course := mustCreateCourse(t, s, 1, CourseRequest{Title: "Go", Category: "course", TotalHours: 20})

	_, err := s.ApplyHourUpdate(2, course.ID, 5)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	_, err = s.ApplyHourUpdate(1, course.ID+99, 5)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestIncrementHourCapsAtTotal(t *testing.T) {
	s := newCourseService(t)
	course := mustCreateCourse(t, s, 1, CourseRequest{Title: "Go", Category: "course", TotalHours: 2})

	updated, err := s.IncrementHour(1, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.CompletedHours)
	assert.Equal(t, model.StatusInProgress, updated.Status)

	updated, err = s.IncrementHour(1, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CompletedHours)
	assert.Equal(t, model.StatusCompleted, updated.Status)

	// Already at the cap: counter stays put and the reward is not re-paid.
	updated, err = s.IncrementHour(1, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CompletedHours)

	p, err := s.ProgressService.GetOrCreate(1)
	require.NoError(t, err)
	assert.Equal(t, 500, p.TotalExperience)
	assert.Equal(t, 1, p.CoursesCompleted)
}

func TestCompletionXPByCategory(t *testing.T) {
	assert.Equal(t, 500, CompletionXP(model.CategoryCourse))
	assert.Equal(t, 500, CompletionXP(model.CategoryTrail))
	assert.Equal(t, 500, CompletionXP(model.CategoryProject))
	assert.Equal(t, 750, CompletionXP(model.CategoryBootcamp))
}

func TestListReturnsOnlyOwnCourses(t *testing.T) {
	s := newCourseService(t)
	mustCreateCourse(t, s, 1, CourseRequest{Title: "Mine", Category: "course", TotalHours: 5})
	mustCreateCourse(t, s, 2, CourseRequest{Title: "Theirs", Category: "course", TotalHours: 5})

	courses, err := s.List(1)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Mine", courses[0].Title)
}
