package service

import (
	"edu_tracker_backend/internal/model"
	"edu_tracker_backend/internal/repository"
	"edu_tracker_backend/internal/util"
	"errors"
	"fmt"

	"edu_tracker_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// completionBaseXP is the fixed grant for finishing a course. Bootcamps pay
// half again as much.
const completionBaseXP = 500

type CourseService struct {
	CourseRepo         *repository.CourseRepository
	ProgressService    *ProgressService
	AchievementService *AchievementService
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	progressService *ProgressService,
	achievementService *AchievementService,
) *CourseService {
	return &CourseService{
		CourseRepo:         courseRepo,
		ProgressService:    progressService,
		AchievementService: achievementService,
	}
}

type CourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	TotalHours  int    `json:"totalHours" binding:"required"`
}

func (s *CourseService) List(userID uint) ([]model.Course, error) {
	return s.CourseRepo.FindByUserID(userID)
}

func (s *CourseService) Create(userID uint, req CourseRequest) (*model.Course, error) {
	category := model.CourseCategory(req.Category)
	if !category.Valid() {
		return nil, util.ErrInvalidCategory
	}
	if req.TotalHours <= 0 {
		return nil, util.ErrInvalidTotalHours
	}

	course := &model.Course{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
		TotalHours:  req.TotalHours,
		Status:      model.StatusNotStarted,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

// ApplyHourUpdate sets the completed-hours counter, derives the persisted
// status, and when the course lands on completed pays the completion reward:
// XP grant, coursesCompleted bump, and the completion badge. The status write
// and the reward commit in one transaction, and the unique badge row is the
// durable once-marker, so dipping below the total and re-completing, or
// retrying after a mid-reward failure, pays at most once. Out-of-range hours
// are rejected, never clamped.
func (s *CourseService) ApplyHourUpdate(userID, courseID uint, newCompletedHours int) (*model.Course, error) {
	course, err := s.CourseRepo.FindByIDAndUserID(courseID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	if newCompletedHours < 0 || newCompletedHours > course.TotalHours {
		return nil, util.ErrHoursOutOfRange
	}

	newStatus := model.StatusForHours(newCompletedHours, course.TotalHours)

	err = s.CourseRepo.DB.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewCourseRepository(tx).UpdateHours(course.ID, newCompletedHours, newStatus); err != nil {
			return err
		}
		if newStatus == model.StatusCompleted {
			return rewardCompletion(tx, userID, course)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	course.CompletedHours = newCompletedHours
	course.Status = newStatus
	return course, nil
}

// IncrementHour adds a single hour, capped at totalHours. Once the course is
// complete the call is a no-op on the counter and never re-triggers the
// reward.
func (s *CourseService) IncrementHour(userID, courseID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByIDAndUserID(courseID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	newHours := course.CompletedHours + 1
	if newHours > course.TotalHours {
		newHours = course.TotalHours
	}
	return s.ApplyHourUpdate(userID, courseID, newHours)
}

// rewardCompletion runs inside the caller's transaction. The badge insert
// goes first: its unique (user, title) row records that this completion was
// already paid, so when the insert is a no-op the XP grant and counter bump
// are skipped.
func rewardCompletion(tx *gorm.DB, userID uint, course *model.Course) error {
	achievements := NewAchievementService(repository.NewAchievementRepository(tx))

	title := fmt.Sprintf("Completou: %s", course.Title)
	description := fmt.Sprintf("Finalizou todas as %d horas de %q", course.TotalHours, course.Title)
	_, created, err := achievements.Unlock(userID, title, description)
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	progress := NewProgressService(repository.NewProgressRepository(tx))
	if _, err := progress.AwardExperience(userID, CompletionXP(course.Category)); err != nil {
		return err
	}
	if err := progress.IncrementCoursesCompleted(userID); err != nil {
		return err
	}

	monitoring.CoursesCompleted.Inc()
	return nil
}

// CompletionXP returns the XP grant for finishing a course of the given
// category, floored to an integer.
func CompletionXP(category model.CourseCategory) int {
	if category == model.CategoryBootcamp {
		return completionBaseXP * 3 / 2
	}
	return completionBaseXP
}
