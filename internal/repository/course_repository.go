package repository

import (
	"edu_tracker_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) FindByUserID(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// FindByIDAndUserID scopes the lookup to the owning user; a course id that
// belongs to someone else reads as not found.
func (r *CourseRepository) FindByIDAndUserID(courseID, userID uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("id = ? AND user_id = ?", courseID, userID).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

// UpdateHours persists the hour counter together with its derived status in
// one write.
func (r *CourseRepository) UpdateHours(courseID uint, completedHours int, status model.CourseStatus) error {
	return r.DB.Model(&model.Course{}).
		Where("id = ?", courseID).
		Updates(map[string]interface{}{
			"completed_hours": completedHours,
			"status":          status,
		}).
		Error
}
