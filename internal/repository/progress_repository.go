package repository

import (
	"edu_tracker_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserID(userID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Where("user_id = ?", userID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// CreateIfAbsent inserts the initial row for the user, tolerating a
// concurrent first access: the unique index on user_id plus DO NOTHING turn
// the insert race into a no-op for the loser. Callers re-read afterwards.
func (r *ProgressRepository) CreateIfAbsent(progress *model.UserProgress) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(progress).Error
}

// UpdateConditional writes the full leveling state guarded by the optimistic
// version token. Returns false without error when another writer got there
// first (version mismatch); the caller re-reads and retries.
func (r *ProgressRepository) UpdateConditional(userID uint, version int, updated *model.UserProgress) (bool, error) {
	res := r.DB.Model(&model.UserProgress{}).
		Where("user_id = ? AND version = ?", userID, version).
		Updates(map[string]interface{}{
			"total_experience":         updated.TotalExperience,
			"current_level":            updated.CurrentLevel,
			"current_experience":       updated.CurrentExperience,
			"experience_to_next_level": updated.ExperienceToNextLevel,
			"version":                  version + 1,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// IncrementCoursesCompleted is a store-native atomic increment; concurrent
// completions never clobber each other.
func (r *ProgressRepository) IncrementCoursesCompleted(userID uint) error {
	return r.DB.Model(&model.UserProgress{}).
		Where("user_id = ?", userID).
		Update("courses_completed", gorm.Expr("courses_completed + ?", 1)).
		Error
}
