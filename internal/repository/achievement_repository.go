package repository

import (
	"edu_tracker_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) FindByUserID(userID uint) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Where("user_id = ?", userID).Order("unlocked_at desc").Find(&achievements).Error
	if err != nil {
		return nil, err
	}
	return achievements, nil
}

// Create inserts the badge unless the user already holds one with the same
// title. Returns whether a new row was written.
func (r *AchievementRepository) Create(achievement *model.Achievement) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "title"}},
		DoNothing: true,
	}).Create(achievement)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
