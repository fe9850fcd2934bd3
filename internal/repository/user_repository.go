package repository

import (
	"edu_tracker_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Upsert inserts the user or, if the openId already exists, refreshes the
// profile fields and lastSignedIn. Safe against concurrent first sign-ins:
// the unique index on open_id plus the ON CONFLICT clause make this a single
// atomic statement.
func (r *UserRepository) Upsert(user *model.User) error {
	if user.LastSignedIn.IsZero() {
		user.LastSignedIn = time.Now()
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "login_method", "last_signed_in"}),
	}).Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByOpenID(openID string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("open_id = ?", openID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAll(limit, offset int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	if err := r.DB.Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.DB.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

// UpdateProfile writes only the caller-editable fields.
func (r *UserRepository) UpdateProfile(userID uint, updates map[string]interface{}) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(updates).
		Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).
		Error
}
