package service

import (
	"edu_tracker_backend/internal/model"
	"edu_tracker_backend/internal/repository"
	"time"

	"edu_tracker_backend/pkg/monitoring"
)

// DefaultBadgeIcon is the asset served for badges unlocked without an
// explicit icon.
const DefaultBadgeIcon = "/badge-achievement.png"

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
}

func NewAchievementService(achievementRepo *repository.AchievementRepository) *AchievementService {
	return &AchievementService{AchievementRepo: achievementRepo}
}

func (s *AchievementService) List(userID uint) ([]model.Achievement, error) {
	return s.AchievementRepo.FindByUserID(userID)
}

// Unlock records the badge for the user. Idempotent per (user, title): a
// repeat unlock reports created=false and leaves the original row untouched.
func (s *AchievementService) Unlock(userID uint, title, description string) (*model.Achievement, bool, error) {
	achievement := &model.Achievement{
		UserID:      userID,
		Title:       title,
		Description: description,
		Icon:        DefaultBadgeIcon,
		UnlockedAt:  time.Now(),
	}

	created, err := s.AchievementRepo.Create(achievement)
	if err != nil {
		return nil, false, err
	}
	if created {
		monitoring.AchievementsUnlocked.Inc()
	}
	return achievement, created, nil
}
