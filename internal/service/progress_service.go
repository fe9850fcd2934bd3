package service

import (
	"edu_tracker_backend/internal/model"
	"edu_tracker_backend/internal/repository"
	"edu_tracker_backend/internal/util"
	"errors"

	"edu_tracker_backend/pkg/monitoring"

	"gorm.io/gorm"
)

const (
	startingLevel     = 1
	startingThreshold = 1000

	// awardRetryLimit bounds the optimistic retry loop. Conflicts only occur
	// when two awards for the same user race, so a handful of retries is
	// plenty.
	awardRetryLimit = 5
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{ProgressRepo: progressRepo}
}

// GetOrCreate returns the user's leveling state, lazily creating the initial
// row on first access. The insert is conflict-tolerant, so two concurrent
// first accesses both end up reading the same single row.
func (s *ProgressService) GetOrCreate(userID uint) (*model.UserProgress, error) {
	progress, err := s.ProgressRepo.FindByUserID(userID)
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	seed := &model.UserProgress{
		UserID:                userID,
		CurrentLevel:          startingLevel,
		ExperienceToNextLevel: startingThreshold,
	}
	if err := s.ProgressRepo.CreateIfAbsent(seed); err != nil {
		return nil, err
	}
	return s.ProgressRepo.FindByUserID(userID)
}

// AwardExperience applies a positive XP grant to the user's progress. The
// read-modify-write is guarded by the row's version token and retried on
// conflict, so concurrent awards for the same user never drop experience.
func (s *ProgressService) AwardExperience(userID uint, amount int) (*model.UserProgress, error) {
	if amount <= 0 {
		return nil, util.ErrInvalidAmount
	}

	for attempt := 0; attempt < awardRetryLimit; attempt++ {
		current, err := s.GetOrCreate(userID)
		if err != nil {
			return nil, err
		}

		next, leveledUp := applyAward(*current, amount)

		ok, err := s.ProgressRepo.UpdateConditional(userID, current.Version, &next)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		next.Version = current.Version + 1
		monitoring.ExperienceAwarded.Add(float64(amount))
		if leveledUp {
			monitoring.LevelUps.Inc()
		}
		return &next, nil
	}

	return nil, util.ErrConcurrentUpdate
}

// IncrementCoursesCompleted bumps the completion counter with a store-native
// atomic increment, creating the progress row first if needed.
func (s *ProgressService) IncrementCoursesCompleted(userID uint) error {
	if _, err := s.GetOrCreate(userID); err != nil {
		return err
	}
	return s.ProgressRepo.IncrementCoursesCompleted(userID)
}

// applyAward is the leveling state machine. Single-step: one award crosses at
// most one threshold, and any overflow is carried as currentExperience even
// if it still exceeds the grown threshold. The threshold grows by
// floor(threshold * 1.1), computed in integer arithmetic.
func applyAward(p model.UserProgress, amount int) (model.UserProgress, bool) {
	newExp := p.CurrentExperience + amount
	p.TotalExperience += amount

	if newExp < p.ExperienceToNextLevel {
		p.CurrentExperience = newExp
		return p, false
	}

	overflow := newExp - p.ExperienceToNextLevel
	p.CurrentLevel++
	p.CurrentExperience = overflow
	p.ExperienceToNextLevel += p.ExperienceToNextLevel / 10
	return p, true
}
