package model

// UserProgress holds the per-user leveling state. Exactly one row per user,
// created lazily on first access. Version is the optimistic concurrency token
// guarding the award read-modify-write; it is bumped on every state write.
//
// Invariants after every successful award:
//
//	CurrentLevel, TotalExperience, ExperienceToNextLevel never decrease
//	CurrentExperience < ExperienceToNextLevel, except when a single award
//	overflows more than one threshold (leveling is single-step; the surplus
//	is carried and consumed by the next award)
//
// swagger:model UserProgress
type UserProgress struct {
	BaseModel
	UserID                uint `gorm:"uniqueIndex;not null" json:"userId"`
	TotalExperience       int  `gorm:"default:0;not null" json:"totalExperience"`
	CurrentLevel          int  `gorm:"default:1;not null" json:"currentLevel"`
	ExperienceToNextLevel int  `gorm:"default:1000;not null" json:"experienceToNextLevel"`
	CurrentExperience     int  `gorm:"default:0;not null" json:"currentExperience"`
	CoursesCompleted      int  `gorm:"default:0;not null" json:"coursesCompleted"`
	Version               int  `gorm:"default:0;not null" json:"-"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
