package model

import "time"

// Achievement rows only exist once unlocked; there is no locked state.
// The (UserID, Title) pair is unique so repeated unlocks are no-ops.
// swagger:model Achievement
type Achievement struct {
	BaseModel
	UserID      uint      `gorm:"not null;uniqueIndex:idx_achievements_user_title" json:"userId"`
	Title       string    `gorm:"size:255;not null;uniqueIndex:idx_achievements_user_title" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"size:255" json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

func (Achievement) TableName() string {
	return "achievements"
}
