package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is created on first successful sign-in (upsert keyed by OpenID) and
// never deleted by the application.
// swagger:model User
type User struct {
	BaseModel
	OpenID       string    `gorm:"size:64;uniqueIndex;not null" json:"openId"`
	Name         string    `gorm:"size:100" json:"name"`
	Email        string    `gorm:"size:320" json:"email"`
	Avatar       string    `gorm:"size:255" json:"avatar"`
	LoginMethod  string    `gorm:"size:64" json:"loginMethod"`
	Role         UserRole  `gorm:"size:16;default:'user'" json:"role"`
	LastSignedIn time.Time `json:"lastSignedIn"`
	LastSeen     time.Time `json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
