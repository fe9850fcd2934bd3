package model

type CourseCategory string

const (
	CategoryCourse   CourseCategory = "course"
	CategoryBootcamp CourseCategory = "bootcamp"
	CategoryTrail    CourseCategory = "trail"
	CategoryProject  CourseCategory = "project"
)

func (c CourseCategory) Valid() bool {
	switch c {
	case CategoryCourse, CategoryBootcamp, CategoryTrail, CategoryProject:
		return true
	}
	return false
}

type CourseStatus string

const (
	StatusNotStarted CourseStatus = "not_started"
	StatusInProgress CourseStatus = "in_progress"
	StatusCompleted  CourseStatus = "completed"
)

// swagger:model Course
type Course struct {
	BaseModel
	UserID         uint           `gorm:"index;not null" json:"userId"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	Category       CourseCategory `gorm:"size:64;not null" json:"category"`
	Icon           string         `gorm:"size:255" json:"icon"`
	TotalHours     int            `gorm:"not null" json:"totalHours"`
	CompletedHours int            `gorm:"default:0;not null" json:"completedHours"`
	Status         CourseStatus   `gorm:"size:16;default:'not_started';not null" json:"status"`
}

func (Course) TableName() string {
	return "courses"
}

// StatusForHours derives the persisted status from the hour counters:
// completed iff completedHours == totalHours, not_started iff zero,
// in_progress otherwise.
func StatusForHours(completedHours, totalHours int) CourseStatus {
	switch {
	case completedHours == totalHours:
		return StatusCompleted
	case completedHours == 0:
		return StatusNotStarted
	default:
		return StatusInProgress
	}
}
