package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForHours(t *testing.T) {
	assert.Equal(t, StatusNotStarted, StatusForHours(0, 20))
	assert.Equal(t, StatusInProgress, StatusForHours(1, 20))
	assert.Equal(t, StatusInProgress, StatusForHours(19, 20))
	assert.Equal(t, StatusCompleted, StatusForHours(20, 20))
}

func TestCourseCategoryValid(t *testing.T) {
	for _, c := range []CourseCategory{CategoryCourse, CategoryBootcamp, CategoryTrail, CategoryProject} {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, CourseCategory("webinar").Valid())
	assert.False(t, CourseCategory("").Valid())
}
