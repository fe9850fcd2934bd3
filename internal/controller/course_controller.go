package controller

import (
	"edu_tracker_backend/internal/service"
	"edu_tracker_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// @Summary List courses
// @Description Returns the signed-in user's courses.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.CourseService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// @Summary Create course
// @Description Registers a new course for the signed-in user.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body service.CourseRequest true "Course fields"
// @Success 201 {object} util.Response
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Create(claims.UserID, req)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	util.Created(ctx, course)
}

type hourUpdateRequest struct {
	CompletedHours *int `json:"completedHours" binding:"required"`
}

// @Summary Set course hours
// @Description Sets the completed-hours counter. Completing the last hour grants the reward exactly once.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param progress body hourUpdateRequest true "New completed hours"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/progress [patch]
func (c *CourseController) UpdateProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	var req hourUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.ApplyHourUpdate(claims.UserID, uint(courseID), *req.CompletedHours)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// @Summary Add an hour
// @Description Adds a single study hour, capped at the course total.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/hours [post]
func (c *CourseController) AddHour(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	course, err := c.CourseService.IncrementHour(claims.UserID, uint(courseID))
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

func (c *CourseController) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidCategory),
		errors.Is(err, util.ErrInvalidTotalHours),
		errors.Is(err, util.ErrHoursOutOfRange):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
