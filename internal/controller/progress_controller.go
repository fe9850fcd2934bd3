package controller

import (
	"edu_tracker_backend/internal/service"
	"edu_tracker_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary Get leveling state
// @Description Returns the signed-in user's XP and level, creating the initial state on first access.
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProgressService.GetOrCreate(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

type experienceRequest struct {
	Amount int `json:"amount" binding:"required"`
}

// @Summary Award experience
// @Description Grants the signed-in user a positive amount of XP, applying level-ups.
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param grant body experienceRequest true "XP amount"
// @Success 200 {object} util.Response
// @Router /api/progress/experience [post]
func (c *ProgressController) AddExperience(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req experienceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.AwardExperience(claims.UserID, req.Amount)
	if err != nil {
		if errors.Is(err, util.ErrInvalidAmount) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}
