package controller

import (
	"edu_tracker_backend/internal/service"
	"edu_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// @Summary List achievements
// @Description Returns the signed-in user's unlocked badges, newest first.
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/achievements [get]
func (c *AchievementController) GetAchievements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	achievements, err := c.AchievementService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, achievements)
}

type unlockRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// @Summary Unlock achievement
// @Description Records a badge for the signed-in user. Repeat unlocks of the same title are ignored.
// @Tags achievements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param badge body unlockRequest true "Badge fields"
// @Success 200 {object} util.Response
// @Router /api/achievements/unlock [post]
func (c *AchievementController) Unlock(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req unlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	achievement, created, err := c.AchievementService.Unlock(claims.UserID, req.Title, req.Description)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"achievement": achievement,
		"created":     created,
	})
}
