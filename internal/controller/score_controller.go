package controller

import (
	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/service"
	"quiz_master_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ScoreController serves quiz submission and result review.
type ScoreController struct {
	Service *service.ScoringService
}

func NewScoreController(svc *service.ScoringService) *ScoreController {
	return &ScoreController{Service: svc}
}

// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	// Answers maps question IDs (as strings) to the selected option, 1-4.
	// Unanswered questions are omitted.
	Answers model.AnswerMap `json:"answers"`
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Grades the submission and records an immutable score.
// @Tags scores
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "quiz ID"
// @Param body body SubmitQuizRequest true "submitted answers"
// @Success 201 {object} util.Response{data=model.Score}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{quizId}/submit [post]
func (c *ScoreController) SubmitQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	score, err := c.Service.ScoreSubmission(claims.UserID, util.MustParseUint(ctx.Param("quizId")), req.Answers)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, score)
}

// GetResult godoc
// @Summary Per-question result breakdown for a recorded score
// @Description Owner or admin only.
// @Tags scores
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "quiz ID"
// @Param scoreId path int true "score ID"
// @Success 200 {object} util.Response{data=service.ResultView}
// @Failure 403 {object} util.Response
// @Router /api/quizzes/{quizId}/results/{scoreId} [get]
func (c *ScoreController) GetResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.Service.AssembleResult(
		util.MustParseUint(ctx.Param("quizId")),
		util.MustParseUint(ctx.Param("scoreId")),
		claims,
	)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// ListMyScores godoc
// @Summary The caller's past scores, newest first
// @Tags scores
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/scores [get]
func (c *ScoreController) ListMyScores(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	scores, err := c.Service.ListUserScores(claims.UserID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, scores)
}
