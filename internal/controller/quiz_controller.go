package controller

import (
	"quiz_master_backend/internal/service"
	"quiz_master_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// QuizController serves quiz and question management plus the taker view.
type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

// @Summary List quizzes
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param chapterId query int false "filter by chapter"
// @Success 200 {object} util.Response
// @Router /api/admin/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.Service.ListQuizzes(util.MustParseUint(ctx.Query("chapterId")))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// @Summary Create a quiz under a chapter
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuizRequest true "quiz"
// @Success 201 {object} util.Response
// @Router /api/admin/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.Service.CreateQuiz(req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

// @Summary Update a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz ID"
// @Param body body service.QuizRequest true "quiz"
// @Success 200 {object} util.Response
// @Router /api/admin/quizzes/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.Service.UpdateQuiz(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// @Summary Delete a quiz with its questions and scores
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz ID"
// @Success 200 {object} util.Response
// @Router /api/admin/quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	if err := c.Service.DeleteQuiz(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Taker view of a quiz
// @Description Quiz metadata plus questions with correct answers stripped.
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "quiz ID"
// @Success 200 {object} util.Response{data=service.QuizView}
// @Router /api/quizzes/{quizId} [get]
func (c *QuizController) GetQuizView(ctx *gin.Context) {
	view, err := c.Service.GetQuizView(util.MustParseUint(ctx.Param("quizId")))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary List a quiz's questions (with answers)
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz ID"
// @Success 200 {object} util.Response
// @Router /api/admin/quizzes/{id}/questions [get]
func (c *QuizController) ListQuestions(ctx *gin.Context) {
	questions, err := c.Service.ListQuestions(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary Add a question to a quiz
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz ID"
// @Param body body service.QuestionRequest true "question"
// @Success 201 {object} util.Response
// @Router /api/admin/quizzes/{id}/questions [post]
func (c *QuizController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.CreateQuestion(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question ID"
// @Param body body service.QuestionRequest true "question"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [put]
func (c *QuizController) UpdateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.UpdateQuestion(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// @Summary Delete a question
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question ID"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [delete]
func (c *QuizController) DeleteQuestion(ctx *gin.Context) {
	if err := c.Service.DeleteQuestion(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
