package service

import (
	"fmt"
	"strconv"

	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
	"quiz_master_backend/internal/util"
)

// NotAnswered is the sentinel shown in result views for questions the
// taker skipped.
const NotAnswered = "Not answered"

// ScoringService grades quiz submissions and assembles result views.
// Scores are immutable snapshots: once written, later edits to the quiz's
// questions never change them.
type ScoringService struct {
	QuizRepo     *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
	ScoreRepo    *repository.ScoreRepository
}

func NewScoringService(quizRepo *repository.QuizRepository, questionRepo *repository.QuestionRepository, scoreRepo *repository.ScoreRepository) *ScoringService {
	return &ScoringService{
		QuizRepo:     quizRepo,
		QuestionRepo: questionRepo,
		ScoreRepo:    scoreRepo,
	}
}

// ScoreSubmission grades the submitted answers against the quiz's current
// question set and persists the resulting Score. The percentage is
// 100*correct/total as a real number; a quiz with no questions scores 0.
func (s *ScoringService) ScoreSubmission(userID, quizID uint, answers model.AnswerMap) (*model.Score, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		return nil, notFoundOr(err)
	}

	for qid, selected := range answers {
		if selected < 1 || selected > 4 {
			return nil, fmt.Errorf("%w: answer for question %s must select option 1-4", util.ErrValidation, qid)
		}
	}

	questions, err := s.QuestionRepo.ListByQuiz(quizID)
	if err != nil {
		return nil, err
	}

	correct := 0
	for _, q := range questions {
		if selected, ok := answers[strconv.FormatUint(uint64(q.ID), 10)]; ok && selected == q.CorrectOption {
			correct++
		}
	}

	percentage := 0.0
	if len(questions) > 0 {
		percentage = float64(correct) / float64(len(questions)) * 100
	}

	if answers == nil {
		answers = model.AnswerMap{}
	}

	score := &model.Score{
		UserID:     userID,
		QuizID:     quizID,
		TotalScore: percentage,
		Answers:    answers,
	}
	if err := s.ScoreRepo.Create(score); err != nil {
		return nil, err
	}
	return score, nil
}

// QuestionResult is one row of a result view.
type QuestionResult struct {
	QuestionID        uint   `json:"questionId"`
	QuestionStatement string `json:"questionStatement"`
	SelectedAnswer    string `json:"selectedAnswer"`
	IsCorrect         bool   `json:"isCorrect"`
	CorrectAnswer     string `json:"correctAnswer"`
}

type ResultView struct {
	Quiz    *model.Quiz      `json:"quiz"`
	Score   *model.Score     `json:"score"`
	Results []QuestionResult `json:"results"`
}

// AssembleResult builds the per-question breakdown of a recorded score.
// Only the score's owner or an admin may view it. Rows follow the
// question creation order.
func (s *ScoringService) AssembleResult(quizID, scoreID uint, requester *util.Claims) (*ResultView, error) {
	score, err := s.ScoreRepo.FindByID(scoreID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if score.QuizID != quizID {
		return nil, util.ErrNotFound
	}

	if requester.Role != model.RoleAdmin && score.UserID != requester.UserID {
		return nil, util.ErrPermissionDenied
	}

	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	questions, err := s.QuestionRepo.ListByQuiz(quizID)
	if err != nil {
		return nil, err
	}

	view := &ResultView{
		Quiz:    quiz,
		Score:   score,
		Results: make([]QuestionResult, len(questions)),
	}
	for i, q := range questions {
		result := QuestionResult{
			QuestionID:        q.ID,
			QuestionStatement: q.QuestionStatement,
			SelectedAnswer:    NotAnswered,
			CorrectAnswer:     q.OptionText(q.CorrectOption),
		}
		if selected, ok := score.Answers[strconv.FormatUint(uint64(q.ID), 10)]; ok {
			result.SelectedAnswer = q.OptionText(selected)
			result.IsCorrect = selected == q.CorrectOption
		}
		view.Results[i] = result
	}
	return view, nil
}

// ListUserScores returns a user's past scores, newest first.
func (s *ScoringService) ListUserScores(userID uint) ([]model.Score, error) {
	return s.ScoreRepo.ListByUser(userID)
}
