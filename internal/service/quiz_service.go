package service

import (
	"fmt"
	"time"

	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
	"quiz_master_backend/internal/util"
)

// QuizService manages quizzes and their questions.
type QuizService struct {
	QuizRepo     *repository.QuizRepository
	ChapterRepo  *repository.ChapterRepository
	QuestionRepo *repository.QuestionRepository
}

func NewQuizService(quizRepo *repository.QuizRepository, chapterRepo *repository.ChapterRepository, questionRepo *repository.QuestionRepository) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		ChapterRepo:  chapterRepo,
		QuestionRepo: questionRepo,
	}
}

type QuizRequest struct {
	ChapterID    uint   `json:"chapterId"`
	Title        string `json:"title" binding:"required"`
	DateOfQuiz   string `json:"dateOfQuiz" binding:"required"`
	TimeDuration int    `json:"timeDuration"`
	Remarks      string `json:"remarks"`
}

func (s *QuizService) CreateQuiz(req QuizRequest) (*model.Quiz, error) {
	if req.ChapterID == 0 {
		return nil, fmt.Errorf("%w: a chapter must be selected", util.ErrValidation)
	}
	if _, err := s.ChapterRepo.FindByID(req.ChapterID); err != nil {
		return nil, notFoundOr(err)
	}

	date, err := time.Parse(util.DateFormat, req.DateOfQuiz)
	if err != nil {
		return nil, fmt.Errorf("%w: dateOfQuiz must be YYYY-MM-DD", util.ErrValidation)
	}

	quiz := &model.Quiz{
		ChapterID:    req.ChapterID,
		Title:        req.Title,
		DateOfQuiz:   date,
		TimeDuration: req.TimeDuration,
		Remarks:      req.Remarks,
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) ListQuizzes(chapterID uint) ([]model.Quiz, error) {
	return s.QuizRepo.List(chapterID)
}

// UpdateQuiz mutates scalar fields. The date must parse before anything
// is applied, so a bad date leaves the quiz untouched.
func (s *QuizService) UpdateQuiz(id uint, req QuizRequest) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	date, err := time.Parse(util.DateFormat, req.DateOfQuiz)
	if err != nil {
		return nil, fmt.Errorf("%w: dateOfQuiz must be YYYY-MM-DD", util.ErrValidation)
	}

	quiz.Title = req.Title
	quiz.DateOfQuiz = date
	quiz.TimeDuration = req.TimeDuration
	quiz.Remarks = req.Remarks
	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) DeleteQuiz(id uint) error {
	if _, err := s.QuizRepo.FindByID(id); err != nil {
		return notFoundOr(err)
	}
	return s.QuizRepo.DeleteCascade(id)
}

// TakerQuestion is a question as shown to a quiz taker: the correct
// option is stripped.
type TakerQuestion struct {
	ID                uint   `json:"id"`
	QuestionStatement string `json:"questionStatement"`
	Option1           string `json:"option1"`
	Option2           string `json:"option2"`
	Option3           string `json:"option3"`
	Option4           string `json:"option4"`
}

type QuizView struct {
	Quiz      *model.Quiz     `json:"quiz"`
	Questions []TakerQuestion `json:"questions"`
}

// GetQuizView assembles the taker-facing view of a quiz.
func (s *QuizService) GetQuizView(id uint) (*QuizView, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	questions, err := s.QuestionRepo.ListByQuiz(id)
	if err != nil {
		return nil, err
	}

	view := &QuizView{
		Quiz:      quiz,
		Questions: make([]TakerQuestion, len(questions)),
	}
	for i, q := range questions {
		view.Questions[i] = TakerQuestion{
			ID:                q.ID,
			QuestionStatement: q.QuestionStatement,
			Option1:           q.Option1,
			Option2:           q.Option2,
			Option3:           q.Option3,
			Option4:           q.Option4,
		}
	}
	return view, nil
}

type QuestionRequest struct {
	QuestionStatement string `json:"questionStatement" binding:"required"`
	Option1           string `json:"option1" binding:"required"`
	Option2           string `json:"option2" binding:"required"`
	Option3           string `json:"option3" binding:"required"`
	Option4           string `json:"option4" binding:"required"`
	CorrectOption     int    `json:"correctOption" binding:"required"`
}

func (s *QuizService) CreateQuestion(quizID uint, req QuestionRequest) (*model.Question, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		return nil, notFoundOr(err)
	}
	if req.CorrectOption < 1 || req.CorrectOption > 4 {
		return nil, fmt.Errorf("%w: correctOption must be between 1 and 4", util.ErrValidation)
	}

	question := &model.Question{
		QuizID:            quizID,
		QuestionStatement: req.QuestionStatement,
		Option1:           req.Option1,
		Option2:           req.Option2,
		Option3:           req.Option3,
		Option4:           req.Option4,
		CorrectOption:     req.CorrectOption,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizService) ListQuestions(quizID uint) ([]model.Question, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		return nil, notFoundOr(err)
	}
	return s.QuestionRepo.ListByQuiz(quizID)
}

func (s *QuizService) UpdateQuestion(id uint, req QuestionRequest) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if req.CorrectOption < 1 || req.CorrectOption > 4 {
		return nil, fmt.Errorf("%w: correctOption must be between 1 and 4", util.ErrValidation)
	}

	question.QuestionStatement = req.QuestionStatement
	question.Option1 = req.Option1
	question.Option2 = req.Option2
	question.Option3 = req.Option3
	question.Option4 = req.Option4
	question.CorrectOption = req.CorrectOption
	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizService) DeleteQuestion(id uint) error {
	if _, err := s.QuestionRepo.FindByID(id); err != nil {
		return notFoundOr(err)
	}
	return s.QuestionRepo.Delete(id)
}
