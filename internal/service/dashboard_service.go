package service

import (
	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
	"quiz_master_backend/internal/util"
)

// DashboardService assembles the landing view for both roles.
type DashboardService struct {
	UserRepo    *repository.UserRepository
	SubjectRepo *repository.SubjectRepository
	ChapterRepo *repository.ChapterRepository
	QuizRepo    *repository.QuizRepository
	ScoreRepo   *repository.ScoreRepository
}

func NewDashboardService(userRepo *repository.UserRepository, subjectRepo *repository.SubjectRepository, chapterRepo *repository.ChapterRepository, quizRepo *repository.QuizRepository, scoreRepo *repository.ScoreRepository) *DashboardService {
	return &DashboardService{
		UserRepo:    userRepo,
		SubjectRepo: subjectRepo,
		ChapterRepo: chapterRepo,
		QuizRepo:    quizRepo,
		ScoreRepo:   scoreRepo,
	}
}

type DashboardView struct {
	Subjects         []model.Subject `json:"subjects"`
	Chapters         []model.Chapter `json:"chapters"`
	AvailableQuizzes []model.Quiz    `json:"availableQuizzes"`
	IsAdmin          bool            `json:"isAdmin"`

	// Admin only.
	TotalUsers   int64 `json:"totalUsers,omitempty"`
	TotalQuizzes int64 `json:"totalQuizzes,omitempty"`

	// Non-admin only: the caller's past attempts, newest first.
	PastScores []model.Score `json:"pastScores,omitempty"`
}

func (s *DashboardService) GetDashboard(claims *util.Claims) (*DashboardView, error) {
	subjects, err := s.SubjectRepo.List()
	if err != nil {
		return nil, err
	}
	chapters, err := s.ChapterRepo.List(0)
	if err != nil {
		return nil, err
	}
	quizzes, err := s.QuizRepo.List(0)
	if err != nil {
		return nil, err
	}

	view := &DashboardView{
		Subjects:         subjects,
		Chapters:         chapters,
		AvailableQuizzes: quizzes,
		IsAdmin:          claims.Role == model.RoleAdmin,
	}

	if view.IsAdmin {
		totalUsers, err := s.UserRepo.CountByRole(model.RoleUser)
		if err != nil {
			return nil, err
		}
		totalQuizzes, err := s.QuizRepo.Count()
		if err != nil {
			return nil, err
		}
		view.TotalUsers = totalUsers
		view.TotalQuizzes = totalQuizzes
		return view, nil
	}

	pastScores, err := s.ScoreRepo.ListByUser(claims.UserID)
	if err != nil {
		return nil, err
	}
	view.PastScores = pastScores
	return view, nil
}
