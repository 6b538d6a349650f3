package repository

import (
	"quiz_master_backend/internal/model"

	"gorm.io/gorm"
)

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

func (r *ScoreRepository) Create(score *model.Score) error {
	return r.DB.Create(score).Error
}

func (r *ScoreRepository) FindByID(id uint) (*model.Score, error) {
	var s model.Score
	err := r.DB.First(&s, id).Error
	return &s, err
}

func (r *ScoreRepository) ListByUser(userID uint) ([]model.Score, error) {
	var scores []model.Score
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc, id desc").Find(&scores).Error
	return scores, err
}

// ListFiltered returns scores newest first, optionally narrowed to a
// subject (via the quiz/chapter join) and/or a user.
func (r *ScoreRepository) ListFiltered(subjectID, userID uint) ([]model.Score, error) {
	var scores []model.Score
	query := r.DB.Model(&model.Score{}).
		Joins("JOIN quizzes ON quizzes.id = scores.quiz_id").
		Joins("JOIN chapters ON chapters.id = quizzes.chapter_id").
		Joins("JOIN subjects ON subjects.id = chapters.subject_id")
	if subjectID > 0 {
		query = query.Where("subjects.id = ?", subjectID)
	}
	if userID > 0 {
		query = query.Where("scores.user_id = ?", userID)
	}
	err := query.Order("scores.created_at desc, scores.id desc").Find(&scores).Error
	return scores, err
}
