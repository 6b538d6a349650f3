package repository

import (
	"quiz_master_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var q model.Quiz
	err := r.DB.First(&q, id).Error
	return &q, err
}

// List returns all quizzes, or only those under chapterID when it is
// non-zero.
func (r *QuizRepository) List(chapterID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	query := r.DB.Model(&model.Quiz{})
	if chapterID > 0 {
		query = query.Where("chapter_id = ?", chapterID)
	}
	err := query.Order("id asc").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Quiz{}).Count(&count).Error
	return count, err
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

// DeleteCascade removes a quiz with its questions and scores,
// all-or-nothing.
func (r *QuizRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Score{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, id).Error
	})
}
