package repository

import (
	"quiz_master_backend/internal/model"

	"gorm.io/gorm"
)

type ChapterRepository struct {
	DB *gorm.DB
}

func NewChapterRepository(db *gorm.DB) *ChapterRepository {
	return &ChapterRepository{DB: db}
}

func (r *ChapterRepository) Create(chapter *model.Chapter) error {
	return r.DB.Create(chapter).Error
}

func (r *ChapterRepository) FindByID(id uint) (*model.Chapter, error) {
	var c model.Chapter
	err := r.DB.First(&c, id).Error
	return &c, err
}

// List returns all chapters, or only those under subjectID when it is
// non-zero.
func (r *ChapterRepository) List(subjectID uint) ([]model.Chapter, error) {
	var chapters []model.Chapter
	query := r.DB.Model(&model.Chapter{})
	if subjectID > 0 {
		query = query.Where("subject_id = ?", subjectID)
	}
	err := query.Order("id asc").Find(&chapters).Error
	return chapters, err
}

func (r *ChapterRepository) Update(chapter *model.Chapter) error {
	return r.DB.Save(chapter).Error
}

// DeleteCascade removes a chapter, its quizzes, and each quiz's questions
// and scores, all-or-nothing.
func (r *ChapterRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var quizIDs []uint
		if err := tx.Model(&model.Quiz{}).Where("chapter_id = ?", id).Pluck("id", &quizIDs).Error; err != nil {
			return err
		}

		if len(quizIDs) > 0 {
			if err := tx.Where("quiz_id IN ?", quizIDs).Delete(&model.Score{}).Error; err != nil {
				return err
			}
			if err := tx.Where("quiz_id IN ?", quizIDs).Delete(&model.Question{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", quizIDs).Delete(&model.Quiz{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.Chapter{}, id).Error
	})
}
