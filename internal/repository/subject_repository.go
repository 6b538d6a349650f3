package repository

import (
	"quiz_master_backend/internal/model"

	"gorm.io/gorm"
)

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) Create(subject *model.Subject) error {
	return r.DB.Create(subject).Error
}

func (r *SubjectRepository) FindByID(id uint) (*model.Subject, error) {
	var s model.Subject
	err := r.DB.First(&s, id).Error
	return &s, err
}

func (r *SubjectRepository) List() ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.Order("name asc").Find(&subjects).Error
	return subjects, err
}

func (r *SubjectRepository) Update(subject *model.Subject) error {
	return r.DB.Save(subject).Error
}

// DeleteCascade removes a subject and everything under it: chapters, their
// quizzes, and each quiz's questions and scores. Child IDs are collected
// before any delete runs; the whole cascade commits or none of it does.
func (r *SubjectRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var chapterIDs []uint
		if err := tx.Model(&model.Chapter{}).Where("subject_id = ?", id).Pluck("id", &chapterIDs).Error; err != nil {
			return err
		}

		var quizIDs []uint
		if len(chapterIDs) > 0 {
			if err := tx.Model(&model.Quiz{}).Where("chapter_id IN ?", chapterIDs).Pluck("id", &quizIDs).Error; err != nil {
				return err
			}
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

		if len(chapterIDs) > 0 {
			if err := tx.Where("id IN ?", chapterIDs).Delete(&model.Chapter{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.Subject{}, id).Error
	})
}
