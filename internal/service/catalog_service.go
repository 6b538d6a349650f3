package service

import (
	"errors"
	"fmt"

	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
	"quiz_master_backend/internal/util"

	"gorm.io/gorm"
)

// CatalogService manages the subject/chapter part of the content
// hierarchy.
type CatalogService struct {
	SubjectRepo *repository.SubjectRepository
	ChapterRepo *repository.ChapterRepository
}

func NewCatalogService(subjectRepo *repository.SubjectRepository, chapterRepo *repository.ChapterRepository) *CatalogService {
	return &CatalogService{
		SubjectRepo: subjectRepo,
		ChapterRepo: chapterRepo,
	}
}

type SubjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *CatalogService) CreateSubject(req SubjectRequest) (*model.Subject, error) {
	subject := &model.Subject{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.SubjectRepo.Create(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *CatalogService) ListSubjects() ([]model.Subject, error) {
	return s.SubjectRepo.List()
}

func (s *CatalogService) UpdateSubject(id uint, req SubjectRequest) (*model.Subject, error) {
	subject, err := s.SubjectRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	subject.Name = req.Name
	subject.Description = req.Description
	if err := s.SubjectRepo.Update(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *CatalogService) DeleteSubject(id uint) error {
	if _, err := s.SubjectRepo.FindByID(id); err != nil {
		return notFoundOr(err)
	}
	return s.SubjectRepo.DeleteCascade(id)
}

type ChapterRequest struct {
	SubjectID   uint   `json:"subjectId"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *CatalogService) CreateChapter(req ChapterRequest) (*model.Chapter, error) {
	if req.SubjectID == 0 {
		return nil, fmt.Errorf("%w: a subject must be selected", util.ErrValidation)
	}
	if _, err := s.SubjectRepo.FindByID(req.SubjectID); err != nil {
		return nil, notFoundOr(err)
	}

	chapter := &model.Chapter{
		SubjectID:   req.SubjectID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.ChapterRepo.Create(chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *CatalogService) ListChapters(subjectID uint) ([]model.Chapter, error) {
	return s.ChapterRepo.List(subjectID)
}

// UpdateChapter mutates name and description only; a chapter never moves
// to another subject.
func (s *CatalogService) UpdateChapter(id uint, req ChapterRequest) (*model.Chapter, error) {
	chapter, err := s.ChapterRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	chapter.Name = req.Name
	chapter.Description = req.Description
	if err := s.ChapterRepo.Update(chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *CatalogService) DeleteChapter(id uint) error {
	if _, err := s.ChapterRepo.FindByID(id); err != nil {
		return notFoundOr(err)
	}
	return s.ChapterRepo.DeleteCascade(id)
}

// notFoundOr maps a missing row onto the service taxonomy and passes
// every other store failure through.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrNotFound
	}
	return err
}
