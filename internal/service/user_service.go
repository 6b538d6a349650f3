package service

import (
	"errors"
	"fmt"
	"time"

	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
	"quiz_master_backend/internal/util"

	"gorm.io/gorm"
)

// UserService covers the admin user-management surface. Admin rows are
// protected: they cannot be deleted, role-downgraded, or edited by a
// different admin.
type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) ListUsers() ([]model.User, error) {
	return s.UserRepo.List()
}

type UpdateUserRequest struct {
	FullName      string `json:"fullName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Role          string `json:"role" binding:"required,oneof=admin user"`
	Qualification string `json:"qualification"`
	DOB           string `json:"dob"`
}

func (s *UserService) UpdateUser(actorID, id uint, req UpdateUserRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if user.Role == model.RoleAdmin && user.ID != actorID {
		return nil, fmt.Errorf("%w: cannot edit another admin", util.ErrPermissionDenied)
	}

	if req.Email != user.Email {
		_, err := s.UserRepo.FindByEmail(req.Email)
		if err == nil {
			return nil, util.ErrEmailRegistered
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var dob *time.Time
	if req.DOB != "" {
		parsed, err := time.Parse(util.DateFormat, req.DOB)
		if err != nil {
			return nil, fmt.Errorf("%w: dob must be YYYY-MM-DD", util.ErrValidation)
		}
		dob = &parsed
	}

	if user.Role == model.RoleAdmin {
		// Attempted downgrades are rejected, not silently ignored.
		if model.UserRole(req.Role) != model.RoleAdmin {
			return nil, fmt.Errorf("%w: admin role cannot be changed", util.ErrPermissionDenied)
		}
	} else {
		user.Role = model.UserRole(req.Role)
	}

	user.FullName = req.FullName
	user.Email = req.Email
	user.Qualification = req.Qualification
	user.DOB = dob

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a non-admin user and, in the same transaction, their
// scores.
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return notFoundOr(err)
	}

	if user.Role == model.RoleAdmin {
		return fmt.Errorf("%w: admin users cannot be deleted", util.ErrPermissionDenied)
	}

	return s.UserRepo.DeleteWithScores(id)
}
