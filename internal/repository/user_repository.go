package repository

import (
	"quiz_master_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// List returns users with admins first, then by name.
func (r *UserRepository) List() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("role asc, full_name asc").Find(&users).Error
	return users, err
}

func (r *UserRepository) ListByRole(role model.UserRole) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("role = ?", role).Order("full_name asc").Find(&users).Error
	return users, err
}

func (r *UserRepository) CountByRole(role model.UserRole) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

// DeleteWithScores removes a user together with their score rows, in one
// transaction.
func (r *UserRepository) DeleteWithScores(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.Score{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, id).Error
	})
}
