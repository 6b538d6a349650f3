package model

import (
	"time"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// swagger:model User
type User struct {
	BaseModel
	Email         string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	FullName      string     `gorm:"size:100;not null" json:"fullName"`
	Password      string     `gorm:"size:100;not null" json:"-"`
	Role          UserRole   `gorm:"size:20;default:'user'" json:"role"`
	Qualification string     `gorm:"size:255" json:"qualification"`
	DOB           *time.Time `json:"dob,omitempty"`
}

func (User) TableName() string {
	return "users"
}
