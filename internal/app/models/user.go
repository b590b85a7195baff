package models

import (
	"time"
)

// User is an account of any role, based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Email       string     `json:"email" db:"email" example:"alice@uni.edu"`
	Password    string     `json:"-" db:"password"`
	FullName    string     `json:"fullName" db:"full_name" example:"Alice Okafor"`
	Role        Role       `json:"role" db:"role_type" example:"STUDENT"`
	Department  *string    `json:"department,omitempty" db:"department" example:"Computer Science"`
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// DepartmentName returns the department or an empty string
func (u *User) DepartmentName() string {
	if u.Department == nil {
		return ""
	}
	return *u.Department
}

// Summary returns the fields of a user that are safe to expose to other accounts
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, FullName: u.FullName, Email: u.Email}
}

// UserSummary is the public projection of a user: never carries a credential
type UserSummary struct {
	ID       int64  `json:"id" db:"id" example:"7"`
	FullName string `json:"fullName" db:"full_name" example:"Bob Adeyemi"`
	Email    string `json:"email" db:"email" example:"bob@uni.edu"`
}
