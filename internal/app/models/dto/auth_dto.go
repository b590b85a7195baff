package dto

import "github.com/siwes/interntrack/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"alice@uni.edu"`
	Password string `json:"password" binding:"required" example:"Passw0rd!"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RegisterStudentRequest registers a student against a verification code
type RegisterStudentRequest struct {
	FullName string `json:"fullName" binding:"required,max=120" example:"Alice Okafor"`
	Email    string `json:"email" binding:"required,email" example:"alice@uni.edu"`
	Code     string `json:"code" binding:"required,alphanum" example:"K7MPQ2XR"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"Passw0rd!"`
}

// CreateStaffRequest provisions a non-student account
type CreateStaffRequest struct {
	FullName   string `json:"fullName" binding:"required,max=120" example:"Bob Adeyemi"`
	Email      string `json:"email" binding:"required,email" example:"bob@uni.edu"`
	Password   string `json:"password" binding:"required,min=8,max=72" example:"Passw0rd!"`
	Role       string `json:"role" binding:"required,role" example:"INSTITUTION_SUPERVISOR"`
	Department string `json:"department" binding:"omitempty,max=120" example:"Computer Science"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn" example:"2592000"`
}

// UserProfile is the caller's own account view
type UserProfile struct {
	ID                   int64               `json:"id" example:"3"`
	Email                string              `json:"email" example:"alice@uni.edu"`
	FullName             string              `json:"fullName" example:"Alice Okafor"`
	Role                 models.Role         `json:"role" example:"STUDENT"`
	Department           string              `json:"department,omitempty" example:"Computer Science"`
	VerificationCodeUsed *bool               `json:"verificationCodeUsed,omitempty"`
	AssignedSupervisor   *models.UserSummary `json:"assignedSupervisor,omitempty"`
	Assignment           *models.Assignment  `json:"assignment,omitempty"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  *UserProfile  `json:"user"`
}

// StaffResponse is a provisioned account
type StaffResponse struct {
	ID         int64       `json:"id" example:"7"`
	Email      string      `json:"email" example:"bob@uni.edu"`
	FullName   string      `json:"fullName" example:"Bob Adeyemi"`
	Role       models.Role `json:"role" example:"INSTITUTION_SUPERVISOR"`
	Department string      `json:"department,omitempty" example:"Computer Science"`
}

// NewStaffResponse projects a user onto a StaffResponse
func NewStaffResponse(user *models.User) *StaffResponse {
	return &StaffResponse{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		Role:       user.Role,
		Department: user.DepartmentName(),
	}
}
