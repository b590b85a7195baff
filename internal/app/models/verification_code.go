package models

import "time"

// VerificationCode is a single-use registration code scoped to an email and department
type VerificationCode struct {
	ID         int64     `json:"id" db:"id"`
	Code       string    `json:"code" db:"code" example:"K7MPQ2XR"`
	Email      string    `json:"email" db:"email" example:"alice@uni.edu"`
	Department string    `json:"department" db:"department" example:"Computer Science"`
	IssuedBy   int64     `json:"issuedBy" db:"issued_by"`
	ExpiresAt  time.Time `json:"expiresAt" db:"expires_at"`
	IsUsed     bool      `json:"isUsed" db:"is_used"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// IsExpired reports whether the code is past its expiry at the given instant.
// A code is still valid at exactly ExpiresAt.
func (c *VerificationCode) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
