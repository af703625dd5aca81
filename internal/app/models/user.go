package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID                 int64      `json:"id" db:"id" example:"1"`
	Email              string     `json:"email" db:"email" example:"user@school.edu"`
	Password           string     `json:"-" db:"password"`
	FirstName          string     `json:"firstName" db:"first_name" example:"John"`
	LastName           string     `json:"lastName" db:"last_name" example:"Doe"`
	Role               Role       `json:"role" db:"role" example:"STUDENT"`
	InstitutionID      *int64     `json:"institutionId,omitempty" db:"institution_id"`
	OnboardingComplete bool       `json:"onboardingComplete" db:"onboarding_complete" example:"true"`
	IsActive           bool       `json:"isActive" db:"is_active" example:"true"`
	LastLoginAt        *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time  `json:"updatedAt" db:"updated_at"`
}

// RefreshToken defines a persisted refresh token based on the 'refresh_tokens' table
type RefreshToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Token     string    `json:"token" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
