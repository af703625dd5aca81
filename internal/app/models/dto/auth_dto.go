package dto

import "github.com/tobi/edushare/internal/app/models"

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Role          string `json:"role" binding:"required,oneof=STUDENT INSTRUCTOR INSTITUTION"`
	InstitutionID *int64 `json:"institutionId,omitempty"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest is the payload for refresh token rotation
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn"`
	RefreshExpiresIn int    `json:"refreshExpiresIn"`
}

// AuthResponse carries tokens plus the authenticated user
type AuthResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID                 int64  `json:"id"`
	Email              string `json:"email"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Role               string `json:"role"`
	InstitutionID      *int64 `json:"institutionId,omitempty"`
	OnboardingComplete bool   `json:"onboardingComplete"`
}

// FromUser converts a user model to its public view
func FromUser(u *models.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Role:               string(u.Role),
		InstitutionID:      u.InstitutionID,
		OnboardingComplete: u.OnboardingComplete,
	}
}
