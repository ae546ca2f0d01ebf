package request

import (
	"fitstudio/internal/domain/auth"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	Password         string `json:"password" binding:"required,min=8"`
	SubscriptionType string `json:"subscription_type" binding:"required"`
}

func (r *RegisterRequest) ToDomain() (auth.Registration, error) {
	return auth.NewRegistration(r.Name, r.Email, r.Phone, r.Password, r.SubscriptionType)
}

// RefreshRequest is optional when the refresh cookie is present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
