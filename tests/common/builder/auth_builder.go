//go:build unit || e2e

package builder

import (
	reqdto "fitstudio/internal/handler/dto/request"
)

type AuthBuilder struct {
	Name             string
	Email            string
	Phone            string
	Password         string
	SubscriptionType string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:             "Test Member",
		Email:            "test@example.com",
		Phone:            "+7 900 123-45-67",
		Password:         "password123",
		SubscriptionType: "monthly",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:             a.Name,
		Email:            a.Email,
		Phone:            a.Phone,
		Password:         a.Password,
		SubscriptionType: a.SubscriptionType,
	}
}
