package auth

import (
	"fitstudio/internal/domain/user"
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration carries the validated sign-up form.
type Registration struct {
	Name         user.Name
	Email        user.Email
	Phone        user.Phone
	Password     user.Password
	Subscription user.Subscription
}

func NewRegistration(name, email, phone, password, subscription string) (Registration, error) {
	n, err := user.NewName(name)
	if err != nil {
		return Registration{}, err
	}
	creds, err := NewCredentials(email, password)
	if err != nil {
		return Registration{}, err
	}
	p, err := user.NewPhone(phone)
	if err != nil {
		return Registration{}, err
	}
	sub, err := user.NewSubscription(subscription)
	if err != nil {
		return Registration{}, err
	}
	return Registration{
		Name:         n,
		Email:        creds.Email(),
		Phone:        p,
		Password:     creds.Password(),
		Subscription: sub,
	}, nil
}
