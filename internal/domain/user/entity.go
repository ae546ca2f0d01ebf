package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a studio member account.
type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	phone        Phone
	passwordHash string
	subscription Subscription
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name Name, email Email, phone Phone, passwordHash string, subscription Subscription, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		subscription: subscription,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func (u *User) ID() uuid.UUID              { return u.id }
func (u *User) Name() Name                 { return u.name }
func (u *User) Email() Email               { return u.email }
func (u *User) Phone() Phone               { return u.phone }
func (u *User) PasswordHash() string       { return u.passwordHash }
func (u *User) Subscription() Subscription { return u.subscription }
func (u *User) Role() Role                 { return u.role }
func (u *User) LastLogin() *time.Time      { return u.lastLogin }
func (u *User) IsActive() bool             { return u.isActive }
func (u *User) CreatedAt() time.Time       { return u.createdAt }
func (u *User) UpdatedAt() time.Time       { return u.updatedAt }
