//go:build unit || e2e

package builder

import (
	"time"

	"fitstudio/internal/domain/user"
	sqlc "fitstudio/internal/infra/sqlc/generated"
	"fitstudio/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

type UserBuilder struct {
	ID               uuid.UUID
	Name             string
	Email            string
	Phone            string
	PasswordHash     string
	SubscriptionType string
	Role             string
	IsActive         bool
	Now              time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:               uuid.New(),
		Name:             "Test Member",
		Email:            "test@example.com",
		Phone:            "+7 (900) 123-45-67",
		PasswordHash:     TestPasswordHash,
		SubscriptionType: "monthly",
		Role:             "member",
		IsActive:         true,
		Now:              time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(u.Phone)
	if err != nil {
		return nil, err
	}
	sub, err := user.NewSubscription(u.SubscriptionType)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(name, email, phone, u.PasswordHash, sub, role, u.Now), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Phone:            u.Phone,
		PasswordHash:     u.PasswordHash,
		SubscriptionType: u.SubscriptionType,
		Role:             u.Role,
		IsActive:         u.IsActive,
		LastLogin:        pgtype.Timestamptz{},
		CreatedAt:        pgtype.Timestamptz{Time: u.Now, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: u.Now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Phone:            u.Phone,
		SubscriptionType: u.SubscriptionType,
		Role:             u.Role,
		IsActive:         u.IsActive,
		CreatedAt:        u.Now,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = phone
	return u
}

func (u *UserBuilder) WithSubscription(s string) *UserBuilder {
	u.SubscriptionType = s
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
