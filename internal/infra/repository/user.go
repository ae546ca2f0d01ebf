package repository

import (
	"context"

	"fitstudio/internal/domain/user"
	"fitstudio/internal/infra"
	sqlc "fitstudio/internal/infra/sqlc/generated"
	"fitstudio/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.queries.CreateUser(ctx, r.db, sqlc.CreateUserParams{
		ID:               u.ID(),
		Name:             u.Name().Value(),
		Email:            u.Email().Value(),
		Phone:            u.Phone().Value(),
		PasswordHash:     u.PasswordHash(),
		SubscriptionType: u.Subscription().String(),
		Role:             u.Role().String(),
		IsActive:         u.IsActive(),
		CreatedAt:        pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	err := r.queries.UpdateUserLastLogin(ctx, r.db, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err, infra.KindDBFailure)
	}
	return nil
}
