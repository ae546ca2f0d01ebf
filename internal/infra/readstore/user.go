package readstore

import (
	"context"

	"github.com/google/uuid"

	"fitstudio/internal/infra"
	sqlc "fitstudio/internal/infra/sqlc/generated"
	"fitstudio/internal/pkg/pgconv"
	"fitstudio/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:               row.ID,
		Name:             row.Name,
		Email:            row.Email,
		Phone:            row.Phone,
		SubscriptionType: row.SubscriptionType,
		Role:             row.Role,
		IsActive:         row.IsActive,
		LastLogin:        pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &queries.AuthorizedUserView{
		ID:               row.ID,
		Name:             row.Name,
		Email:            row.Email,
		Phone:            row.Phone,
		SubscriptionType: row.SubscriptionType,
		Role:             row.Role,
		IsActive:         row.IsActive,
		LastLogin:        pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}, row.PasswordHash, nil
}
