package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"fitstudio/internal/domain/auth"
	"fitstudio/internal/domain/user"
	"fitstudio/internal/infra"
	"fitstudio/internal/pkg/clock"
	"fitstudio/internal/pkg/errs"
	"fitstudio/internal/pkg/jwt"
	"fitstudio/internal/pkg/password"
	"fitstudio/internal/usecase/queries"
	"fitstudio/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailAlreadyExists   = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, reg auth.Registration) (*LoginResult, error)
	Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
	}
}

// Register creates a member account and signs it in.
func (a *authCommandsImpl) Register(ctx context.Context, reg auth.Registration) (*LoginResult, error) {
	hash, err := password.Hash(reg.Password.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(reg.Name, reg.Email, reg.Phone, hash, reg.Subscription, user.RoleMember, a.clock.Now())

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if createErr := tx.Users().Create(ctx, u); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrEmailAlreadyExists
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	pair, err := a.issueTokens(u.ID(), u.Role())
	if err != nil {
		return nil, err
	}

	return &LoginResult{UserID: u.ID(), TokenPair: pair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error) {
	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.issueTokens(userReadModel.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, userReadModel.ID)
	})
	if err != nil {
		// login already succeeded; only the timestamp is lost
		slog.Warn("failed to update last login", "user_id", userReadModel.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    userReadModel.ID,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// role is re-read so a demoted admin does not keep admin tokens
	userReadModel, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userReadModel == nil {
		return nil, ErrUserNotFound
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	userReadModel, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same error as a wrong password to avoid user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.Compare(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}
