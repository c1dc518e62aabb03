package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"villa-booking/internal/domain/user"
	reqdto "villa-booking/internal/handler/dto/request"
	"villa-booking/internal/infra"
	"villa-booking/internal/pkg/clock"
	"villa-booking/internal/pkg/config"
	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/pkg/jwt"
	"villa-booking/internal/pkg/password"
	"villa-booking/internal/usecase/queries"
	"villa-booking/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	User      *queries.AuthorizedUserView
	Token     string
	ExpiresAt time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	// EnsureAdmin creates the configured super admin when no user exists yet.
	EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error
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

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	now := a.clock.Now()
	issued, err := a.jwtService.Issue(userView.ID, userView.Username, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, userView.ID, now)
	})
	if err != nil {
		// login still succeeds; only last_login is stale
		slog.WarnContext(ctx, "failed to update last login", "user_id", userView.ID, "error", err.Error())
	} else {
		userView.LastLogin = &now
	}

	slog.InfoContext(ctx, "Admin logged in", "user_id", userView.ID, "role", userView.Role)

	return &LoginResult{
		User:      userView,
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}

func (a *authCommandsImpl) EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error {
	if cfg.Username == "" || cfg.Password == "" {
		return nil
	}

	username, err := user.NewUsername(cfg.Username)
	if err != nil {
		return errs.Wrap(err, "bootstrap admin username")
	}
	email, err := user.NewEmail(cfg.Email)
	if err != nil {
		return errs.Wrap(err, "bootstrap admin email")
	}
	if _, err := user.NewPassword(cfg.Password); err != nil {
		return errs.Wrap(err, "bootstrap admin password")
	}
	hash, err := password.Hash(cfg.Password)
	if err != nil {
		return errs.Wrap(err, "hash bootstrap admin password")
	}

	var created uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, err := tx.Users().Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		u := user.NewUser(username, email, hash, user.RoleSuperAdmin, a.clock.Now())
		if err := tx.Users().Create(ctx, u); err != nil {
			return err
		}
		created = u.ID()
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "bootstrap admin")
	}
	if created != uuid.Nil {
		slog.InfoContext(ctx, "Bootstrap admin created", "user_id", created, "username", username.Value())
	}
	return nil
}

// validateUser answers ErrInvalidCredentials for both unknown logins and wrong passwords,
// and spends one bcrypt comparison on either.
func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userView, hashedPassword, err := a.readStore.FindByLogin(ctx, credentials.Login())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			password.Matches("", credentials.Password().Value())
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if !password.Matches(hashedPassword, credentials.Password().Value()) {
		return nil, ErrInvalidCredentials
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	return userView, nil
}
