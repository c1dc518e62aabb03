package queries

import (
	"context"

	"villa-booking/internal/domain/user"
	"villa-booking/internal/infra"
	"villa-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	// GetCurrentUser backs /auth/me. A token outlives a deactivation, so the
	// account is re-read on every call instead of trusting the claims.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// FindByLogin matches a username exactly or an email case-insensitively and
	// also returns the stored password hash.
	FindByLogin(ctx context.Context, login string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	users UserReadStore
}

func NewUserQueries(users UserReadStore) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.users.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, errs.Wrap(err, "load current user")
	case !view.IsActive:
		return nil, ErrUserInactive
	}

	perms := user.Role(view.Role).Permissions()
	view.Permissions = make([]string, len(perms))
	for i, p := range perms {
		view.Permissions[i] = string(p)
	}
	return view, nil
}
