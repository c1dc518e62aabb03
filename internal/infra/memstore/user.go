package memstore

import (
	"context"
	"strings"
	"time"

	"villa-booking/internal/domain/user"
	"villa-booking/internal/infra"
	"villa-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type userRepo struct {
	tx *memTx
}

func (r *userRepo) Create(_ context.Context, u *user.User) error {
	rec := userRecord{
		id:           u.ID(),
		username:     u.Username().Value(),
		email:        u.Email().Value(),
		passwordHash: u.PasswordHash(),
		role:         u.Role().String(),
		isActive:     u.IsActive(),
		lastLogin:    u.LastLogin(),
		createdAt:    u.CreatedAt(),
		updatedAt:    u.UpdatedAt(),
	}
	return r.tx.write(func(s *Store) (func(*Store), error) {
		for _, other := range s.users {
			if other.id == rec.id || other.username == rec.username || strings.EqualFold(other.email, rec.email) {
				return nil, infra.NewRepoErr(infra.KindDuplicateKey, "admin user already exists")
			}
		}
		s.users[rec.id] = rec
		return func(s *Store) { delete(s.users, rec.id) }, nil
	})
}

func (r *userRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID, at time.Time) error {
	return r.tx.write(func(s *Store) (func(*Store), error) {
		prev, ok := s.users[userID]
		if !ok {
			return nil, infra.NewRepoErr(infra.KindNotFound, "admin user not found")
		}
		next := prev
		next.lastLogin = &at
		next.updatedAt = at
		s.users[userID] = next
		return func(s *Store) { s.users[userID] = prev }, nil
	})
}

func (r *userRepo) Count(_ context.Context) (int64, error) {
	var n int
	r.tx.read(func(s *Store) { n = len(s.users) })
	return int64(n), nil
}

type UserReadStore struct {
	store *Store
}

func NewUserReadStore(store *Store) *UserReadStore {
	return &UserReadStore{store: store}
}

func (r *UserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.users[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "admin user not found")
	}
	return userView(rec), nil
}

// FindByLogin matches the username exactly or the email case-insensitively and also
// returns the stored password hash.
func (r *UserReadStore) FindByLogin(_ context.Context, login string) (*queries.AuthorizedUserView, string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, rec := range r.store.users {
		if rec.username == login || strings.EqualFold(rec.email, login) {
			return userView(rec), rec.passwordHash, nil
		}
	}
	return nil, "", infra.NewRepoErr(infra.KindNotFound, "admin user not found")
}

func userView(rec userRecord) *queries.AuthorizedUserView {
	var last *time.Time
	if rec.lastLogin != nil {
		t := *rec.lastLogin
		last = &t
	}
	return &queries.AuthorizedUserView{
		ID:        rec.id,
		Username:  rec.username,
		Email:     rec.email,
		Role:      rec.role,
		IsActive:  rec.isActive,
		LastLogin: last,
	}
}
