//go:build unit || e2e

package builder

import (
	"time"

	"villa-booking/internal/domain/user"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/pkg/pgconv"
	"villa-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Username:     "admin",
		Email:        "admin@villa.example.com",
		PasswordHash: "hashed_password",
		Role:         "admin",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(username, email, u.PasswordHash, role, FixedNow), nil
}

// BuildInfra returns the admin_users row as sqlc scans it.
func (u *UserBuilder) BuildInfra() sqlc.AdminUsers {
	var lastLogin pgtype.Timestamptz
	if u.LastLogin != nil {
		lastLogin = pgconv.TimeToPgtype(*u.LastLogin)
	}

	return sqlc.AdminUsers{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
		LastLogin:    lastLogin,
		CreatedAt:    pgconv.TimeToPgtype(FixedNow),
		UpdatedAt:    pgconv.TimeToPgtype(FixedNow),
	}
}

// BuildReadModel mirrors what GetCurrentUser returns, permissions included.
func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	var perms []string
	for _, p := range user.Role(u.Role).Permissions() {
		perms = append(perms, string(p))
	}
	return &queries.AuthorizedUserView{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLogin:   u.LastLogin,
		Permissions: perms,
	}
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
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

func (u *UserBuilder) WithLastLogin(at time.Time) *UserBuilder {
	u.LastLogin = &at
	return u
}

// BuildStored keeps the builder's ID, hash and active flag.
func (u *UserBuilder) BuildStored() *user.User {
	return user.ReconstructUser(u.ID, u.Username, u.Email, u.PasswordHash, user.Role(u.Role), u.IsActive, u.LastLogin, FixedNow, FixedNow)
}
