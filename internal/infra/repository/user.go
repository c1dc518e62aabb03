package repository

import (
	"context"
	"time"

	"villa-booking/internal/domain/user"
	"villa-booking/internal/infra"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateAdminUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAdminUserParams) error
	UpdateAdminUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAdminUserLastLoginParams) (int64, error)
	CountAdminUsers(ctx context.Context, db sqlc.DBTX) (int64, error)
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
	err := r.queries.CreateAdminUser(ctx, r.db, sqlc.CreateAdminUserParams{
		ID:           u.ID(),
		Username:     u.Username().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create admin user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	affected, err := r.queries.UpdateAdminUserLastLogin(ctx, r.db, sqlc.UpdateAdminUserLastLoginParams{
		ID:        userID,
		LastLogin: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.queries.CountAdminUsers(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count admin users", err)
	}
	return n, nil
}
