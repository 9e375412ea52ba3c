package repository

import (
	"context"
	"errors"

	"court-reserve/internal/domain/user"
	"court-reserve/internal/infra"
	"court-reserve/internal/pkg/pgconv"
	"court-reserve/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeUniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, is_active) VALUES ($1, $2, $3, $4)`,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error) {
	var (
		rm           readmodel.AuthorizedUserRM
		passwordHash string
		lastLogin    pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx,
		`SELECT u.id, u.email, u.password_hash, u.is_active, u.last_login, p.user_id IS NOT NULL
		   FROM users u
		   LEFT JOIN profiles p ON p.user_id = u.id
		  WHERE u.email = $1 AND u.is_active = true`,
		email,
	).Scan(&rm.ID, &rm.Email, &passwordHash, &rm.IsActive, &lastLogin, &rm.HasProfile)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	rm.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)

	return &rm, passwordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	var (
		rm        readmodel.AuthorizedUserRM
		lastLogin pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx,
		`SELECT u.id, u.email, u.is_active, u.last_login, p.user_id IS NOT NULL
		   FROM users u
		   LEFT JOIN profiles p ON p.user_id = u.id
		  WHERE u.id = $1`,
		id,
	).Scan(&rm.ID, &rm.Email, &rm.IsActive, &lastLogin, &rm.HasProfile)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	rm.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)

	return &rm, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, userID, passwordHash)
	if err != nil {
		return infra.WrapRepoErr("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET email = $2, updated_at = now() WHERE id = $1`, userID, email)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update email", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
