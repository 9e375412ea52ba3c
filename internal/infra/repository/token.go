package repository

import (
	"context"

	"court-reserve/internal/infra"
	"court-reserve/internal/pkg/pgconv"
	"court-reserve/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuthTokenRepository stores single-use confirmation tokens. Consume is
// a delete-returning so a token can never be redeemed twice.
type AuthTokenRepository struct {
	pool *pgxpool.Pool
}

func NewAuthTokenRepository(pool *pgxpool.Pool) *AuthTokenRepository {
	return &AuthTokenRepository{pool: pool}
}

func (r *AuthTokenRepository) Create(ctx context.Context, t *readmodel.AuthTokenRM, tokenHash string) error {
	// only one live token per (user, purpose)
	_, err := r.pool.Exec(ctx,
		`DELETE FROM auth_tokens WHERE user_id = $1 AND purpose = $2`, t.UserID, t.Purpose)
	if err != nil {
		return infra.WrapRepoErr("failed to clear previous tokens", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO auth_tokens (id, user_id, purpose, token_hash, payload, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.UserID, t.Purpose, tokenHash, t.Payload, pgconv.TimeToPgtype(t.ExpiresAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create token", err)
	}
	return nil
}

func (r *AuthTokenRepository) Consume(ctx context.Context, tokenHash, purpose string) (*readmodel.AuthTokenRM, error) {
	var (
		rm        readmodel.AuthTokenRM
		expiresAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx,
		`DELETE FROM auth_tokens
		  WHERE token_hash = $1 AND purpose = $2
		  RETURNING id, user_id, purpose, payload, expires_at`,
		tokenHash, purpose,
	).Scan(&rm.ID, &rm.UserID, &rm.Purpose, &rm.Payload, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to consume token", err)
	}
	rm.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)

	return &rm, nil
}

func (r *AuthTokenRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM auth_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user tokens", err)
	}
	return nil
}
