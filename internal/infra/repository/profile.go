package repository

import (
	"context"

	"court-reserve/internal/domain/user"
	"court-reserve/internal/infra"
	"court-reserve/internal/pkg/pgconv"
	"court-reserve/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Create(ctx context.Context, p *user.Profile, email string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, full_name, full_name_kana, phone, email)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.UserID(), p.FullName(), p.FullNameKana(), p.Phone(), email,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("profile already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create profile", err)
	}
	return nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*readmodel.ProfileRM, error) {
	var rm readmodel.ProfileRM
	err := r.pool.QueryRow(ctx,
		`SELECT user_id, full_name, full_name_kana, phone, email, created_at, updated_at
		   FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&rm.UserID, &rm.FullName, &rm.FullNameKana, &rm.Phone, &rm.Email, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile", err)
	}

	return &rm, nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *user.Profile) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE profiles
		    SET full_name = $2, full_name_kana = $3, phone = $4, updated_at = now()
		  WHERE user_id = $1`,
		p.UserID(), p.FullName(), p.FullNameKana(), p.Phone(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("profile not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProfileRepository) UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE profiles SET email = $2, updated_at = now() WHERE user_id = $1`, userID, email)
	if err != nil {
		return infra.WrapRepoErr("failed to update profile email", err)
	}
	return nil
}

func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete profile", err)
	}
	return nil
}
