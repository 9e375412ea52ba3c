package repository

import (
	"context"

	"court-reserve/internal/infra"
	"court-reserve/internal/pkg/pgconv"
	"court-reserve/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CourtRepository struct {
	pool *pgxpool.Pool
}

func NewCourtRepository(pool *pgxpool.Pool) *CourtRepository {
	return &CourtRepository{pool: pool}
}

func (r *CourtRepository) ListActive(ctx context.Context) ([]*readmodel.CourtRM, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, display_name, is_active
		   FROM courts WHERE is_active = true ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}
	defer rows.Close()

	var courts []*readmodel.CourtRM
	for rows.Next() {
		var rm readmodel.CourtRM
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.DisplayName, &rm.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan court row", err)
		}
		courts = append(courts, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read court rows", err)
	}

	return courts, nil
}

func (r *CourtRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CourtRM, error) {
	var rm readmodel.CourtRM
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, display_name, is_active FROM courts WHERE id = $1`, id,
	).Scan(&rm.ID, &rm.Name, &rm.DisplayName, &rm.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by ID", err)
	}

	return &rm, nil
}
