package repository

import (
	"context"
	"time"

	"court-reserve/internal/domain/booking"
	"court-reserve/internal/infra"
	"court-reserve/internal/pkg/clock"
	"court-reserve/internal/pkg/pgconv"
	"court-reserve/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func NewReservationRepository(pool *pgxpool.Pool, clk clock.Clock) *ReservationRepository {
	return &ReservationRepository{pool: pool, clock: clk}
}

const reservationColumns = `
	r.id, r.user_id, r.court_id, c.name, r.booking_date,
	r.start_time, r.end_time, r.reservation_number, r.created_at, r.updated_at`

func (r *ReservationRepository) Create(ctx context.Context, res *booking.Reservation) (*readmodel.ReservationRM, error) {
	slot := res.Slot()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO reservations (id, user_id, court_id, booking_date, start_time, end_time, reservation_number)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		res.ID(), res.UserID(), slot.CourtID, pgconv.DateToPgtype(slot.Date), slot.Time.Start, slot.Time.End, res.Number(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("slot already reserved", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return r.FindByID(ctx, res.ID())
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+reservationColumns+`
		   FROM reservations r JOIN courts c ON c.id = r.court_id
		  WHERE r.id = $1`, id)

	rm, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return rm, nil
}

// ListForWeek returns all reservations for one court inside [from, to],
// any owner. Feeds the availability grid.
func (r *ReservationRepository) ListForWeek(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]*readmodel.ReservationRM, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reservationColumns+`
		   FROM reservations r JOIN courts c ON c.id = r.court_id
		  WHERE r.court_id = $1 AND r.booking_date BETWEEN $2 AND $3
		  ORDER BY r.booking_date, r.start_time`,
		courtID, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list week reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID uuid.UUID, includePast bool) ([]*readmodel.ReservationRM, error) {
	query := `SELECT ` + reservationColumns + `
	   FROM reservations r JOIN courts c ON c.id = r.court_id
	  WHERE r.user_id = $1`
	args := []any{userID}

	if includePast {
		query += ` ORDER BY r.booking_date DESC, r.start_time DESC`
	} else {
		query += ` AND r.booking_date >= $2 ORDER BY r.booking_date, r.start_time`
		args = append(args, pgconv.DateToPgtype(booking.DateOnly(r.clock.Now())))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) CountForUserOnDate(ctx context.Context, userID, courtID uuid.UUID, date time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM reservations
		  WHERE user_id = $1 AND court_id = $2 AND booking_date = $3`,
		userID, courtID, pgconv.DateToPgtype(date),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count user reservations", err)
	}
	return count, nil
}

// Update moves a reservation to a new slot; edit keeps the row identity
// and reservation number.
func (r *ReservationRepository) Update(ctx context.Context, id uuid.UUID, slot booking.Slot) (*readmodel.ReservationRM, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE reservations
		    SET court_id = $2, booking_date = $3, start_time = $4, end_time = $5, updated_at = now()
		  WHERE id = $1`,
		id, slot.CourtID, pgconv.DateToPgtype(slot.Date), slot.Time.Start, slot.Time.End,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("slot already reserved", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return r.FindByID(ctx, id)
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM reservations WHERE user_id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user reservations", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*readmodel.ReservationRM, error) {
	var (
		rm          readmodel.ReservationRM
		bookingDate pgtype.Date
		number      pgtype.Text
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := row.Scan(
		&rm.ID, &rm.UserID, &rm.CourtID, &rm.CourtName, &bookingDate,
		&rm.StartTime, &rm.EndTime, &number, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	rm.BookingDate = pgconv.DateFromPgtype(bookingDate)
	rm.ReservationNumber = pgconv.StringPtrFromPgtype(number)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rm, nil
}

func collectReservations(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]*readmodel.ReservationRM, error) {
	var result []*readmodel.ReservationRM
	for rows.Next() {
		rm, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return result, nil
}
