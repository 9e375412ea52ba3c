package usecase

import (
	"context"
	"errors"
	"time"

	"court-reserve/internal/domain/booking"
	"court-reserve/internal/infra"
	"court-reserve/internal/pkg/clock"
	"court-reserve/internal/pkg/guard"
	"court-reserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrCourtNotFound       = errors.New("court not found")
	ErrNotOwner            = errors.New("reservation belongs to another user")
	ErrModificationLocked  = errors.New("reservation can no longer be modified")
	ErrSlotConflict        = errors.New("slot was taken by another reservation")
	ErrNoSlotsSelected     = errors.New("no slots selected")
)

type ReservationRepository interface {
	Create(ctx context.Context, res *booking.Reservation) (*readmodel.ReservationRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	ListForWeek(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]*readmodel.ReservationRM, error)
	ListByUser(ctx context.Context, userID uuid.UUID, includePast bool) ([]*readmodel.ReservationRM, error)
	CountForUserOnDate(ctx context.Context, userID, courtID uuid.UUID, date time.Time) (int, error)
	Update(ctx context.Context, id uuid.UUID, slot booking.Slot) (*readmodel.ReservationRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

type CourtRepository interface {
	ListActive(ctx context.Context) ([]*readmodel.CourtRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CourtRM, error)
}

// SlotRequest is one slot of a booking request, already parsed by the
// handler but not yet validated against the grid or the calendar.
type SlotRequest struct {
	CourtID   uuid.UUID
	Date      time.Time
	StartTime string
	EndTime   string
}

// FailedSlot records one slot of a batch that could not be reserved.
type FailedSlot struct {
	Slot   SlotRequest
	Reason error
}

// CreateResult reports a batch insert. The batch is not atomic: earlier
// slots stay reserved when a later one conflicts, and the caller surfaces
// the partial outcome as a whole.
type CreateResult struct {
	Created []*readmodel.ReservationRM
	Failed  []FailedSlot
}

type ReservationUseCase interface {
	GetWeekSchedule(ctx context.Context, userID, courtID uuid.UUID, weekStart time.Time) (*readmodel.WeekScheduleRM, error)
	CreateReservations(ctx context.Context, userID uuid.UUID, slots []SlotRequest) (*CreateResult, error)
	GetReservation(ctx context.Context, userID, reservationID uuid.UUID) (*readmodel.ReservationRM, error)
	ListUserReservations(ctx context.Context, userID uuid.UUID, includePast bool) ([]*readmodel.ReservationRM, error)
	UpdateReservation(ctx context.Context, userID, reservationID uuid.UUID, target SlotRequest) (*readmodel.ReservationRM, error)
	CancelReservation(ctx context.Context, userID, reservationID uuid.UUID) error
}

type reservationUseCaseImpl struct {
	reservationRepo ReservationRepository
	courtRepo       CourtRepository
	userRepo        UserRepository
	clock           clock.Clock
	inFlight        *guard.InFlight
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	courtRepo CourtRepository,
	userRepo UserRepository,
	clk clock.Clock,
	inFlight *guard.InFlight,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		userRepo:        userRepo,
		clock:           clk,
		inFlight:        inFlight,
	}
}

// ensureRegistered blocks booking writes for identities whose profile
// row is missing (an interrupted signup); such accounts can look but
// not book until re-registration completes the profile.
func (r *reservationUseCaseImpl) ensureRegistered(ctx context.Context, userID uuid.UUID) error {
	me, err := r.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !me.HasProfile {
		return ErrIncompleteRegistration
	}
	return nil
}

func (r *reservationUseCaseImpl) GetWeekSchedule(ctx context.Context, userID, courtID uuid.UUID, weekStart time.Time) (*readmodel.WeekScheduleRM, error) {
	if _, err := r.courtRepo.FindByID(ctx, courtID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	start := booking.WeekOf(weekStart)
	end := start.AddDate(0, 0, booking.DaysPerWeek-1)

	existing, err := r.reservationRepo.ListForWeek(ctx, courtID, start, end)
	if err != nil {
		return nil, err
	}

	occupied := make([]booking.Occupied, 0, len(existing))
	mine := make(map[string]struct{})
	dayCounts := make(map[string]int)
	for _, res := range existing {
		occupied = append(occupied, booking.Occupied{
			CourtID: res.CourtID,
			Date:    res.BookingDate,
			Start:   res.StartTime,
			UserID:  res.UserID,
		})
		if res.UserID == userID {
			key := res.BookingDate.Format(booking.ISODate)
			mine[key+"/"+res.StartTime] = struct{}{}
			dayCounts[key]++
		}
	}

	schedule := booking.BuildWeekSchedule(start, courtID, occupied)

	days := make([]readmodel.ScheduleDayRM, 0, len(schedule.Days))
	for _, day := range schedule.Days {
		dateKey := day.Date.Format(booking.ISODate)
		cells := make([]readmodel.ScheduleCellRM, 0, len(day.Cells))
		for _, cell := range day.Cells {
			_, own := mine[dateKey+"/"+cell.Time.Start]
			cells = append(cells, readmodel.ScheduleCellRM{
				StartTime: cell.Time.Start,
				EndTime:   cell.Time.End,
				State:     string(cell.State),
				Mine:      own,
			})
		}
		days = append(days, readmodel.ScheduleDayRM{
			Date:         day.Date,
			Bookable:     day.Bookable,
			UserDayCount: dayCounts[dateKey],
			Cells:        cells,
		})
	}

	return &readmodel.WeekScheduleRM{
		WeekStart: schedule.WeekStart,
		CourtID:   courtID,
		Days:      days,
	}, nil
}

// CreateReservations validates the requested slots against the caps and
// the current schedule, then inserts them one by one. Only one booking
// request per user runs at a time; the database's unique slot constraint
// has the final say on races with other users.
func (r *reservationUseCaseImpl) CreateReservations(ctx context.Context, userID uuid.UUID, slots []SlotRequest) (*CreateResult, error) {
	if len(slots) == 0 {
		return nil, ErrNoSlotsSelected
	}

	if err := r.ensureRegistered(ctx, userID); err != nil {
		return nil, err
	}

	if err := r.inFlight.Acquire("reserve:" + userID.String()); err != nil {
		return nil, err
	}
	defer r.inFlight.Release("reserve:" + userID.String())

	selection := booking.NewSelection(booking.ModeNormal)
	parsed := make([]booking.Slot, 0, len(slots))
	for _, req := range slots {
		slot, sctx, err := r.resolveSlot(ctx, userID, req)
		if err != nil {
			return nil, err
		}
		if err := selection.Toggle(slot, sctx); err != nil {
			return nil, err
		}
		parsed = append(parsed, slot)
	}

	result := &CreateResult{}
	for i, slot := range parsed {
		created, err := r.reservationRepo.Create(ctx, booking.NewReservation(userID, slot))
		if err != nil {
			reason := err
			if infra.IsKind(err, infra.KindDuplicateKey) {
				reason = ErrSlotConflict
			}
			result.Failed = append(result.Failed, FailedSlot{Slot: slots[i], Reason: reason})
			continue
		}
		result.Created = append(result.Created, created)
	}

	return result, nil
}

func (r *reservationUseCaseImpl) GetReservation(ctx context.Context, userID, reservationID uuid.UUID) (*readmodel.ReservationRM, error) {
	return r.findOwned(ctx, userID, reservationID)
}

func (r *reservationUseCaseImpl) ListUserReservations(ctx context.Context, userID uuid.UUID, includePast bool) ([]*readmodel.ReservationRM, error) {
	return r.reservationRepo.ListByUser(ctx, userID, includePast)
}

// UpdateReservation moves a reservation to a new slot. Both the current
// booking date and the edit itself must clear the day-after-tomorrow
// cutoff; caps are not re-checked because a move frees the old slot.
func (r *reservationUseCaseImpl) UpdateReservation(ctx context.Context, userID, reservationID uuid.UUID, target SlotRequest) (*readmodel.ReservationRM, error) {
	if err := r.ensureRegistered(ctx, userID); err != nil {
		return nil, err
	}

	current, err := r.findOwned(ctx, userID, reservationID)
	if err != nil {
		return nil, err
	}

	if !booking.CanModify(current.BookingDate, r.clock.Now()) {
		return nil, ErrModificationLocked
	}

	selection := booking.NewSelection(booking.ModeSingle)
	slot, sctx, err := r.resolveSlot(ctx, userID, target)
	if err != nil {
		return nil, err
	}
	// moving onto the reservation's own slot is a no-op conflict
	if slot.DateKey() == booking.DateOnly(current.BookingDate).Format(booking.ISODate) &&
		slot.Time.Start == current.StartTime && slot.CourtID == current.CourtID {
		sctx.Reserved = false
	}
	if err := selection.Toggle(slot, sctx); err != nil {
		return nil, err
	}

	updated, err := r.reservationRepo.Update(ctx, reservationID, slot)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSlotConflict
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *reservationUseCaseImpl) CancelReservation(ctx context.Context, userID, reservationID uuid.UUID) error {
	current, err := r.findOwned(ctx, userID, reservationID)
	if err != nil {
		return err
	}

	if !booking.CanModify(current.BookingDate, r.clock.Now()) {
		return ErrModificationLocked
	}

	if err := r.reservationRepo.Delete(ctx, reservationID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return err
	}
	return nil
}

func (r *reservationUseCaseImpl) findOwned(ctx context.Context, userID, reservationID uuid.UUID) (*readmodel.ReservationRM, error) {
	res, err := r.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if res.UserID != userID {
		return nil, ErrNotOwner
	}
	return res, nil
}

// resolveSlot validates the grid position and loads the cell's context:
// whether anyone holds it and how many reservations the user already has
// on that date for that court.
func (r *reservationUseCaseImpl) resolveSlot(ctx context.Context, userID uuid.UUID, req SlotRequest) (booking.Slot, booking.SlotContext, error) {
	ts, err := booking.NewTimeSlot(req.StartTime, req.EndTime)
	if err != nil {
		return booking.Slot{}, booking.SlotContext{}, err
	}
	slot := booking.NewSlot(req.CourtID, req.Date, ts)

	if _, err := r.courtRepo.FindByID(ctx, req.CourtID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.Slot{}, booking.SlotContext{}, ErrCourtNotFound
		}
		return booking.Slot{}, booking.SlotContext{}, err
	}

	date := booking.DateOnly(req.Date)
	sameDay, err := r.reservationRepo.ListForWeek(ctx, req.CourtID, date, date)
	if err != nil {
		return booking.Slot{}, booking.SlotContext{}, err
	}

	sctx := booking.SlotContext{}
	for _, res := range sameDay {
		if res.StartTime == ts.Start {
			sctx.Reserved = true
			break
		}
	}

	count, err := r.reservationRepo.CountForUserOnDate(ctx, userID, req.CourtID, date)
	if err != nil {
		return booking.Slot{}, booking.SlotContext{}, err
	}
	sctx.UserDayCount = count

	return slot, sctx, nil
}
