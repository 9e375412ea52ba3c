package request

import (
	"time"

	"court-reserve/internal/domain/booking"
	"court-reserve/internal/usecase"

	"github.com/google/uuid"
)

type SlotPayload struct {
	CourtID   uuid.UUID `json:"court_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	StartTime string    `json:"start_time" binding:"required"`
	EndTime   string    `json:"end_time" binding:"required"`
}

func (p SlotPayload) ToSlotRequest() (usecase.SlotRequest, error) {
	date, err := time.Parse(booking.ISODate, p.Date)
	if err != nil {
		return usecase.SlotRequest{}, err
	}
	return usecase.SlotRequest{
		CourtID:   p.CourtID,
		Date:      date,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
	}, nil
}

type CreateReservationsRequest struct {
	Slots []SlotPayload `json:"slots" binding:"required,min=1,max=2,dive"`
}

func (r CreateReservationsRequest) ToSlotRequests() ([]usecase.SlotRequest, error) {
	out := make([]usecase.SlotRequest, 0, len(r.Slots))
	for _, p := range r.Slots {
		req, err := p.ToSlotRequest()
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

type UpdateReservationRequest struct {
	Slot SlotPayload `json:"slot" binding:"required"`
}
