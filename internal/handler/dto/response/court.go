package response

import (
	"court-reserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CourtResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
}

func FromCourtRMs(rms []*readmodel.CourtRM) []*CourtResponse {
	out := make([]*CourtResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, &CourtResponse{
			ID:          rm.ID,
			Name:        rm.Name,
			DisplayName: rm.DisplayName,
		})
	}
	return out
}
