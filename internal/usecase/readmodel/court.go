package readmodel

import "github.com/google/uuid"

type CourtRM struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
	IsActive    bool      `json:"isActive"`
}
