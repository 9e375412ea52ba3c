package booking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Reservation is a persisted binding of a member to one slot. Uniqueness
// of (court, date, start) is owned by the data store, not by this type.
type Reservation struct {
	id        uuid.UUID
	userID    uuid.UUID
	slot      Slot
	number    string
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(userID uuid.UUID, slot Slot) *Reservation {
	return &Reservation{
		id:     uuid.New(),
		userID: userID,
		slot:   slot,
		number: newReservationNumber(slot.Date),
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) Slot() Slot           { return r.slot }
func (r *Reservation) Number() string       { return r.number }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

// newReservationNumber builds a short display code like R20250104-3F2A.
// Collisions are harmless; the code is for humans, not for lookup.
func newReservationNumber(date time.Time) string {
	suffix := make([]byte, 2)
	if _, err := rand.Read(suffix); err != nil {
		return fmt.Sprintf("R%s-%04d", date.Format("20060102"), time.Now().UnixNano()%10000)
	}
	return fmt.Sprintf("R%s-%s", date.Format("20060102"), strings.ToUpper(hex.EncodeToString(suffix)))
}
