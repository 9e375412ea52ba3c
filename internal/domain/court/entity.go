package court

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCourtName   = errors.New("court name cannot be empty")
	ErrCourtNameTooLong = errors.New("court name is too long (max 255 characters)")
)

const MaxCourtNameLength = 255

// Court is a bookable physical court. Immutable from the booking core's
// perspective; rows are maintained by operations staff.
type Court struct {
	id          uuid.UUID
	name        string
	displayName string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCourt(id uuid.UUID, name, displayName string) (*Court, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = strings.TrimSpace(name)
	}

	return &Court{
		id:          id,
		name:        strings.TrimSpace(name),
		displayName: displayName,
		isActive:    true,
	}, nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCourtName
	}
	if len(name) > MaxCourtNameLength {
		return ErrCourtNameTooLong
	}
	return nil
}

func (c *Court) ID() uuid.UUID        { return c.id }
func (c *Court) Name() string         { return c.name }
func (c *Court) DisplayName() string  { return c.displayName }
func (c *Court) IsActive() bool       { return c.isActive }
func (c *Court) CreatedAt() time.Time { return c.createdAt }
func (c *Court) UpdatedAt() time.Time { return c.updatedAt }
