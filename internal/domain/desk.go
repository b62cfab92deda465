package domain

import (
	"fmt"
	"strings"

	"github.com/Domenick1991/deskbuddy/internal/apperrors"
)

type DeskStatus string

const (
	DeskStatusAvailable DeskStatus = "available"
	DeskStatusOccupied  DeskStatus = "occupied"
	DeskStatusReserved  DeskStatus = "reserved"
)

// Valid reports whether s is one of the known desk statuses.
func (s DeskStatus) Valid() bool {
	switch s {
	case DeskStatusAvailable, DeskStatusOccupied, DeskStatusReserved:
		return true
	}
	return false
}

// Point is a coordinate in floor-plan map space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Desk is a bookable workplace. Occupant is set if and only if the desk is
// not available.
type Desk struct {
	ID       string     `json:"id"`
	Number   string     `json:"number"`
	Status   DeskStatus `json:"status"`
	Occupant *string    `json:"occupant,omitempty"`
	Area     *string    `json:"area,omitempty"`
	Team     *string    `json:"team,omitempty"`
	Position *Point     `json:"position,omitempty"`
}

// OccupantName returns the occupant or an empty string.
func (d Desk) OccupantName() string {
	if d.Occupant == nil {
		return ""
	}
	return *d.Occupant
}

// AreaName returns the area tag or an empty string.
func (d Desk) AreaName() string {
	if d.Area == nil {
		return ""
	}
	return *d.Area
}

// TeamName returns the team tag or an empty string.
func (d Desk) TeamName() string {
	if d.Team == nil {
		return ""
	}
	return *d.Team
}

// Validate checks the status enum and the occupant invariant.
func (d Desk) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: desk id is required", apperrors.ErrInvalidInput)
	}
	if !d.Status.Valid() {
		return fmt.Errorf("%w: desk %s has unknown status %q", apperrors.ErrInvalidInput, d.ID, d.Status)
	}
	hasOccupant := strings.TrimSpace(d.OccupantName()) != ""
	if d.Status == DeskStatusAvailable && hasOccupant {
		return fmt.Errorf("%w: available desk %s has an occupant", apperrors.ErrInvalidInput, d.ID)
	}
	if d.Status != DeskStatusAvailable && !hasOccupant {
		return fmt.Errorf("%w: %s desk %s has no occupant", apperrors.ErrInvalidInput, d.Status, d.ID)
	}
	return nil
}

// Clone returns a deep copy so that callers never share optional fields.
func (d Desk) Clone() Desk {
	clone := d
	clone.Occupant = cloneString(d.Occupant)
	clone.Area = cloneString(d.Area)
	clone.Team = cloneString(d.Team)
	if d.Position != nil {
		position := *d.Position
		clone.Position = &position
	}
	return clone
}

// StringPtr returns a pointer to value, or nil for a blank string.
func StringPtr(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}
