// Package seed provides the built-in office layout used when no database
// seed source is configured.
package seed

import (
	"context"

	"github.com/Domenick1991/deskbuddy/internal/domain"
)

type deskRow struct {
	id, number string
	status     domain.DeskStatus
	occupant   string
	area, team string
	x, y       float64
}

var office = []deskRow{
	{"1", "A1", domain.DeskStatusAvailable, "", "North", "Engineering", 100, 100},
	{"2", "A2", domain.DeskStatusOccupied, "Sarah Chen", "North", "Engineering", 250, 100},
	{"3", "A3", domain.DeskStatusAvailable, "", "North", "Engineering", 400, 100},
	{"4", "A4", domain.DeskStatusReserved, "Mike Johnson", "North", "Engineering", 550, 100},
	{"5", "B1", domain.DeskStatusAvailable, "", "South", "Design", 100, 250},
	{"6", "B2", domain.DeskStatusAvailable, "", "South", "Design", 250, 250},
	{"7", "B3", domain.DeskStatusOccupied, "Emma Wilson", "South", "Design", 400, 250},
	{"8", "B4", domain.DeskStatusAvailable, "", "South", "Design", 550, 250},
	{"9", "C1", domain.DeskStatusReserved, "Alex Turner", "East", "Marketing", 100, 400},
	{"10", "C2", domain.DeskStatusAvailable, "", "East", "Marketing", 250, 400},
	{"11", "C3", domain.DeskStatusAvailable, "", "East", "Marketing", 400, 400},
	{"12", "C4", domain.DeskStatusOccupied, "Lisa Anderson", "East", "Marketing", 550, 400},
}

// Desks returns a fresh copy of the built-in office layout.
func Desks() []domain.Desk {
	desks := make([]domain.Desk, 0, len(office))
	for _, row := range office {
		desks = append(desks, domain.Desk{
			ID:       row.id,
			Number:   row.number,
			Status:   row.status,
			Occupant: domain.StringPtr(row.occupant),
			Area:     domain.StringPtr(row.area),
			Team:     domain.StringPtr(row.team),
			Position: &domain.Point{X: row.x, Y: row.y},
		})
	}
	return desks
}

// Static serves the built-in layout through the same interface as the
// database seed source.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

func (Static) List(ctx context.Context) ([]domain.Desk, error) {
	return Desks(), nil
}
