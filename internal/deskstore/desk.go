package deskstore

import (
	"fmt"
	"math"
	"strings"

	"github.com/Domenick1991/deskbuddy/internal/apperrors"
	"github.com/Domenick1991/deskbuddy/internal/domain"
)

// AllOption is the filter value that matches every area or team.
const AllOption = "All"

// FindDesk looks a desk up by id.
func FindDesk(desks []domain.Desk, id string) (domain.Desk, bool) {
	for _, d := range desks {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Desk{}, false
}

// MarkDeskStatus replaces the status and occupant of the desk with the given
// id. An available desk never keeps an occupant, whatever was passed. An
// unknown id leaves the desks unchanged.
func MarkDeskStatus(desks []domain.Desk, deskID string, status domain.DeskStatus, occupant string) ([]domain.Desk, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown desk status %q", apperrors.ErrInvalidInput, status)
	}
	var occupantRef *string
	if status != domain.DeskStatusAvailable {
		occupantRef = domain.StringPtr(occupant)
		if occupantRef == nil {
			return nil, fmt.Errorf("%w: %s desk needs an occupant", apperrors.ErrInvalidInput, status)
		}
	}

	updated := make([]domain.Desk, len(desks))
	copy(updated, desks)
	for i, d := range updated {
		if d.ID != deskID {
			continue
		}
		d = d.Clone()
		d.Status = status
		d.Occupant = occupantRef
		updated[i] = d
		return updated, nil
	}
	return desks, nil
}

// AvailableDesks returns the desks that can be offered for booking.
func AvailableDesks(desks []domain.Desk) []domain.Desk {
	result := make([]domain.Desk, 0, len(desks))
	for _, d := range desks {
		if d.Status == domain.DeskStatusAvailable {
			result = append(result, d)
		}
	}
	return result
}

// Filter narrows desks by area and team. Empty values and AllOption match
// everything.
type Filter struct {
	Area string `form:"area" json:"area"`
	Team string `form:"team" json:"team"`
}

func (f Filter) Apply(desks []domain.Desk) []domain.Desk {
	result := make([]domain.Desk, 0, len(desks))
	for _, d := range desks {
		if matches(f.Area, d.AreaName()) && matches(f.Team, d.TeamName()) {
			result = append(result, d)
		}
	}
	return result
}

func matches(want, got string) bool {
	want = strings.TrimSpace(want)
	return want == "" || want == AllOption || want == got
}

// Stats are the counters shown above the desk grid.
type Stats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
	Reserved  int `json:"reserved"`
}

func Summarize(desks []domain.Desk) Stats {
	stats := Stats{Total: len(desks)}
	for _, d := range desks {
		switch d.Status {
		case domain.DeskStatusAvailable:
			stats.Available++
		case domain.DeskStatusOccupied:
			stats.Occupied++
		case domain.DeskStatusReserved:
			stats.Reserved++
		}
	}
	return stats
}

// Percent returns count as a rounded percentage of the total, or 0 when
// there are no desks.
func (s Stats) Percent(count int) int {
	if s.Total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(s.Total) * 100))
}

// Areas lists the distinct areas in first-seen order, prefixed by AllOption.
func Areas(desks []domain.Desk) []string {
	return distinct(desks, domain.Desk.AreaName)
}

// Teams lists the distinct teams in first-seen order, prefixed by AllOption.
func Teams(desks []domain.Desk) []string {
	return distinct(desks, domain.Desk.TeamName)
}

func distinct(desks []domain.Desk, field func(domain.Desk) string) []string {
	seen := make(map[string]struct{}, len(desks))
	options := []string{AllOption}
	for _, d := range desks {
		value := field(d)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		options = append(options, value)
	}
	return options
}
