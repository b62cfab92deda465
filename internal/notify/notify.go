// Package notify turns dashboard events into the short messages shown to
// users, and delivers booking notifications from the worker.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/deskbuddy/internal/calendar"
	"github.com/Domenick1991/deskbuddy/internal/domain"
	"github.com/Domenick1991/deskbuddy/internal/kafka"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
)

type Notice struct {
	Level       Level  `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ForEvent describes a booking event. Unknown event types produce an info
// notice with the raw type.
func ForEvent(event kafka.BookingEvent) Notice {
	switch event.Type {
	case kafka.EventBookingCreated:
		return Notice{
			Level: LevelSuccess,
			Title: fmt.Sprintf("Desk %s booked for %s", event.DeskNumber, calendar.FormatLong(event.Date)),
		}
	case kafka.EventBookingUpdated:
		return Notice{
			Level: LevelSuccess,
			Title: fmt.Sprintf("Booking updated to Desk %s for %s", event.DeskNumber, calendar.FormatLong(event.Date)),
		}
	case kafka.EventDeskReserved:
		return Notice{
			Level:       LevelSuccess,
			Title:       fmt.Sprintf("Desk %s booked!", event.DeskNumber),
			Description: "You can now use this desk today.",
		}
	}
	return Notice{Level: LevelInfo, Title: fmt.Sprintf("Desk %s: %s", event.DeskNumber, event.Type)}
}

// ForDeskSelection describes a desk clicked on the floor plan.
func ForDeskSelection(desk domain.Desk) Notice {
	if desk.Status == domain.DeskStatusAvailable {
		return Notice{
			Level:       LevelSuccess,
			Title:       fmt.Sprintf("Desk %s selected!", desk.Number),
			Description: fmt.Sprintf("Located in %s area", desk.AreaName()),
		}
	}
	notice := Notice{Level: LevelInfo, Title: fmt.Sprintf("Desk %s is %s", desk.Number, desk.Status)}
	if occupant := desk.OccupantName(); occupant != "" {
		notice.Description = fmt.Sprintf("In use by %s", occupant)
	}
	return notice
}

// Sender delivers notices for consumed events. Delivery is a structured log
// line keyed by user.
type Sender struct {
	logger *slog.Logger
}

func NewSender(logger *slog.Logger) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	notice := ForEvent(event)
	s.logger.InfoContext(ctx, "notify user",
		slog.String("user_id", event.UserID),
		slog.String("event", event.Type),
		slog.String("level", string(notice.Level)),
		slog.String("title", notice.Title),
		slog.String("description", notice.Description),
	)
	return nil
}
