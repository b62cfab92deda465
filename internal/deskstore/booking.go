// Package deskstore implements the desk and booking state transitions of the
// dashboard. Every function is pure: inputs are never mutated and callers
// replace their current state with the returned values.
package deskstore

import (
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/deskbuddy/internal/apperrors"
	"github.com/Domenick1991/deskbuddy/internal/calendar"
	"github.com/Domenick1991/deskbuddy/internal/domain"
	"github.com/google/uuid"
)

// newBookingID is swapped in tests that need deterministic ids.
var newBookingID = func() string {
	return "booking-" + uuid.NewString()
}

type BookRequest struct {
	DeskID   string
	Date     time.Time
	UserID   string
	UserName string
}

type BookResult struct {
	Bookings []domain.Booking
	Booking  domain.Booking
	// Created is false when an existing booking for the same user and day
	// was moved to the requested desk.
	Created bool
}

// BookDesk records that req.UserID sits at req.DeskID on req.Date. A user
// holds at most one booking per calendar day: booking again for a day that
// already has one moves that booking to the new desk and keeps its id.
//
// The desk status is not consulted; only desk existence is required to
// resolve the desk number.
func BookDesk(desks []domain.Desk, bookings []domain.Booking, req BookRequest) (BookResult, error) {
	if strings.TrimSpace(req.DeskID) == "" {
		return BookResult{}, fmt.Errorf("%w: desk id is required", apperrors.ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return BookResult{}, fmt.Errorf("%w: date is required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(req.UserID) == "" {
		return BookResult{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}

	desk, ok := FindDesk(desks, req.DeskID)
	if !ok {
		return BookResult{}, fmt.Errorf("desk %s: %w", req.DeskID, apperrors.ErrNotFound)
	}

	updated := make([]domain.Booking, len(bookings), len(bookings)+1)
	copy(updated, bookings)

	for i, existing := range updated {
		if existing.UserID == req.UserID && calendar.SameDay(existing.Date, req.Date) {
			existing.DeskID = desk.ID
			existing.DeskNumber = desk.Number
			updated[i] = existing
			return BookResult{Bookings: updated, Booking: existing, Created: false}, nil
		}
	}

	booking := domain.Booking{
		ID:         newBookingID(),
		DeskID:     desk.ID,
		DeskNumber: desk.Number,
		Date:       calendar.StartOfDay(req.Date),
		UserID:     req.UserID,
		UserName:   req.UserName,
	}
	updated = append(updated, booking)
	return BookResult{Bookings: updated, Booking: booking, Created: true}, nil
}

// BookingsForDate returns the bookings on the calendar day of date, in their
// original order.
func BookingsForDate(bookings []domain.Booking, date time.Time) []domain.Booking {
	result := make([]domain.Booking, 0)
	for _, b := range bookings {
		if calendar.SameDay(date, b.Date) {
			result = append(result, b)
		}
	}
	return result
}

// DaySummary is one column of the week view.
type DaySummary struct {
	Date     time.Time `json:"date"`
	Bookings int       `json:"bookings"`
}

// WeekSummary counts bookings per day for the Sunday-start week containing ref.
func WeekSummary(bookings []domain.Booking, ref time.Time) []DaySummary {
	days := calendar.WeekDays(ref)
	summary := make([]DaySummary, 0, len(days))
	for _, day := range days {
		summary = append(summary, DaySummary{Date: day, Bookings: len(BookingsForDate(bookings, day))})
	}
	return summary
}

// BookedDays lists the distinct days in [from, to] that carry at least one
// booking, in chronological order.
func BookedDays(bookings []domain.Booking, from, to time.Time) []time.Time {
	start := calendar.StartOfDay(from)
	days := make([]time.Time, 0)
	for day := start; !day.After(to); day = day.AddDate(0, 0, 1) {
		if len(BookingsForDate(bookings, day)) > 0 {
			days = append(days, day)
		}
	}
	return days
}
