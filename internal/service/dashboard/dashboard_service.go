package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Domenick1991/deskbuddy/internal/apperrors"
	"github.com/Domenick1991/deskbuddy/internal/calendar"
	"github.com/Domenick1991/deskbuddy/internal/deskstore"
	"github.com/Domenick1991/deskbuddy/internal/domain"
	"github.com/Domenick1991/deskbuddy/internal/kafka"
)

type DashboardUseCase interface {
	ListDesks(ctx context.Context, filter deskstore.Filter) ([]domain.Desk, error)
	AvailableDesks(ctx context.Context) ([]domain.Desk, error)
	Stats(ctx context.Context) (deskstore.Stats, error)
	FilterOptions(ctx context.Context) (FilterOptions, error)
	ReserveDesk(ctx context.Context, deskID string, user domain.User) (*domain.Desk, error)
	BookDesk(ctx context.Context, input BookDeskInput) (*BookDeskResult, error)
	BookingsForDate(ctx context.Context, date time.Time) ([]domain.Booking, error)
	Week(ctx context.Context, ref time.Time) ([]deskstore.DaySummary, error)
	BookedDays(ctx context.Context, month time.Time) ([]time.Time, error)
}

// DeskSource provides the office layout the dashboard starts from.
type DeskSource interface {
	List(ctx context.Context) ([]domain.Desk, error)
}

type Cache interface {
	GetDesks(ctx context.Context) ([]domain.Desk, error)
	SetDesks(ctx context.Context, desks []domain.Desk) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookDeskInput struct {
	DeskID string
	Date   time.Time
	User   domain.User
}

type BookDeskResult struct {
	Booking domain.Booking
	Created bool
}

type FilterOptions struct {
	Areas []string `json:"areas"`
	Teams []string `json:"teams"`
}

// DashboardService owns the session state of the dashboard: the desk grid
// and the calendar bookings. The two are independent; calendar bookings
// never change desk status.
type DashboardService struct {
	source             DeskSource
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	logger             *slog.Logger
	now                func() time.Time
	location           *time.Location

	mu       sync.Mutex
	loaded   bool
	desks    []domain.Desk
	bookings []domain.Booking
}

type DashboardServiceOption func(*DashboardService)

func WithCache(cache Cache) DashboardServiceOption {
	return func(s *DashboardService) {
		s.cache = cache
	}
}

func WithProducer(producer Producer, bookingTopic string) DashboardServiceOption {
	return func(s *DashboardService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) DashboardServiceOption {
	return func(s *DashboardService) {
		s.notificationsTopic = topic
	}
}

func WithLogger(logger *slog.Logger) DashboardServiceOption {
	return func(s *DashboardService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithClock(now func() time.Time) DashboardServiceOption {
	return func(s *DashboardService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the zone calendar days are counted in. It should match
// the zone booking dates are parsed in.
func WithLocation(loc *time.Location) DashboardServiceOption {
	return func(s *DashboardService) {
		if loc != nil {
			s.location = loc
		}
	}
}

func NewDashboardService(source DeskSource, opts ...DashboardServiceOption) *DashboardService {
	service := &DashboardService{
		source:   source,
		logger:   slog.Default(),
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// today is the current instant in the booking zone.
func (s *DashboardService) today() time.Time {
	return s.now().In(s.location)
}

func (s *DashboardService) ListDesks(ctx context.Context, filter deskstore.Filter) ([]domain.Desk, error) {
	desks, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(desks), nil
}

func (s *DashboardService) AvailableDesks(ctx context.Context) ([]domain.Desk, error) {
	desks, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return deskstore.AvailableDesks(desks), nil
}

func (s *DashboardService) Stats(ctx context.Context) (deskstore.Stats, error) {
	desks, err := s.snapshot(ctx)
	if err != nil {
		return deskstore.Stats{}, err
	}
	return deskstore.Summarize(desks), nil
}

func (s *DashboardService) FilterOptions(ctx context.Context) (FilterOptions, error) {
	desks, err := s.snapshot(ctx)
	if err != nil {
		return FilterOptions{}, err
	}
	return FilterOptions{Areas: deskstore.Areas(desks), Teams: deskstore.Teams(desks)}, nil
}

// ReserveDesk is the grid click: an available desk becomes reserved for
// user today.
func (s *DashboardService) ReserveDesk(ctx context.Context, deskID string, user domain.User) (*domain.Desk, error) {
	logger := s.operationLogger("reserve_desk", slog.String("desk_id", deskID), slog.String("user_id", user.ID))

	s.mu.Lock()
	if err := s.loadLocked(ctx); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	desk, ok := deskstore.FindDesk(s.desks, deskID)
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("desk %s: %w", deskID, apperrors.ErrNotFound)
	}
	if desk.Status != domain.DeskStatusAvailable {
		s.mu.Unlock()
		return nil, fmt.Errorf("desk %s is %s: %w", desk.Number, desk.Status, apperrors.ErrDeskUnavailable)
	}
	updated, err := deskstore.MarkDeskStatus(s.desks, deskID, domain.DeskStatusReserved, user.Name)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.desks = updated
	desk, _ = deskstore.FindDesk(updated, deskID)
	s.mu.Unlock()

	logger.Info("desk reserved", slog.String("desk_number", desk.Number))
	s.publish(ctx, logger, kafka.BookingEvent{
		Type:       kafka.EventDeskReserved,
		DeskID:     desk.ID,
		DeskNumber: desk.Number,
		Area:       desk.AreaName(),
		Date:       calendar.StartOfDay(s.today()),
		UserID:     user.ID,
		UserName:   user.Name,
	})
	return &desk, nil
}

// BookDesk is the calendar booking: one booking per user per day, moved to
// the new desk when the user books again for the same day.
func (s *DashboardService) BookDesk(ctx context.Context, input BookDeskInput) (*BookDeskResult, error) {
	logger := s.operationLogger("book_desk", slog.String("desk_id", input.DeskID), slog.String("user_id", input.User.ID))

	s.mu.Lock()
	if err := s.loadLocked(ctx); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	result, err := deskstore.BookDesk(s.desks, s.bookings, deskstore.BookRequest{
		DeskID:   input.DeskID,
		Date:     input.Date,
		UserID:   input.User.ID,
		UserName: input.User.Name,
	})
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.bookings = result.Bookings
	desk, _ := deskstore.FindDesk(s.desks, result.Booking.DeskID)
	s.mu.Unlock()

	eventType := kafka.EventBookingUpdated
	if result.Created {
		eventType = kafka.EventBookingCreated
	}
	logger.Info("desk booked",
		slog.String("booking_id", result.Booking.ID),
		slog.Bool("created", result.Created),
		slog.String("date", result.Booking.Date.Format(calendar.DateLayout)),
	)
	s.publish(ctx, logger, kafka.BookingEvent{
		Type:       eventType,
		BookingID:  result.Booking.ID,
		DeskID:     result.Booking.DeskID,
		DeskNumber: result.Booking.DeskNumber,
		Area:       desk.AreaName(),
		Date:       result.Booking.Date,
		UserID:     result.Booking.UserID,
		UserName:   result.Booking.UserName,
	})
	return &BookDeskResult{Booking: result.Booking, Created: result.Created}, nil
}

func (s *DashboardService) BookingsForDate(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", apperrors.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return deskstore.BookingsForDate(s.bookings, date), nil
}

func (s *DashboardService) Week(ctx context.Context, ref time.Time) ([]deskstore.DaySummary, error) {
	if ref.IsZero() {
		ref = s.today()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return deskstore.WeekSummary(s.bookings, ref), nil
}

// BookedDays lists the days of the month containing month that have at
// least one booking.
func (s *DashboardService) BookedDays(ctx context.Context, month time.Time) ([]time.Time, error) {
	if month.IsZero() {
		month = s.today()
	}
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	last := first.AddDate(0, 1, -1)

	s.mu.Lock()
	defer s.mu.Unlock()
	return deskstore.BookedDays(s.bookings, first, last), nil
}

func (s *DashboardService) snapshot(ctx context.Context) ([]domain.Desk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	return s.desks, nil
}

// loadLocked seeds the desks once, going through the cache when one is
// configured.
func (s *DashboardService) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	if s.source == nil {
		return errors.New("dashboard: no desk source configured")
	}

	var desks []domain.Desk
	if s.cache != nil {
		cached, err := s.cache.GetDesks(ctx)
		if err != nil {
			s.logger.Warn("desk cache read failed", slog.String("error", err.Error()))
		}
		desks = cached
	}
	if desks == nil {
		listed, err := s.source.List(ctx)
		if err != nil {
			return fmt.Errorf("load desks: %w", err)
		}
		desks = listed
		if s.cache != nil {
			if err := s.cache.SetDesks(ctx, desks); err != nil {
				s.logger.Warn("desk cache write failed", slog.String("error", err.Error()))
			}
		}
	}

	for _, d := range desks {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("load desks: %w", err)
		}
	}
	s.desks = desks
	s.loaded = true
	s.logger.Info("desks loaded", slog.Int("count", len(desks)))
	return nil
}

func (s *DashboardService) operationLogger(operation string, attrs ...any) *slog.Logger {
	pairs := append([]any{slog.String("service", "dashboard"), slog.String("operation", operation)}, attrs...)
	return s.logger.With(pairs...)
}

// publish never fails the calling operation; delivery problems are logged.
func (s *DashboardService) publish(ctx context.Context, logger *slog.Logger, event kafka.BookingEvent) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event.OccurredAt = s.now().UTC()
	key := event.BookingID
	if key == "" {
		key = event.DeskID
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, key, event); err != nil {
		logger.Warn("failed to publish event", slog.String("event", event.Type), slog.String("error", err.Error()))
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			logger.Warn("failed to publish notification", slog.String("event", event.Type), slog.String("error", err.Error()))
		}
	}
}

var _ DashboardUseCase = (*DashboardService)(nil)
