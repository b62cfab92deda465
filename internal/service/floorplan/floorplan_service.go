// Package floorplan keeps the pan and zoom state of floor-plan sessions and
// lays the desks out in screen space.
package floorplan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Domenick1991/deskbuddy/internal/apperrors"
	"github.com/Domenick1991/deskbuddy/internal/deskstore"
	"github.com/Domenick1991/deskbuddy/internal/domain"
	"github.com/Domenick1991/deskbuddy/internal/notify"
	"github.com/Domenick1991/deskbuddy/internal/viewport"
	"github.com/google/uuid"
)

// Desk footprint in map units.
const (
	DeskWidth  = 100.0
	DeskHeight = 60.0
)

const maxSessionLength = 64

type Action string

const (
	ActionZoomIn    Action = "zoom-in"
	ActionZoomOut   Action = "zoom-out"
	ActionReset     Action = "reset"
	ActionDragBegin Action = "drag-begin"
	ActionDragMove  Action = "drag-move"
	ActionDragEnd   Action = "drag-end"
)

type FloorPlanUseCase interface {
	NewSession(ctx context.Context) (string, viewport.State, error)
	Layout(ctx context.Context, session string, filter deskstore.Filter) (*Layout, error)
	Apply(ctx context.Context, session string, action Action, pointer viewport.Point) (viewport.State, error)
	SelectDesk(ctx context.Context, deskID string) (notify.Notice, error)
}

type ViewportStore interface {
	LoadViewport(ctx context.Context, session string) (viewport.State, bool, error)
	SaveViewport(ctx context.Context, session string, state viewport.State) error
}

type DeskLister interface {
	ListDesks(ctx context.Context, filter deskstore.Filter) ([]domain.Desk, error)
}

// DeskMarker is a desk placed on screen. Desks without a position are left
// out of the layout.
type DeskMarker struct {
	Desk   domain.Desk    `json:"desk"`
	Map    viewport.Point `json:"map"`
	Screen viewport.Point `json:"screen"`
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
}

type Layout struct {
	Session      string             `json:"session"`
	Transform    viewport.Transform `json:"transform"`
	SVGTransform string             `json:"svg_transform"`
	Dragging     bool               `json:"dragging"`
	Desks        []DeskMarker       `json:"desks"`
	Stats        deskstore.Stats    `json:"stats"`
}

type FloorPlanService struct {
	desks  DeskLister
	store  ViewportStore
	logger *slog.Logger

	// serializes load-modify-save of a session
	mu sync.Mutex
}

func NewFloorPlanService(desks DeskLister, store ViewportStore, logger *slog.Logger) *FloorPlanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FloorPlanService{desks: desks, store: store, logger: logger}
}

func (s *FloorPlanService) NewSession(ctx context.Context) (string, viewport.State, error) {
	session := uuid.NewString()
	state := viewport.NewState()
	if err := s.store.SaveViewport(ctx, session, state); err != nil {
		return "", viewport.State{}, fmt.Errorf("save viewport: %w", err)
	}
	s.logger.Info("floor plan session started", slog.String("session", session))
	return session, state, nil
}

func (s *FloorPlanService) Layout(ctx context.Context, session string, filter deskstore.Filter) (*Layout, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}
	state, err := s.load(ctx, session)
	if err != nil {
		return nil, err
	}
	desks, err := s.desks.ListDesks(ctx, filter)
	if err != nil {
		return nil, err
	}
	return BuildLayout(session, state, desks), nil
}

// BuildLayout projects desks through the session transform.
func BuildLayout(session string, state viewport.State, desks []domain.Desk) *Layout {
	t := state.Transform
	layout := &Layout{
		Session:      session,
		Transform:    t,
		SVGTransform: t.SVG(),
		Dragging:     state.Dragging,
		Desks:        make([]DeskMarker, 0, len(desks)),
		Stats:        deskstore.Summarize(desks),
	}
	for _, d := range desks {
		if d.Position == nil {
			continue
		}
		at := viewport.Point{X: d.Position.X, Y: d.Position.Y}
		layout.Desks = append(layout.Desks, DeskMarker{
			Desk:   d,
			Map:    at,
			Screen: t.Apply(at),
			Width:  DeskWidth * t.Scale,
			Height: DeskHeight * t.Scale,
		})
	}
	return layout
}

// Apply runs one viewport action against the stored session state.
// Unknown sessions start from the identity view.
func (s *FloorPlanService) Apply(ctx context.Context, session string, action Action, pointer viewport.Point) (viewport.State, error) {
	if err := validateSession(session); err != nil {
		return viewport.State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, session)
	if err != nil {
		return viewport.State{}, err
	}

	switch action {
	case ActionZoomIn:
		state = state.ZoomIn()
	case ActionZoomOut:
		state = state.ZoomOut()
	case ActionReset:
		state = state.Reset()
	case ActionDragBegin:
		state = state.BeginDrag(pointer)
	case ActionDragMove:
		state = state.ContinueDrag(pointer)
	case ActionDragEnd:
		state = state.EndDrag()
	default:
		return viewport.State{}, fmt.Errorf("%w: unknown action %q", apperrors.ErrInvalidInput, action)
	}

	if err := s.store.SaveViewport(ctx, session, state); err != nil {
		return viewport.State{}, fmt.Errorf("save viewport: %w", err)
	}
	s.logger.Debug("viewport updated",
		slog.String("session", session),
		slog.String("action", string(action)),
		slog.Float64("scale", state.Transform.Scale),
	)
	return state, nil
}

func (s *FloorPlanService) SelectDesk(ctx context.Context, deskID string) (notify.Notice, error) {
	desks, err := s.desks.ListDesks(ctx, deskstore.Filter{})
	if err != nil {
		return notify.Notice{}, err
	}
	desk, ok := deskstore.FindDesk(desks, deskID)
	if !ok {
		return notify.Notice{}, fmt.Errorf("desk %s: %w", deskID, apperrors.ErrNotFound)
	}
	return notify.ForDeskSelection(desk), nil
}

func (s *FloorPlanService) load(ctx context.Context, session string) (viewport.State, error) {
	state, ok, err := s.store.LoadViewport(ctx, session)
	if err != nil {
		return viewport.State{}, fmt.Errorf("load viewport: %w", err)
	}
	if !ok {
		return viewport.NewState(), nil
	}
	return state.Normalize(), nil
}

func validateSession(session string) error {
	session = strings.TrimSpace(session)
	if session == "" || len(session) > maxSessionLength {
		return fmt.Errorf("%w: invalid session id", apperrors.ErrInvalidInput)
	}
	return nil
}

var _ FloorPlanUseCase = (*FloorPlanService)(nil)
