// Package tui renders the office floor plan in the terminal. The mouse pans
// and zooms through the same viewport state machine the HTTP floor plan
// uses: left-drag pans, the wheel zooms, a click without movement selects
// the desk under the pointer.
package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/Domenick1991/deskbuddy/internal/deskstore"
	"github.com/Domenick1991/deskbuddy/internal/domain"
	"github.com/Domenick1991/deskbuddy/internal/notify"
	"github.com/Domenick1991/deskbuddy/internal/service/floorplan"
	"github.com/Domenick1991/deskbuddy/internal/viewport"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen units covered by one terminal cell. Cells are about twice as tall
// as they are wide.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// PanStep is the screen distance moved by one arrow key press.
const PanStep = 4 * CellWidth

// headerRows is the number of lines above the map.
const headerRows = 1

type Model struct {
	desks  []domain.Desk
	filter deskstore.Filter
	state  viewport.State

	keys  KeyMap
	theme Theme

	width  int
	height int

	// set on press, cleared by motion; a release with it still set is a click
	pressed   bool
	pressedAt viewport.Point

	notice *notify.Notice
}

func NewModel(desks []domain.Desk, filter deskstore.Filter) Model {
	return Model{
		desks:  filter.Apply(desks),
		filter: filter,
		state:  viewport.NewState(),
		keys:   DefaultKeyMap,
		theme:  DefaultTheme,
		width:  80,
		height: 24,
	}
}

func (model Model) Init() tea.Cmd {
	return nil
}

func (model Model) State() viewport.State {
	return model.state
}

func (model Model) Notice() *notify.Notice {
	return model.notice
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit
		case key.Matches(message, model.keys.ZoomIn):
			model.state = model.state.ZoomIn()
		case key.Matches(message, model.keys.ZoomOut):
			model.state = model.state.ZoomOut()
		case key.Matches(message, model.keys.Reset):
			model.state = model.state.Reset()
		case key.Matches(message, model.keys.PanLeft):
			model.pan(viewport.Point{X: -PanStep})
		case key.Matches(message, model.keys.PanRight):
			model.pan(viewport.Point{X: PanStep})
		case key.Matches(message, model.keys.PanUp):
			model.pan(viewport.Point{Y: -PanStep})
		case key.Matches(message, model.keys.PanDown):
			model.pan(viewport.Point{Y: PanStep})
		}

	case tea.MouseMsg:
		model.handleMouse(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
	}
	return model, nil
}

// pan nudges the view. During a drag the anchor moves with it so the next
// motion event keeps the nudge.
func (model *Model) pan(delta viewport.Point) {
	model.state.Transform.Pan = model.state.Transform.Pan.Add(delta)
	if model.state.Dragging {
		model.state.Anchor = model.state.Anchor.Sub(delta)
	}
}

func (model *Model) handleMouse(message tea.MouseMsg) {
	pointer := cellToScreen(message.X, message.Y)

	switch message.Button {
	case tea.MouseButtonWheelUp:
		if message.Action == tea.MouseActionPress {
			model.state = model.state.ZoomIn()
		}
		return
	case tea.MouseButtonWheelDown:
		if message.Action == tea.MouseActionPress {
			model.state = model.state.ZoomOut()
		}
		return
	}

	switch message.Action {
	case tea.MouseActionPress:
		if message.Button != tea.MouseButtonLeft {
			return
		}
		model.state = model.state.BeginDrag(pointer)
		model.pressed = true
		model.pressedAt = pointer
	case tea.MouseActionMotion:
		if pointer != model.pressedAt {
			model.pressed = false
		}
		model.state = model.state.ContinueDrag(pointer)
	case tea.MouseActionRelease:
		if model.pressed && model.state.Dragging {
			model.selectAt(pointer)
		}
		model.pressed = false
		model.state = model.state.EndDrag()
	}
}

func (model *Model) selectAt(pointer viewport.Point) {
	for _, marker := range model.layout().Desks {
		if pointer.X >= marker.Screen.X && pointer.X < marker.Screen.X+marker.Width &&
			pointer.Y >= marker.Screen.Y && pointer.Y < marker.Screen.Y+marker.Height {
			notice := notify.ForDeskSelection(marker.Desk)
			model.notice = &notice
			return
		}
	}
	model.notice = nil
}

func (model Model) layout() *floorplan.Layout {
	return floorplan.BuildLayout("", model.state, model.desks)
}

// cellToScreen returns the screen point at the center of a terminal cell.
func cellToScreen(column, row int) viewport.Point {
	return viewport.Point{
		X: (float64(column) + 0.5) * CellWidth,
		Y: (float64(row-headerRows) + 0.5) * CellHeight,
	}
}

type cell struct {
	char   rune
	status domain.DeskStatus
}

func (model Model) View() string {
	layout := model.layout()
	mapRows := model.height - headerRows - 2
	if mapRows < 1 || model.width < 1 {
		return ""
	}

	canvas := make([][]cell, mapRows)
	for row := range canvas {
		canvas[row] = make([]cell, model.width)
		for column := range canvas[row] {
			canvas[row][column] = cell{char: ' '}
		}
	}
	for _, marker := range layout.Desks {
		model.paintDesk(canvas, marker)
	}

	var builder strings.Builder
	builder.WriteString(model.header(layout))
	builder.WriteByte('\n')
	for _, row := range canvas {
		builder.WriteString(model.renderRow(row))
		builder.WriteByte('\n')
	}
	builder.WriteString(model.noticeLine())
	builder.WriteByte('\n')
	builder.WriteString(model.footer())
	return builder.String()
}

func (model Model) paintDesk(canvas [][]cell, marker floorplan.DeskMarker) {
	left := int(math.Floor(marker.Screen.X / CellWidth))
	top := int(math.Floor(marker.Screen.Y / CellHeight))
	columns := max(1, int(marker.Width/CellWidth))
	rows := max(1, int(marker.Height/CellHeight))

	label := []rune(marker.Desk.Number)
	labelRow := top + rows/2
	labelStart := left + (columns-len(label))/2

	for row := top; row < top+rows; row++ {
		if row < 0 || row >= len(canvas) {
			continue
		}
		for column := left; column < left+columns; column++ {
			if column < 0 || column >= len(canvas[row]) {
				continue
			}
			char := ' '
			if row == labelRow && column >= labelStart && column-labelStart < len(label) {
				char = label[column-labelStart]
			}
			canvas[row][column] = cell{char: char, status: marker.Desk.Status}
		}
	}
}

// renderRow styles runs of cells that share a desk status.
func (model Model) renderRow(row []cell) string {
	var builder strings.Builder
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].status == row[start].status {
			continue
		}
		run := make([]rune, 0, i-start)
		for _, c := range row[start:i] {
			run = append(run, c.char)
		}
		if row[start].status == "" {
			builder.WriteString(string(run))
		} else {
			builder.WriteString(model.theme.deskStyle(row[start].status).Render(string(run)))
		}
		start = i
	}
	return builder.String()
}

func (model Model) header(layout *floorplan.Layout) string {
	area, team := model.filter.Area, model.filter.Team
	if area == "" {
		area = deskstore.AllOption
	}
	if team == "" {
		team = deskstore.AllOption
	}
	stats := layout.Stats
	text := fmt.Sprintf("Floor plan  area: %s  team: %s  zoom: %d%%  visible: %d  available: %d  occupied: %d",
		area, team, int(layout.Transform.Scale*100+0.5), stats.Total, stats.Available, stats.Occupied)
	return lipgloss.NewStyle().Foreground(model.theme.HeaderForeground).Bold(true).Render(text)
}

func (model Model) noticeLine() string {
	if model.notice == nil {
		return ""
	}
	text := model.notice.Title
	if model.notice.Description != "" {
		text += "  " + model.notice.Description
	}
	return lipgloss.NewStyle().Foreground(model.theme.NoticeForeground).Render(text)
}

func (model Model) footer() string {
	parts := make([]string, 0, 6)
	for _, binding := range model.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	parts = append(parts, "drag pan", "wheel zoom", "click select")
	return lipgloss.NewStyle().Foreground(model.theme.HelpText).Render(strings.Join(parts, " · "))
}
