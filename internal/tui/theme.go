package tui

import (
	"github.com/Domenick1991/deskbuddy/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the ANSI 256 colors of the viewer.
type Theme struct {
	Available lipgloss.Color
	Occupied  lipgloss.Color
	Reserved  lipgloss.Color
	DeskText  lipgloss.Color

	HeaderForeground lipgloss.Color
	HelpText         lipgloss.Color
	NoticeForeground lipgloss.Color
}

var DefaultTheme = Theme{
	Available:        lipgloss.Color("34"),
	Occupied:         lipgloss.Color("160"),
	Reserved:         lipgloss.Color("178"),
	DeskText:         lipgloss.Color("231"),
	HeaderForeground: lipgloss.Color("75"),
	HelpText:         lipgloss.Color("243"),
	NoticeForeground: lipgloss.Color("220"),
}

func (theme Theme) StatusColor(status domain.DeskStatus) lipgloss.Color {
	switch status {
	case domain.DeskStatusOccupied:
		return theme.Occupied
	case domain.DeskStatusReserved:
		return theme.Reserved
	default:
		return theme.Available
	}
}

func (theme Theme) deskStyle(status domain.DeskStatus) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.StatusColor(status)).
		Foreground(theme.DeskText).
		Bold(true)
}
