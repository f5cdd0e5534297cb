package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ddrozdov/tui-climber/internal/core"
)

// Theme maps abstract core colors to concrete lipgloss styles.
// The day/night toggle swaps the whole palette without touching game state;
// the game keeps drawing the same core.Color values.
type Theme struct {
	Name   string
	styles map[core.Color]lipgloss.Style
}

// style returns the lipgloss style for an abstract color.
func (t Theme) style(c core.Color) lipgloss.Style {
	if s, ok := t.styles[c]; ok {
		return s
	}
	return t.styles[core.ColorDefault]
}

// NightTheme is the default palette: bright colors for dark terminals.
func NightTheme() Theme {
	return Theme{
		Name: "night",
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

// DayTheme uses the darker ANSI range so the wall stays readable on light
// backgrounds.
func DayTheme() Theme {
	return Theme{
		Name: "day",
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
			core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
			core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
			core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("166")),
			core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}

// NextTheme cycles day -> night -> day.
func NextTheme(t Theme) Theme {
	if t.Name == "night" {
		return DayTheme()
	}
	return NightTheme()
}
