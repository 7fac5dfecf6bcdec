package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorGreen     = lipgloss.Color("#5FD787")
	colorRed       = lipgloss.Color("#FF5F5F")
	colorBlue      = lipgloss.Color("#5FAFFF")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	labelFocusedStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	selectorValueStyle = lipgloss.NewStyle().
				Foreground(colorWhite)

	focusedBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorBlue).
				Padding(0, 1)

	blurredBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorDarkGray).
				Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Italic(true)

	readyStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)
)
