package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/TomJGooding/jagt/internal/config"
)

// Styles holds all the lipgloss styles, derived from the active theme.
type Styles struct {
	title         lipgloss.Style
	hash          lipgloss.Style
	author        lipgloss.Style
	date          lipgloss.Style
	subject       lipgloss.Style
	added         lipgloss.Style
	removed       lipgloss.Style
	hunk          lipgloss.Style
	help          lipgloss.Style
	divider       lipgloss.Style
	cursor        lipgloss.Style
	pane          lipgloss.Style
	paneFocused   lipgloss.Style
	statusMessage lipgloss.Style
}

func newStyles(theme config.Theme) Styles {
	return Styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.TitleFg),
		hash: lipgloss.NewStyle().
			Foreground(theme.HashFg),
		author: lipgloss.NewStyle().
			Foreground(theme.AuthorFg),
		date: lipgloss.NewStyle().
			Foreground(theme.DateFg),
		subject: lipgloss.NewStyle().
			Foreground(theme.SubjectFg),
		added: lipgloss.NewStyle().
			Foreground(theme.AddedFg),
		removed: lipgloss.NewStyle().
			Foreground(theme.RemovedFg),
		hunk: lipgloss.NewStyle().
			Foreground(theme.HunkFg),
		help: lipgloss.NewStyle().
			Foreground(theme.HelpFg),
		divider: lipgloss.NewStyle().
			Foreground(theme.BorderFg),
		cursor: lipgloss.NewStyle().
			Foreground(theme.CursorFg).
			Background(theme.CursorBg).
			Bold(true),
		pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.BorderFg),
		paneFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.TitleFg),
		statusMessage: lipgloss.NewStyle().
			Foreground(theme.AddedFg),
	}
}
