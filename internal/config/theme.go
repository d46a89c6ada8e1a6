package config

import "github.com/charmbracelet/lipgloss"

// ThemePreset names a built-in color scheme.
type ThemePreset string

const (
	PresetDefault  ThemePreset = "default"
	PresetDracula  ThemePreset = "dracula"
	PresetSolarize ThemePreset = "solarized"
)

// Theme defines the color scheme for the application.
type Theme struct {
	HashFg    lipgloss.Color
	AuthorFg  lipgloss.Color
	DateFg    lipgloss.Color
	SubjectFg lipgloss.Color
	AddedFg   lipgloss.Color
	RemovedFg lipgloss.Color
	HunkFg    lipgloss.Color
	BorderFg  lipgloss.Color
	TitleFg   lipgloss.Color
	HelpFg    lipgloss.Color
	CursorFg  lipgloss.Color
	CursorBg  lipgloss.Color
}

// DefaultTheme returns the default color theme.
func DefaultTheme() Theme {
	return Theme{
		HashFg:    lipgloss.Color("#E5C07B"),
		AuthorFg:  lipgloss.Color("#56B6C2"),
		DateFg:    lipgloss.Color("#7F848E"),
		SubjectFg: lipgloss.Color("#DCDFE4"),
		AddedFg:   lipgloss.Color("#98C379"),
		RemovedFg: lipgloss.Color("#E06C75"),
		HunkFg:    lipgloss.Color("#61AFEF"),
		BorderFg:  lipgloss.Color("#3A3A3A"),
		TitleFg:   lipgloss.Color("#C678DD"),
		HelpFg:    lipgloss.Color("#888888"),
		CursorFg:  lipgloss.Color("#FFFFFF"),
		CursorBg:  lipgloss.Color("#44475A"),
	}
}

// ThemeForPreset resolves a preset name to a concrete Theme. Unknown
// presets fall back to the default scheme.
func ThemeForPreset(preset ThemePreset) Theme {
	switch preset {
	case PresetDracula:
		return Theme{
			HashFg:    lipgloss.Color("#F1FA8C"),
			AuthorFg:  lipgloss.Color("#8BE9FD"),
			DateFg:    lipgloss.Color("#6272A4"),
			SubjectFg: lipgloss.Color("#F8F8F2"),
			AddedFg:   lipgloss.Color("#50FA7B"),
			RemovedFg: lipgloss.Color("#FF5555"),
			HunkFg:    lipgloss.Color("#BD93F9"),
			BorderFg:  lipgloss.Color("#44475A"),
			TitleFg:   lipgloss.Color("#FF79C6"),
			HelpFg:    lipgloss.Color("#6272A4"),
			CursorFg:  lipgloss.Color("#F8F8F2"),
			CursorBg:  lipgloss.Color("#44475A"),
		}
	case PresetSolarize:
		return Theme{
			HashFg:    lipgloss.Color("#B58900"),
			AuthorFg:  lipgloss.Color("#2AA198"),
			DateFg:    lipgloss.Color("#586E75"),
			SubjectFg: lipgloss.Color("#93A1A1"),
			AddedFg:   lipgloss.Color("#859900"),
			RemovedFg: lipgloss.Color("#DC322F"),
			HunkFg:    lipgloss.Color("#268BD2"),
			BorderFg:  lipgloss.Color("#657B83"),
			TitleFg:   lipgloss.Color("#6C71C4"),
			HelpFg:    lipgloss.Color("#586E75"),
			CursorFg:  lipgloss.Color("#EEE8D5"),
			CursorBg:  lipgloss.Color("#073642"),
		}
	default:
		return DefaultTheme()
	}
}
