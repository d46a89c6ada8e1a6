package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/TomJGooding/jagt/internal/models"
)

// LogView is the left pane: the commit log with a cursor and scroll
// offset.
type LogView struct {
	entries []models.LogEntry
	loaded  bool
	cursor  int
	offset  int
	width   int
	height  int
	styles  Styles
}

func NewLogView(styles Styles) *LogView {
	return &LogView{styles: styles}
}

func (l *LogView) SetEntries(entries []models.LogEntry) {
	l.entries = entries
	l.loaded = true
	l.cursor = 0
	l.offset = 0
}

func (l *LogView) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.scrollCursorIntoView()
}

// SelectedEntry returns the entry under the cursor, or nil when the log
// is empty.
func (l *LogView) SelectedEntry() *models.LogEntry {
	if l.cursor >= 0 && l.cursor < len(l.entries) {
		return &l.entries[l.cursor]
	}
	return nil
}

// Counter describes the cursor position, e.g. "Commit 3/120".
func (l *LogView) Counter() string {
	if len(l.entries) == 0 {
		return "No commits"
	}
	return fmt.Sprintf("Commit %d/%d", l.cursor+1, len(l.entries))
}

func (l *LogView) HandleKey(msg tea.KeyMsg) {
	if len(l.entries) == 0 {
		return
	}

	switch msg.String() {
	case "j", "down":
		if l.cursor < len(l.entries)-1 {
			l.cursor++
		}
	case "k", "up":
		if l.cursor > 0 {
			l.cursor--
		}
	case "ctrl+d", "pgdown":
		l.cursor += l.halfPage()
		if l.cursor > len(l.entries)-1 {
			l.cursor = len(l.entries) - 1
		}
	case "ctrl+u", "pgup":
		l.cursor -= l.halfPage()
		if l.cursor < 0 {
			l.cursor = 0
		}
	case "g", "home":
		l.cursor = 0
	case "G", "end":
		l.cursor = len(l.entries) - 1
	}

	l.scrollCursorIntoView()
}

func (l *LogView) halfPage() int {
	half := l.height / 2
	if half < 1 {
		half = 1
	}
	return half
}

func (l *LogView) scrollCursorIntoView() {
	if l.height < 1 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.height {
		l.offset = l.cursor - l.height + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

func (l *LogView) View() string {
	if !l.loaded {
		return l.styles.help.Render("Loading commits...")
	}
	if len(l.entries) == 0 {
		return l.styles.help.Render("No commits")
	}

	end := l.offset + l.height
	if end > len(l.entries) {
		end = len(l.entries)
	}

	var b strings.Builder
	for i := l.offset; i < end; i++ {
		b.WriteString(l.formatLine(l.entries[i], i == l.cursor))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (l *LogView) formatLine(entry models.LogEntry, selected bool) string {
	prefix := "  "
	if selected {
		prefix = "▸ "
	}

	subject := entry.Subject
	// The prefix renders as two cells regardless of its byte length.
	maxSubject := l.width - 2 - len(entry.ShortHash) - 1
	if maxSubject > 3 {
		if runes := []rune(subject); len(runes) > maxSubject {
			subject = string(runes[:maxSubject-1]) + "…"
		}
	}

	if selected {
		return l.styles.cursor.Render(prefix + entry.ShortHash + " " + subject)
	}
	return prefix + l.styles.hash.Render(entry.ShortHash) + " " + l.styles.subject.Render(subject)
}
