package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/TomJGooding/jagt/internal/models"
)

// DetailView is the right pane: a scrollable view of the selected
// commit's metadata, message, shortstat and diff.
type DetailView struct {
	viewport  viewport.Model
	details   *models.CommitDetails
	empty     bool
	diffLimit int
	styles    Styles
}

func NewDetailView(styles Styles, diffLimit int) *DetailView {
	return &DetailView{
		viewport:  viewport.New(0, 0),
		diffLimit: diffLimit,
		styles:    styles,
	}
}

func (d *DetailView) SetSize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = height
}

// SetDetails replaces the displayed commit and scrolls back to the top.
func (d *DetailView) SetDetails(details models.CommitDetails) {
	d.details = &details
	d.viewport.SetContent(d.renderDetails())
	d.viewport.GotoTop()
}

// Details returns the currently displayed commit, or nil before the
// first fetch completes.
func (d *DetailView) Details() *models.CommitDetails {
	return d.details
}

func (d *DetailView) HandleKey(msg tea.KeyMsg) {
	d.viewport, _ = d.viewport.Update(msg)
}

// ShowEmpty replaces the loading placeholder when the history holds no
// commits to display.
func (d *DetailView) ShowEmpty() {
	d.empty = true
}

func (d *DetailView) View() string {
	if d.details == nil {
		if d.empty {
			return d.styles.help.Render("No commits")
		}
		return d.styles.help.Render("Loading commit...")
	}
	return d.viewport.View()
}

func (d *DetailView) renderDetails() string {
	commit := d.details

	var b strings.Builder
	b.WriteString(d.styles.hash.Render("commit "+commit.Hash) + "\n")
	b.WriteString(fmt.Sprintf("Author: %s\n", d.styles.author.Render(fmt.Sprintf("%s <%s>", commit.Author, commit.Email))))
	b.WriteString(fmt.Sprintf("Date:   %s\n", d.styles.date.Render(commit.Date)))

	b.WriteString("\n")
	b.WriteString(d.styles.subject.Bold(true).Render(commit.Subject) + "\n")
	if body := strings.TrimRight(commit.Body, "\n"); body != "" {
		b.WriteString("\n" + d.styles.subject.Render(body) + "\n")
	}

	if commit.ShortStat != "" {
		b.WriteString("\n" + d.styles.hunk.Render(commit.ShortStat) + "\n")
	}

	if commit.Diff != "" {
		b.WriteString("\n" + d.renderDiff())
	}

	return b.String()
}

// renderDiff colorizes a display copy of the diff. The copy is cut at
// the configured limit; the stored record keeps the full text.
func (d *DetailView) renderDiff() string {
	diff := d.details.TruncatedDiff(d.diffLimit)
	truncated := len(diff) < len(d.details.Diff)

	lines := strings.Split(diff, "\n")
	rendered := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			rendered = append(rendered, d.styles.hunk.Render(line))
		case strings.HasPrefix(line, "@@"):
			rendered = append(rendered, d.styles.hunk.Render(line))
		case strings.HasPrefix(line, "+"):
			rendered = append(rendered, d.styles.added.Render(line))
		case strings.HasPrefix(line, "-"):
			rendered = append(rendered, d.styles.removed.Render(line))
		default:
			rendered = append(rendered, line)
		}
	}

	if truncated {
		rendered = append(rendered, d.styles.help.Render("… diff truncated for display"))
	}

	return strings.Join(rendered, "\n")
}
