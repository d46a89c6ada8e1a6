package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TomJGooding/jagt/internal/config"
	"github.com/TomJGooding/jagt/internal/git"
	"github.com/TomJGooding/jagt/internal/models"
)

const (
	headerHeight = 2
	footerHeight = 2
)

type focusArea int

const (
	focusLog focusArea = iota
	focusDetail
)

type errMsg struct {
	err error
}

type logLoadedMsg struct {
	entries []models.LogEntry
}

// detailsMsg carries the fetched details together with the hash they
// were requested for, so results for a superseded selection get dropped.
type detailsMsg struct {
	forHash string
	details models.CommitDetails
}

type copiedMsg struct {
	hash string
	err  error
}

// Model is the root bubbletea model: a commit log pane next to a detail
// pane, both fed by the git source.
type Model struct {
	source     *git.Source
	cfg        *config.Config
	styles     Styles
	logView    *LogView
	detailView *DetailView
	focus      focusArea
	width      int
	height     int
	statusText string
	err        error
}

func NewModel(source *git.Source, cfg *config.Config) Model {
	styles := newStyles(cfg.Theme)
	return Model{
		source:     source,
		cfg:        cfg,
		styles:     styles,
		logView:    NewLogView(styles),
		detailView: NewDetailView(styles, cfg.DiffDisplayLimit),
	}
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return m.loadLog()
}

func (m Model) loadLog() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.source.ListCommits(m.cfg.LogLimit)
		if err != nil {
			return errMsg{err}
		}
		return logLoadedMsg{entries}
	}
}

func (m Model) loadDetails(shortHash string) tea.Cmd {
	return func() tea.Msg {
		details, err := m.source.GetCommitDetails(shortHash)
		if err != nil {
			return errMsg{err}
		}
		return detailsMsg{forHash: shortHash, details: details}
	}
}

func (m Model) copySelectedHash() tea.Cmd {
	details := m.detailView.Details()
	if details == nil {
		return nil
	}
	hash := details.Hash
	return func() tea.Msg {
		return copiedMsg{hash: hash, err: clipboard.WriteAll(hash)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case logLoadedMsg:
		m.logView.SetEntries(msg.entries)
		if entry := m.logView.SelectedEntry(); entry != nil {
			return m, m.loadDetails(entry.ShortHash)
		}
		m.detailView.ShowEmpty()
		return m, nil

	case detailsMsg:
		if entry := m.logView.SelectedEntry(); entry != nil && entry.ShortHash == msg.forHash {
			m.detailView.SetDetails(msg.details)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.statusText = "clipboard unavailable"
		} else {
			m.statusText = "copied " + msg.hash
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusText = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		if m.focus == focusLog {
			m.focus = focusDetail
		} else {
			m.focus = focusLog
		}
		return m, nil

	case "y":
		return m, m.copySelectedHash()
	}

	if m.focus == focusDetail {
		m.detailView.HandleKey(msg)
		return m, nil
	}

	before := m.logView.SelectedEntry()
	m.logView.HandleKey(msg)
	after := m.logView.SelectedEntry()
	if after != nil && (before == nil || before.ShortHash != after.ShortHash) {
		return m, m.loadDetails(after.ShortHash)
	}

	return m, nil
}

func (m *Model) resizePanes() {
	leftWidth := m.leftPaneWidth()
	rightWidth := m.width - leftWidth
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 3 {
		contentHeight = 3
	}

	// Inner sizes: each pane loses two cells to its border.
	m.logView.SetSize(leftWidth-2, contentHeight-2)
	m.detailView.SetSize(rightWidth-2, contentHeight-2)
}

func (m Model) leftPaneWidth() int {
	width := m.width / 3
	if width < 24 {
		width = 24
	}
	if width > 60 {
		width = 60
	}
	return width
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	panes := m.renderPanes()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, panes, footer)
}

func (m Model) renderPanes() string {
	leftWidth := m.leftPaneWidth()
	rightWidth := m.width - leftWidth
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 3 {
		contentHeight = 3
	}

	logStyle := m.styles.pane
	detailStyle := m.styles.pane
	if m.focus == focusLog {
		logStyle = m.styles.paneFocused
	} else {
		detailStyle = m.styles.paneFocused
	}

	left := logStyle.
		Width(leftWidth - 2).
		Height(contentHeight - 2).
		Render(m.logView.View())
	right := detailStyle.
		Width(rightWidth - 2).
		Height(contentHeight - 2).
		Render(m.detailView.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderHeader() string {
	title := m.styles.title.Render("jagt")
	counter := m.styles.help.Render(m.logView.Counter())

	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(counter) - 1
	if spacing < 1 {
		spacing = 1
	}

	headerLine := title + strings.Repeat(" ", spacing) + counter
	divider := m.styles.divider.Render(strings.Repeat("─", m.width))

	return lipgloss.JoinVertical(lipgloss.Left, headerLine, divider)
}

func (m Model) renderFooter() string {
	keys := []string{
		"j/k: navigate",
		"g/G: top/bottom",
		"tab: switch pane",
		"y: copy hash",
		"q: quit",
	}

	help := m.styles.help.Render(strings.Join(keys, " • "))
	if m.statusText != "" {
		help += "  " + m.styles.statusMessage.Render(m.statusText)
	}

	divider := m.styles.divider.Render(strings.Repeat("─", m.width))

	return lipgloss.JoinVertical(lipgloss.Left, divider, help)
}
