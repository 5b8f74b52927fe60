package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dash/internal/registry"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 24
	maxRuns            = 100
)

// boardView selects which attempts the scoreboard lists.
type boardView int

const (
	viewBest boardView = iota
	viewRecent
)

func (v boardView) String() string {
	if v == viewRecent {
		return "RECENT RUNS"
	}
	return "BEST RUNS"
}

type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	View   key.Binding
	Clear  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.View, k.Clear, k.Back}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Prev, k.Quit}}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("j/k", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next level")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev level")),
		View:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "best/recent")),
		Clear:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x x", "clear level")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists recorded attempts per level.
type ScoreboardModel struct {
	levels   []registry.GameInfo
	cursor   int
	store    *storage.Store
	view     boardView
	runs     []storage.AttemptEntry
	stats    map[string]*storage.LevelStats
	arming   bool // first clear press seen
	status   string
	table    table.Model
	help     help.Model
	keys     scoreboardKeys
	width    int
	height   int
	quitting bool
	back     bool
}

// NewScoreboardModel creates a scoreboard over every registered level.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		levels: registry.List(),
		store:  store,
		keys:   newScoreboardKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) sidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m *ScoreboardModel) newTable() table.Model {
	dateWidth := 14
	if w := m.width - 36; m.sidebar() && w-sidebarWidth > dateWidth {
		dateWidth = min(w-sidebarWidth, 20)
	}
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Progress", Width: 10},
		{Title: "Attempt", Width: 8},
		{Title: "Played", Width: dateWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// current returns the selected level ID, or "" when nothing is registered.
func (m *ScoreboardModel) current() string {
	if len(m.levels) == 0 {
		return ""
	}
	return m.levels[m.cursor].ID
}

// reload refreshes the per-level stats and the runs of the selected level.
func (m *ScoreboardModel) reload() {
	m.runs = nil
	m.stats = nil
	if m.store != nil {
		if all, err := m.store.GetAllLevelStats(); err == nil {
			m.stats = all
		}
		if id := m.current(); id != "" {
			var runs []storage.AttemptEntry
			var err error
			if m.view == viewRecent {
				runs, err = m.store.AllRuns(id)
			} else {
				runs, err = m.store.TopRuns(id, maxRuns)
			}
			if err == nil {
				m.runs = runs
			}
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		progress := fmt.Sprintf("%d%%", r.Percent)
		if r.Completed {
			progress = "clear"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			progress,
			fmt.Sprintf("%d", r.Attempt),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) move(delta int) {
	if len(m.levels) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.levels)) % len(m.levels)
	m.arming = false
	m.status = ""
	m.reload()
}

// clear wipes the selected level's history on the second consecutive press.
func (m *ScoreboardModel) clear() {
	id := m.current()
	if id == "" || m.store == nil {
		return
	}
	if !m.arming {
		m.arming = true
		m.status = "press x again to clear " + m.levels[m.cursor].Title
		return
	}
	m.arming = false
	if err := m.store.ClearAttempts(id); err != nil {
		m.status = "clear failed: " + err.Error()
		return
	}
	m.status = "cleared " + m.levels[m.cursor].Title
	m.reload()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !key.Matches(msg, m.keys.Clear) {
			m.arming = false
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.move(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.move(-1)
			return m, nil
		case key.Matches(msg, m.keys.View):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.clear()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	title := m.view.String()
	if len(m.levels) > 0 {
		title += " - " + m.levels[m.cursor].Title
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.summary(), m.width))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	runs := box.Render(m.runsView())
	if m.sidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, box.Width(sidebarWidth).Render(m.levelList()), "  ", runs))
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %d/%d >", m.cursor+1, len(m.levels)), m.width))
		b.WriteString("\n")
		b.WriteString(runs)
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	return b.String()
}

// summary describes the selected level's attempt history in one line.
func (m ScoreboardModel) summary() string {
	st, ok := m.stats[m.current()]
	if !ok || st.Runs == 0 {
		return "never played"
	}
	return fmt.Sprintf("best %d%%  runs %d  clears %d  avg %.0f%%  last %s",
		st.BestPercent, st.Runs, st.Completions, st.AvgPercent, st.LastPlayed.Format("Jan 02"))
}

// levelList renders the sidebar with each level's best percent.
func (m ScoreboardModel) levelList() string {
	var b strings.Builder
	b.WriteString("Levels\n")
	for i, lvl := range m.levels {
		best := "  -"
		if st, ok := m.stats[lvl.ID]; ok {
			best = fmt.Sprintf("%3d", st.BestPercent)
		}
		line := fmt.Sprintf("%s %s", truncate(lvl.Title, sidebarWidth-10), best)
		if i == m.cursor {
			line = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m ScoreboardModel) runsView() string {
	if len(m.runs) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render("No attempts recorded.")
	}
	return m.table.View()
}

// truncate shortens s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
