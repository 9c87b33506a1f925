package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	overviewMinWidth = 100 // narrower windows hide the variant overview
	overviewWidth    = 34
	scoreLimit       = 100
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	panelStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	wonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// scoreboardKeys are the bindings of the high-score screen.
type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Scroll, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next variant")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev variant")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "menu")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel browses recorded games one variant at a time. The
// overview lists every variant with its game count and best score; the
// detail pane shows the selected variant's stats and top scores.
type ScoreboardModel struct {
	variants []registry.GameInfo
	selected int
	store    ScoreStore

	overview    map[string]*storage.GameStats
	overviewErr error
	entries     []storage.ScoreEntry
	stats       *storage.GameStats
	loadErr     error

	table  table.Model
	help   help.Model
	keys   scoreboardKeys
	width  int
	height int

	quitting bool
	back     bool
}

// NewScoreboardModel opens the scoreboard on initial, or on the first
// variant when initial is not one of variants. store may be nil.
func NewScoreboardModel(store ScoreStore, variants []registry.GameInfo, initial string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: variants,
		store:    store,
		help:     help.New(),
		keys:     newScoreboardKeys(),
		width:    width,
		height:   height,
	}
	for i, v := range variants {
		if v.ID == initial {
			m.selected = i
		}
	}

	if store != nil {
		m.overview, m.overviewErr = store.AllGamesStats()
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= overviewMinWidth
}

func (m ScoreboardModel) newTable() table.Model {
	dateWidth := 12
	if m.wide() {
		dateWidth = 16
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Tile", Width: 6},
			{Title: "Moves", Width: 6},
			{Title: "Result", Width: 7},
			{Title: "Played", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// load fetches the selected variant's scores and stats into the table.
func (m *ScoreboardModel) load() {
	m.entries, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.selected].ID
		m.entries, m.loadErr = m.store.TopScores(id, scoreLimit)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GameStats(id)
		}
	}

	layout := "Jan 02 15:04"
	if m.wide() {
		layout = "2006-01-02 15:04"
	}
	rows := make([]table.Row, 0, len(m.entries))
	for i, e := range m.entries {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.MaxTile),
			strconv.Itoa(e.Moves),
			e.Status,
			e.CreatedAt.Format(layout),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// shift moves the selection by delta variants, wrapping around.
func (m *ScoreboardModel) shift(delta int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
	m.load()
}

// summary describes the selected variant's record.
func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "No games yet"
	}
	winRate := 100 * float64(m.stats.Wins) / float64(m.stats.GamesCount)
	return fmt.Sprintf("%d games · %d won (%.0f%%) · best %d · best tile %d · avg %.0f",
		m.stats.GamesCount, m.stats.Wins, winRate, m.stats.HighScore, m.stats.BestTile, m.stats.AvgScore)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.shift(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.shift(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.variants) > 0 {
		title += " · " + m.variants[m.selected].Title
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n")
	if !m.wide() && len(m.variants) > 1 {
		b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("◀ %d/%d ▶", m.selected+1, len(m.variants))), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	detail := panelStyle.Render(m.detail())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panelStyle.Render(m.overviewPanel()), " ", detail))
	} else {
		b.WriteString(detail)
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// overviewPanel lists every variant with its game count and best score.
func (m ScoreboardModel) overviewPanel() string {
	if m.overviewErr != nil {
		return errStyle.Render("Stats unavailable")
	}

	nameWidth := overviewWidth - 14
	lines := []string{dimStyle.Render(fmt.Sprintf("%-*s %4s %7s", nameWidth, "Variant", "Games", "Best"))}
	for i, v := range m.variants {
		games, best := "-", "-"
		if st, ok := m.overview[v.ID]; ok {
			games, best = strconv.Itoa(st.GamesCount), strconv.Itoa(st.HighScore)
		}

		name := v.Title
		if lipgloss.Width(name) > nameWidth {
			name = name[:nameWidth-1] + "."
		}
		line := fmt.Sprintf("%-*s %4s %7s", nameWidth, name, games, best)
		if i == m.selected {
			line = currentStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// detail shows the selected variant's summary above its score table.
func (m ScoreboardModel) detail() string {
	switch {
	case m.loadErr != nil:
		return errStyle.Render("Cannot load scores: " + m.loadErr.Error())
	case len(m.entries) == 0:
		return dimStyle.Italic(true).Render("No scores recorded yet.\nFinish a game to get on the board.")
	}

	summary := m.summary()
	if m.stats != nil && m.stats.Wins > 0 {
		summary = wonStyle.Render(summary)
	}
	return summary + "\n\n" + m.table.View()
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the player quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard and reports whether the player went
// back to the menu rather than quitting.
func RunScoreboard(store ScoreStore, variants []registry.GameInfo, initial string, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(
		NewScoreboardModel(store, variants, initial, width, height),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
