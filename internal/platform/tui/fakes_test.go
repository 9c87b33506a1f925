package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// fakeStore records saved results in memory.
type fakeStore struct {
	high    int
	saved   []storage.Result
	scores  map[string][]storage.ScoreEntry
	saveErr error
}

func (s *fakeStore) SaveResult(r storage.Result) (int64, error) {
	if s.saveErr != nil {
		return 0, s.saveErr
	}
	s.saved = append(s.saved, r)
	return int64(len(s.saved)), nil
}

func (s *fakeStore) HighScore(string) (int, error) {
	return s.high, nil
}

func (s *fakeStore) TopScores(gameID string, _ int) ([]storage.ScoreEntry, error) {
	if gameID == "broken" {
		return nil, errors.New("storage: disk on fire")
	}
	return s.scores[gameID], nil
}

func (s *fakeStore) GameStats(gameID string) (*storage.GameStats, error) {
	st := &storage.GameStats{GameID: gameID}
	for _, e := range s.scores[gameID] {
		st.GamesCount++
		st.HighScore = max(st.HighScore, e.Score)
		st.BestTile = max(st.BestTile, e.MaxTile)
		if e.Status == "won" {
			st.Wins++
		}
	}
	return st, nil
}

func (s *fakeStore) AllGamesStats() (map[string]*storage.GameStats, error) {
	out := make(map[string]*storage.GameStats)
	for id := range s.scores {
		out[id], _ = s.GameStats(id)
	}
	return out, nil
}

// fakeGame plays back a queue of states, one per Step.
type fakeGame struct {
	resets  int
	frames  []core.InputFrame
	states  []core.GameState
	current core.GameState
}

func (g *fakeGame) ID() string    { return "2048" }
func (g *fakeGame) Title() string { return "2048" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.current = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	if len(g.states) > 0 {
		g.current = g.states[0]
		g.states = g.states[1:]
	}
	return core.StepResult{State: g.current, Moved: true}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake board")
}

func (g *fakeGame) State() core.GameState { return g.current }

// keyMsg builds a key message the way Bubble Tea reports it.
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}
