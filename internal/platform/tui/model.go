// Package tui is the Bubble Tea front end: key mapping, the game screen,
// the variant menu and the scoreboard.
package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// footerHeight is the rows below the board: best score and help.
const footerHeight = 2

// ScoreStore is the persistence the screens need. *storage.Store satisfies it.
type ScoreStore interface {
	SaveResult(r storage.Result) (int64, error)
	HighScore(gameID string) (int, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GameStats(gameID string) (*storage.GameStats, error)
	AllGamesStats() (map[string]*storage.GameStats, error)
}

// Model is the Bubble Tea model for one game screen. Moves are applied on
// key press; there is no simulation tick.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     ScoreStore
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	gameState core.GameState
	best      int
	quitting  bool
	back      bool
	recorded  bool // Whether the current session has been saved
}

// NewModel creates a model and starts the first session. store and logger
// may be nil.
func NewModel(game registry.Game, store ScoreStore, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 0)),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
	m.help.Width = cfg.ScreenW

	game.Reset(cfg)
	m.gameState = game.State()

	if store != nil {
		best, err := store.HighScore(game.ID())
		if err != nil {
			logger.Warn("cannot load high score", "game", game.ID(), "err", err)
		}
		m.best = best
	}

	logger.Debug("session started", "game", game.ID(), "seed", cfg.Seed)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 0))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.record()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case frame.Has(core.ActionBack):
		m.record()
		m.back = true
		return m, tea.Quit

	case frame.Has(core.ActionRestart):
		m.record()
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorded = false
		m.logger.Debug("session restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, nil
	}

	if frame.Empty() {
		return m, nil
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.record()
	}
	return m, nil
}

// record saves the session score once, when there is one to save.
func (m *Model) record() {
	if m.recorded || m.gameState.Score == 0 {
		return
	}
	m.recorded = true
	m.best = max(m.best, m.gameState.Score)

	if m.store == nil {
		return
	}

	res := storage.Result{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Moves:  m.gameState.Moves,
		Status: string(t2048.StatusPlaying),
	}
	if snap, ok := m.game.(interface{ Snapshot() t2048.Snapshot }); ok {
		s := snap.Snapshot()
		res.MaxTile = s.MaxTile
		res.Status = string(s.Status)
	}

	if _, err := m.store.SaveResult(res); err != nil {
		m.logger.Error("cannot save score", "game", res.GameID, "err", err)
		return
	}
	m.logger.Info("score saved", "game", res.GameID, "score", res.Score, "status", res.Status)
}

var bestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)

// View renders the board, the best score and the key help.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)

	best := max(m.best, m.gameState.Score)
	footer := centerText(bestStyle.Render(fmt.Sprintf("Best: %d", best)), m.config.ScreenW)

	return RenderScreen(m.screen) + "\n" + footer + "\n" + m.help.View(m.keyMapper.Keys())
}

// State returns the game state as of the last key.
func (m Model) State() core.GameState {
	return m.gameState
}

// Best returns the best score shown in the footer.
func (m Model) Best() int {
	return max(m.best, m.gameState.Score)
}

// WantsBack reports whether the player asked to return to the menu.
func (m Model) WantsBack() bool {
	return m.back
}

// Run plays game until the player quits or goes back. It reports whether
// the player asked for the menu.
func Run(game registry.Game, store ScoreStore, logger *log.Logger, cfg core.RuntimeConfig) (back bool, err error) {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.WantsBack(), nil
}
