package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// menuItem is one row of the top-level menu.
type menuItem struct {
	label   string
	variant string // variant ID to play; empty for the entries below
	levels  bool   // opens the level list
	scores  bool   // opens the scoreboard
}

// MenuModel lets the player pick classic, endless or a campaign level.
type MenuModel struct {
	items         []menuItem
	levels        []t2048.Variant
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	selected      string
	scoreboard    bool
	quitting      bool
}

// NewMenuModel builds the menu from the playable variants.
func NewMenuModel(variants []t2048.Variant, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	for _, v := range variants {
		switch v.Mode {
		case t2048.ModeCampaign:
			m.levels = append(m.levels, v)
		case t2048.ModeEndless:
			m.items = append(m.items, menuItem{label: "Endless", variant: v.ID})
		default:
			label := "Classic"
			if v.HasTarget() {
				label = fmt.Sprintf("Classic (reach %d)", v.Target)
			}
			m.items = append(m.items, menuItem{label: label, variant: v.ID})
		}
	}
	if len(m.levels) > 0 {
		m.items = append(m.items, menuItem{
			label:  fmt.Sprintf("Campaign (%d levels)...", len(m.levels)),
			levels: true,
		})
	}
	m.items = append(m.items, menuItem{label: "High Scores", scores: true})

	return m
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleMainKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleMainKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionScores:
		m.scoreboard = true
		return m, tea.Quit
	case MenuActionSelect:
		item := m.items[m.cursor]
		switch {
		case item.levels:
			m.inLevelSelect = true
			m.levelCursor = 0
		case item.scores:
			m.scoreboard = true
			return m, tea.Quit
		default:
			m.selected = item.variant
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selected = m.levels[m.levelCursor].ID
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

var menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

// View renders the menu or the level list.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" || m.scoreboard {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	if m.inLevelSelect {
		b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
		b.WriteString("\n\n")
		for i, v := range m.levels {
			cursor := "  "
			if i == m.levelCursor {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%2d. %-20s target %5d  4s %2.0f%%", cursor, v.Level, levelName(v), v.Target, v.Spawn4*100)
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))
		return b.String()
	}

	b.WriteString(centerText(menuTitleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.label, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	return b.String()
}

// levelName strips the "2048 Level N: " prefix from a campaign title.
func levelName(v t2048.Variant) string {
	if _, name, ok := strings.Cut(v.Title, ": "); ok {
		return name
	}
	return v.Title
}

// Selected returns the chosen variant ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// WantsScoreboard reports whether the player opened the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// IsQuitting returns true if the player left the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config with the latest window size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	VariantID       string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(variants []t2048.Variant, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(variants, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != "":
		result.VariantID = m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
