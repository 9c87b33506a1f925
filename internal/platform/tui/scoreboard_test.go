package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func scoreboardFixture() (*fakeStore, []registry.GameInfo) {
	now := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	store := &fakeStore{scores: map[string][]storage.ScoreEntry{
		"2048": {
			{GameID: "2048", Score: 20000, MaxTile: 2048, Moves: 900, Status: "won", CreatedAt: now},
			{GameID: "2048", Score: 3000, MaxTile: 256, Moves: 300, Status: "lost", CreatedAt: now},
		},
		"2048_endless": {
			{GameID: "2048_endless", Score: 50000, MaxTile: 4096, Moves: 2000, Status: "playing", CreatedAt: now},
		},
	}}
	variants := []registry.GameInfo{
		{ID: "2048", Title: "2048"},
		{ID: "2048_endless", Title: "2048 (Endless)"},
		{ID: "broken", Title: "Broken"},
	}
	return store, variants
}

func TestScoreboardOpensOnInitial(t *testing.T) {
	store, variants := scoreboardFixture()

	m := NewScoreboardModel(store, variants, "2048_endless", 120, 30)

	if m.selected != 1 {
		t.Errorf("selected = %d, want the initial variant", m.selected)
	}
	if len(m.table.Rows()) != 1 {
		t.Errorf("rows = %d, want 1", len(m.table.Rows()))
	}
	if !strings.Contains(m.View(), "HIGH SCORES · 2048 (Endless)") {
		t.Errorf("view:\n%s", m.View())
	}
}

func TestScoreboardOverview(t *testing.T) {
	store, variants := scoreboardFixture()

	m := NewScoreboardModel(store, variants, "", 120, 30)

	if len(m.overview) != 2 || m.overview["2048"].GamesCount != 2 {
		t.Fatalf("overview = %v", m.overview)
	}
	panel := m.overviewPanel()
	for _, want := range []string{"20000", "50000", "Broken"} {
		if !strings.Contains(panel, want) {
			t.Errorf("overview missing %q:\n%s", want, panel)
		}
	}

	narrow := NewScoreboardModel(store, variants, "", 60, 30)
	if strings.Contains(narrow.View(), "Games") {
		t.Error("narrow view should hide the overview")
	}
	if !strings.Contains(narrow.View(), "1/3") {
		t.Errorf("narrow view should show the position:\n%s", narrow.View())
	}
}

func TestScoreboardSummaryAndCycle(t *testing.T) {
	store, variants := scoreboardFixture()
	m := NewScoreboardModel(store, variants, "", 120, 30)

	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][1] != "20000" || rows[0][2] != "2048" || rows[0][4] != "won" {
		t.Errorf("rows = %v", rows)
	}
	if s := m.summary(); !strings.Contains(s, "2 games") || !strings.Contains(s, "1 won (50%)") {
		t.Errorf("summary = %q", s)
	}

	next, _ := m.Update(keyMsg("tab"))
	m = next.(ScoreboardModel)
	if m.selected != 1 {
		t.Errorf("tab moved selection to %d", m.selected)
	}

	next, _ = m.Update(keyMsg("left"))
	next, _ = next.(ScoreboardModel).Update(keyMsg("left"))
	m = next.(ScoreboardModel)
	if m.selected != 2 {
		t.Errorf("left should wrap to the last variant, selected = %d", m.selected)
	}
	if m.loadErr == nil || !strings.Contains(m.View(), "Cannot load scores") {
		t.Error("load failure should be shown")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	_, variants := scoreboardFixture()
	m := NewScoreboardModel(nil, variants, "", 60, 20)

	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Errorf("view without store:\n%s", m.View())
	}
	if m.summary() != "No games yet" {
		t.Errorf("summary = %q", m.summary())
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	store, variants := scoreboardFixture()

	next, _ := NewScoreboardModel(store, variants, "", 80, 24).Update(keyMsg("esc"))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	next, _ = NewScoreboardModel(store, variants, "", 80, 24).Update(keyMsg("q"))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
