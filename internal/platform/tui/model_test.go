package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

func newTestModel(t *testing.T) (Model, *asteroids.Game, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := asteroids.New()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	m := NewModel(game, store, cfg, WithPlayer("tester"))
	m.Init()
	return m, game, store
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg{id: m.tickID})
	return next.(Model), cmd
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// crash puts an asteroid on the ship so the next tick loses.
func crash(g *asteroids.Game) {
	w := g.Session().World
	w.Asteroids = []asteroids.Asteroid{{Pos: w.Ship.Pos, Radius: 6}}
}

func TestModelSavesLostSessionOnce(t *testing.T) {
	m, game, store := newTestModel(t)
	crash(game)

	m, _ = tick(t, m)
	if !m.gameState.GameOver {
		t.Fatal("expected the session to be lost")
	}
	for i := 0; i < 5; i++ {
		m, _ = tick(t, m)
	}

	sessions, err := store.RecentSessions("asteroids", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 saved session, got %d", len(sessions))
	}
	if sessions[0].Outcome != "lost" || sessions[0].Player != "tester" {
		t.Errorf("unexpected session: %+v", sessions[0])
	}
}

func TestModelRestartAllowsAnotherSave(t *testing.T) {
	m, game, store := newTestModel(t)
	crash(game)
	m, _ = tick(t, m)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m)
	if m.gameState.GameOver {
		t.Fatal("enter should start a new session")
	}

	crash(game)
	m, _ = tick(t, m)

	sessions, _ := store.RecentSessions("asteroids", 10)
	if len(sessions) != 2 {
		t.Errorf("expected 2 saved sessions, got %d", len(sessions))
	}
}

func TestModelResizeAfterGameOver(t *testing.T) {
	m, game, _ := newTestModel(t)
	crash(game)
	m, _ = tick(t, m)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if !m.gameState.GameOver || game.Session().Played() != 1 {
		t.Fatal("a resize should keep the finished session on screen")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m)
	if m.gameState.GameOver {
		t.Fatal("enter should start a new session")
	}

	w := game.Session().World
	if p := w.Params(); p.Width != 120 || p.Height != 78 {
		t.Errorf("playfield = %vx%v, expected 120x78", p.Width, p.Height)
	}
	if w.Ship.Pos != core.V(60, 39) {
		t.Errorf("ship should restart at the new centre, got %+v", w.Ship.Pos)
	}
	if game.Session().Played() != 2 {
		t.Errorf("Played = %d, expected 2", game.Session().Played())
	}
}

func TestModelQuitRecordsAbandonedSession(t *testing.T) {
	m, _, store := newTestModel(t)

	m = press(t, m, runeKey('q'))
	m, cmd := tick(t, m)
	if !m.IsQuitting() || cmd == nil {
		t.Fatal("quit should stop the program")
	}

	sessions, _ := store.RecentSessions("asteroids", 10)
	if len(sessions) != 1 || sessions[0].Outcome != "quit" {
		t.Fatalf("expected one quit session, got %+v", sessions)
	}
	if scores, _ := store.TopScores("asteroids", 10); len(scores) != 0 {
		t.Error("abandoned sessions should not be ranked")
	}
}

func TestModelBackFromPause(t *testing.T) {
	m, _, store := newTestModel(t)

	m = press(t, m, runeKey('p'))
	m, _ = tick(t, m)
	if !m.gameState.Paused {
		t.Fatal("p should pause")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Fatal("esc while paused should return to the menu")
	}
	if sessions, _ := store.RecentSessions("asteroids", 10); len(sessions) != 1 {
		t.Errorf("leaving a paused game should record it, got %d sessions", len(sessions))
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m, game, _ := newTestModel(t)
	before := game.Session().World.Ship

	next, cmd := m.Update(TickMsg{id: m.tickID + 1000})
	if cmd != nil {
		t.Error("a stale tick should not schedule another")
	}
	if next.(Model).game.(*asteroids.Game).Session().World.Ship.Pos != before.Pos {
		t.Error("a stale tick should not advance the game")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "HELLO", core.ColorBrightGreen)
	s.DrawText(0, 1, "world")

	out := RenderScreen(s)
	for _, want := range []string{"HELLO", "world"} {
		if !containsPlain(out, want) {
			t.Errorf("rendered output should contain %q", want)
		}
	}
}

// containsPlain reports whether s contains sub once ANSI escapes are removed.
func containsPlain(s, sub string) bool {
	return strings.Contains(ansi.Strip(s), sub)
}
