package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   KeyMap
	hold   *HoldTracker
	logger *log.Logger
	player string // recorded with sessions, empty for local play
	tickID int64

	gameState  core.GameState
	quitting   bool
	backToMenu bool
	saved      bool // current session already persisted
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithPlayer tags stored sessions with a player name.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// WithHoldTicks overrides the key hold window.
func WithHoldTicks(n int) ModelOption {
	return func(m *Model) { m.hold = NewHoldTracker(n) }
}

// NewModel creates a model for the given game. store may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   DefaultKeyMap(),
		hold:   NewHoldTracker(DefaultHoldTicks),
		logger: log.Default(),
		tickID: nextTickID(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.id != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		if !m.gameState.GameOver {
			// Leaving a paused session abandons it.
			m.gameState = m.game.Step(core.FrameOf(core.ActionQuit)).State
		}
		m.persist()
		m.backToMenu = true
		return m, tea.Quit
	}

	m.hold.Press(action)
	return m, nil
}

// handleResize rebuilds the playfield for the new terminal size. A running
// session restarts because the field geometry changes with it. A finished
// one keeps its end screen and the next session starts on the new field.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok && m.gameState.GameOver {
		r.Resize(m.config)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.hold.Reset()
		m.gameState = m.game.State()
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.hold.Tick())
	prev := m.gameState
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.saved:
		m.persist()
	case !m.gameState.GameOver && prev.GameOver:
		// A new session started.
		m.saved = false
	}

	if m.gameState.Quit {
		m.persist()
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate, m.tickID)
}

// persist stores the score and session record once per session.
func (m *Model) persist() {
	if m.saved {
		return
	}
	m.saved = true

	var rep core.SessionReport
	if r, ok := m.game.(registry.Reporter); ok {
		rep = r.Report()
	}
	if rep.Outcome == "" {
		return
	}
	if m.store == nil {
		return
	}

	// Abandoned sessions are recorded but do not enter the high scores.
	if rep.Outcome != "quit" && m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "err", err)
		}
	}
	rec := storage.NewSessionRecord(m.game.ID(), m.player, rep)
	if _, err := m.store.SaveSession(rec); err != nil {
		m.logger.Warn("could not save session", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Debug("session saved", "game", m.game.ID(), "outcome", rep.Outcome, "score", rep.Score)
}

func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "err", err)
		return
	}
	dir := filepath.Join(home, ".asteroids", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "dir", dir, "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: write failed", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player quit the game.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
