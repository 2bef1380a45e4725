package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Model is the Bubble Tea model for running a game.
// The bottom terminal row is reserved for key help.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	input    *inputTracker
	keys     KeyMap
	help     help.Model
	log      *log.Logger
	state    core.GameState
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config: cfg,
		input:  newInputTracker(DefaultHoldTicks),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		log:    logger,
	}
}

func playHeight(screenH int) int {
	return max(screenH-1, 1)
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.log.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Press(action)
	return m, nil
}

// handleResize processes window resize events.
// The world is independent of the terminal size, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input.Frame())
	m.input.Advance()

	if result.State.GameOver && !m.state.GameOver {
		m.log.Info("game over", "game", m.game.ID(), "won", result.State.Won, "lives", result.State.Lives)
		m.input.Reset()
	}
	m.state = result.State

	return m, tickCmd(m.config.TickDuration())
}

// saveScreenshot saves the current screen to a text file.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
