// Package invaders implements a single wave of Space Invaders: a ship at the
// bottom of the world, a marching alien formation, and laser bolts.
//
// Wave holds the rules and is driven frame by frame; Game adapts it to the
// registry so the terminal platform can play it.
package invaders

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Package-level settings applied on the next Reset, set via CLI flags.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
// Unknown values clear the preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		logger.Warn("ignoring difficulty", "preset", preset, "err", err)
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}

// Game drives one wave for the terminal platform: it converts ticks to
// seconds, handles pause and restart, and respawns the ship after a delay.
type Game struct {
	cfg    config.InvadersConfig
	fixed  bool // cfg was supplied by the caller and is not reloaded on Reset
	rt     core.RuntimeConfig
	rng    *rand.Rand
	wave   *Wave
	log    *log.Logger
	tick   uint64
	paused bool

	respawning bool
	respawnIn  float64 // Seconds left before the ship respawns
	won, lost  bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{log: logger}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{cfg: cfg, fixed: true, log: logger}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset starts a new wave.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.fixed {
		g.cfg = g.loadConfig()
	}
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed)) //#nosec G404 -- gameplay randomness
	g.wave = NewWave(g.cfg, g.rng)
	g.tick = 0
	g.paused = false
	g.respawning = false
	g.respawnIn = 0
	g.won = false
	g.lost = false

	g.log.Info("wave started",
		"seed", rt.Seed,
		"aliens", g.wave.Aliens().Alive(),
		"lives", g.wave.Lives())
}

func (g *Game) loadConfig() config.InvadersConfig {
	cfg, src, err := config.LoadInvaders(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultInvadersConfig()
		src = config.SourceBuiltin
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	g.log.Debug("config loaded", "source", src, "difficulty", difficultyPreset)
	return cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	over := g.won || g.lost
	if in.IsPressed(core.ActionRestart) && over {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.rt.ScreenW,
			ScreenH:  g.rt.ScreenH,
			TickRate: g.rt.TickRate,
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State()}
	}
	if in.IsPressed(core.ActionPause) && !over {
		g.paused = !g.paused
	}
	if g.paused || over {
		return core.StepResult{State: g.State()}
	}

	dt := g.rt.TickSeconds()

	// The wave is frozen between losing a ship and the respawn.
	if g.respawning {
		g.respawnIn -= dt
		if g.respawnIn > 0 {
			return core.StepResult{State: g.State()}
		}
		g.respawning = false
		g.wave.RespawnShip()
		g.log.Debug("ship respawned", "lives", g.wave.Lives())
	}

	g.wave.Update(in, dt)

	if g.wave.Dead() {
		g.wave.SetDead(false)
		g.log.Info("ship destroyed", "lives", g.wave.Lives(), "tick", g.tick)
		if g.wave.Lives() > 0 {
			g.respawning = true
			g.respawnIn = g.cfg.Wave.RespawnDelay
		}
	}

	// Clearing the last alien wins even if the last life went on the same frame.
	switch {
	case g.wave.Won():
		g.won = true
		g.log.Info("wave cleared", "tick", g.tick, "lives", g.wave.Lives())
	case g.wave.Lost():
		g.lost = true
		g.log.Info("wave lost", "tick", g.tick, "aliens", g.wave.Aliens().Alive())
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	lives := 0
	if g.wave != nil {
		lives = g.wave.Lives()
	}
	return core.GameState{
		Lives:    lives,
		Won:      g.won,
		Lost:     g.lost,
		GameOver: g.won || g.lost,
		Paused:   g.paused,
	}
}

// Wave returns the wave being played.
func (g *Game) Wave() *Wave {
	return g.wave
}

// Render draws the status line and the wave.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.wave == nil {
		return
	}

	status := fmt.Sprintf(" INVADERS  Lives: %d  Aliens: %d", g.wave.Lives(), g.wave.Aliens().Alive())
	dst.DrawText(0, 0, status)

	g.wave.Draw(&ScreenView{Screen: dst, World: g.cfg.World, Top: 1})

	switch {
	case g.won:
		g.renderOverlay(dst, "Wave cleared!", "Press R to play again")
	case g.lost:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.respawning:
		g.renderOverlay(dst, "Ship destroyed", fmt.Sprintf("Lives left: %d", g.wave.Lives()))
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r)
	dst.DrawTextCentered(r.Y+1, line1)
	dst.DrawTextCentered(r.Y+3, line2)
}
