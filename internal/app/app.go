package app

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/solopong/internal/audio"
	"github.com/diegok/solopong/internal/config"
	"github.com/diegok/solopong/internal/game"
	"github.com/diegok/solopong/internal/snapshot"
	"github.com/diegok/solopong/internal/ui"
)

const (
	// FrameInterval drives the simulation at ~120 ticks/s. Gameplay doesn't
	// depend on it since all motion is scaled by measured dt.
	FrameInterval = 8 * time.Millisecond

	// InputHoldTicks keeps a direction applied after its last key event.
	// Terminals deliver key repeats, not key-up events, so a held key shows
	// up as a stream of presses; this bridges the gaps between repeats.
	InputHoldTicks = 16
)

// App wires the match, the terminal UI and the audio together and runs the
// frame loop.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	match    *game.Match

	dir       snapshot.Direction
	holdTicks int

	prevState snapshot.MatchState
	havePrev  bool

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		quit: make(chan struct{}),
	}
}

// Run initializes the screen and audio, builds the match, and runs the main
// loop until the player quits.
func (a *App) Run() error {
	// Audio failure is non-fatal, the game just runs silent
	_ = audio.Init()
	audio.SetMuted(a.cfg.Mute)

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	a.match = game.NewMatch(a.cfg.PointsToWin, rng)

	runErr := a.mainLoop()

	a.cleanup()
	return runErr
}

// mainLoop pumps terminal events and simulation ticks until quit.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	last := time.Now()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			a.tick(dt)
		}
	}
}

// tick advances the match by dt and renders the resulting frame.
func (a *App) tick(dt float64) {
	// Expire held input between key repeats
	if a.holdTicks > 0 {
		a.holdTicks--
		if a.holdTicks == 0 {
			a.dir = snapshot.DirNone
		}
	}

	a.match.Update(dt, a.dir)

	state := a.match.Snapshot()
	a.detectSoundEvents(state)
	a.prevState = state
	a.havePrev = true

	a.renderer.RenderMatch(state)
}

// handleEvent processes keyboard and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}

		if ui.IsServeKey(ev.Key(), ev.Rune()) {
			switch a.match.Phase {
			case snapshot.PhaseWaitingServe:
				a.match.Serve()
			case snapshot.PhaseOver:
				a.match.Reset()
			}
			return false
		}

		if dir := ui.KeyToDirection(ev.Key(), ev.Rune()); dir != snapshot.DirNone {
			a.dir = dir
			a.holdTicks = InputHoldTicks
		}

	case *tcell.EventResize:
		a.screen.Clear()
	}

	return false
}

// detectSoundEvents compares successive snapshots and triggers sounds on
// velocity sign flips and score changes.
func (a *App) detectSoundEvents(state snapshot.MatchState) {
	if !a.havePrev {
		return
	}
	prev := a.prevState

	// Paddle hit: horizontal velocity reversed while the ball was in play
	if state.Ball.X > 0 && state.Ball.X < state.CourtWidth {
		if (prev.Ball.VX > 0 && state.Ball.VX < 0) || (prev.Ball.VX < 0 && state.Ball.VX > 0) {
			audio.PlayPaddleHit()
		}
	}

	// Wall bounce: vertical velocity reversed
	if (prev.Ball.VY > 0 && state.Ball.VY < 0) || (prev.Ball.VY < 0 && state.Ball.VY > 0) {
		audio.PlayWallBounce()
	}

	if state.LeftScore > prev.LeftScore || state.RightScore > prev.RightScore {
		if state.Phase == snapshot.PhaseOver {
			audio.PlayWin()
		} else {
			audio.PlayScore()
		}
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}
