package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/linked-lal/internal/config"
	"github.com/iburimskiy/linked-lal/internal/lal"
)

// Options configures a Game.
type Options struct {
	Width, Height int
	Theme         config.Theme
	Mute          bool
	Logger        *log.Logger
}

// Game hosts the widget inside an ebiten window.
type Game struct {
	ctx    context.Context
	opts   Options
	logger *log.Logger

	ctrl    *lal.Controller
	sched   *scheduler
	canvas  *canvas
	marker  *marker
	theme   config.Theme

	// clicker is built on the first click so the speaker is only opened
	// when a theme actually wants sound.
	clicker    clicker
	newClicker func() clicker

	// pickTheme is swapped in tests.
	pickTheme func() (string, error)

	// input edge detection
	prevKey map[ebiten.Key]bool

	taps    int
	started time.Time
	lastErr error
}

// NewGame builds a game whose ticks are cancelled with ctx.
func NewGame(ctx context.Context, opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = config.WindowWidth
	}
	if opts.Height <= 0 {
		opts.Height = config.WindowHeight
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	sched := newScheduler(time.Now)
	g := &Game{
		ctx:       ctx,
		opts:      opts,
		logger:    opts.Logger,
		sched:     sched,
		ctrl:      lal.NewController(lal.NewDriver(sched, config.TickInterval, opts.Logger), opts.Logger),
		marker:    newMarker(ebiten.DefaultTPS),
		pickTheme: selectTheme,
		prevKey:   map[ebiten.Key]bool{},
		started:   time.Now(),
	}
	g.newClicker = func() clicker { return newClicker(true, g.logger) }
	g.applyTheme(opts.Theme)
	g.ctrl.OnStep(func(res lal.StepResult) {
		g.click()
		if res.Flipped {
			g.logger.Debug("direction reversed", "at", res.Current, "dir", res.Direction)
		}
	})
	return g
}

func (g *Game) applyTheme(t config.Theme) {
	g.theme = t
	g.canvas = newCanvas(float64(g.opts.Width), float64(g.opts.Height), t)
}

// click plays the leg sound when the current theme has it enabled.
func (g *Game) click() {
	if !g.theme.Sound || g.opts.Mute {
		return
	}
	if g.clicker == nil {
		g.clicker = g.newClicker()
	}
	g.clicker.click()
}

// HandleTap forwards a pointer-down to the controller.
func (g *Game) HandleTap() {
	if g.ctrl.HandleTap() {
		g.taps++
		g.logger.Debug("tap", "node", g.ctrl.Chain().Current())
	}
}

func (g *Game) Update() error {
	if err := g.ctx.Err(); err != nil {
		g.sched.detach()
		return ebiten.Termination
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.sched.detach()
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyO) {
		g.lastErr = g.openThemeDialog()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		g.HandleTap()
	}

	g.advance()
	return nil
}

// advance runs a driver tick when a redraw is due and moves the marker. The
// marker follows the cursor even while hidden.
func (g *Game) advance() {
	if g.sched.take() {
		g.ctrl.Tick(g.ctx)
	}
	g.marker.step(g.ctrl.Chain().Current())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.begin(screen)
	g.ctrl.Render(g.canvas)
	if g.theme.Marker {
		g.marker.draw(g.canvas, g.theme.StrokeColor())
	}

	status := statusLine(g.ctrl.Chain(), g.taps, time.Since(g.started))
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	g := NewGame(ctx, opts)

	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle("Linked LAL - click to animate, O: theme, Esc/Q: quit")

	g.logger.Info("starting", "nodes", config.NodeCount, "width", g.opts.Width, "height", g.opts.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
