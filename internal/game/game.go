package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/darkwarren/internal/fov"
	"github.com/samdwyer/darkwarren/internal/gamedata"
	"github.com/samdwyer/darkwarren/internal/telemetry"
	"github.com/samdwyer/darkwarren/internal/ui"
	"github.com/samdwyer/darkwarren/internal/vision"
)

// Game wires the session, the visibility tracker, and the terminal
// together and runs the turn loop.
type Game struct {
	config   Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	tracker  *vision.Tracker
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		config:   cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")

	seed := g.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	registry, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}

	g.session = NewSession(ctx, g.config, rng, registry)

	oracle := fov.New(g.config.MapWidth, g.config.MapHeight)
	g.tracker = vision.NewTracker(g.session.Dungeon, oracle, g.config.FOVRadius, g.config.LightWalls)

	viewer := g.session.Viewer()
	if g.session.RoomCount() == 0 {
		// Degenerate but legal: an all-wall level. Park the viewer in
		// the middle so the screen shows something sensible.
		viewer.X = g.config.MapWidth / 2
		viewer.Y = g.config.MapHeight / 2
		initSpan.SetAttributes(
			attribute.String("warning", "no rooms generated, using fallback position"),
		)
	}
	initSpan.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("dungeon.rooms", g.session.RoomCount()),
		attribute.Int("game.entities", len(g.session.Entities)),
		attribute.Int("viewer.start_x", viewer.X),
		attribute.Int("viewer.start_y", viewer.Y),
	)
	initSpan.End()

	for g.running {
		g.tracker.Update(viewer.X, viewer.Y)
		g.renderer.Render(g.session.Dungeon, g.session.Entities, g.tracker)
		g.handleInput()
	}

	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput() {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.session.MoveViewer(0, -1)
	case tcell.KeyDown:
		g.session.MoveViewer(0, 1)
	case tcell.KeyLeft:
		g.session.MoveViewer(-1, 0)
	case tcell.KeyRight:
		g.session.MoveViewer(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		}
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
