// Package game implements the main loop: it owns the window, renderer and
// input handler and drives the demo state once per frame.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/robot-demo/internal/config"
	"github.com/Faultbox/robot-demo/internal/demo"
	"github.com/Faultbox/robot-demo/internal/engine/debug"
	"github.com/Faultbox/robot-demo/internal/engine/draw"
	"github.com/Faultbox/robot-demo/internal/engine/input"
	"github.com/Faultbox/robot-demo/internal/engine/renderer"
	"github.com/Faultbox/robot-demo/internal/engine/window"
	"github.com/Faultbox/robot-demo/internal/logger"
)

// Game is the main game instance.
type Game struct {
	config   *config.Config
	running  bool
	window   window.Window
	renderer *renderer.Renderer
	input    *input.Input
	state    *demo.State
	shots    *debug.ScreenshotCapture

	events []input.Event
	draws  draw.List
}

// New creates the window, GL context, renderer and initial demo state.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("backend", cfg.Window.Backend),
	)

	format, err := debug.ParseFormat(cfg.Screenshot.Format)
	if err != nil {
		return nil, err
	}

	g := &Game{
		config: cfg,
		input:  input.New(input.DefaultBindings()),
		shots:  debug.NewScreenshotCapture(cfg.Screenshot.Dir, "robot", format, cfg.Screenshot.MaxWidth),
	}

	g.state, err = demo.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create demo state: %w", err)
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(cfg.Window.Backend, window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		FOV:    cfg.Camera.FOV,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	logger.Info("game initialized successfully")
	return g, nil
}

// Run starts the main loop and returns when the window is closed or quit
// is pressed.
func (g *Game) Run() error {
	g.running = true

	// Timing
	lastTime := g.window.Elapsed()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := g.window.Elapsed()
		dt := float32(now - lastTime)
		lastTime = now

		// 1. Process input
		g.events = g.window.PollEvents(g.events[:0])
		in := g.input.Update(g.events)
		if in.Resized {
			g.renderer.Resize(in.Width, in.Height)
		}

		// 2. Update demo state
		req := g.state.Update(&in, now, dt)
		if req.Quit {
			g.running = false
			break
		}
		if err := g.state.Prepare(g.renderer); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		if err := g.render(now); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if req.Screenshot {
			g.screenshot()
		}

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Int("meshes", g.renderer.MeshAllocations()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// render draws the current frame.
func (g *Game) render(now float64) error {
	frame := g.state.Frame(now, g.draws)
	g.draws = frame.Draws

	g.renderer.Begin(frame.Clear)
	if err := g.renderer.Draw(frame.Draws, frame.View, &g.state.Lights); err != nil {
		return err
	}
	g.renderer.End()
	return nil
}

// screenshot saves the back buffer. Failures are logged and do not stop
// the loop.
func (g *Game) screenshot() {
	pixels, width, height := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
