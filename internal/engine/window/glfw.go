package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/robot-demo/internal/engine/input"
	"github.com/Faultbox/robot-demo/internal/logger"
)

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyW:      input.KeyW,
	glfw.KeyA:      input.KeyA,
	glfw.KeyS:      input.KeyS,
	glfw.KeyD:      input.KeyD,
	glfw.KeyUp:     input.KeyUp,
	glfw.KeyDown:   input.KeyDown,
	glfw.Key1:      input.Key1,
	glfw.Key2:      input.Key2,
	glfw.Key3:      input.Key3,
	glfw.KeyF1:     input.KeyF1,
	glfw.KeyF2:     input.KeyF2,
	glfw.KeyF12:    input.KeyF12,
	glfw.KeyEscape: input.KeyEscape,
}

// glfwWindow is a GLFW window. GLFW delivers input through callbacks, which
// run inside glfw.PollEvents and queue events for the next PollEvents call.
type glfwWindow struct {
	handle  *glfw.Window
	pending []input.Event
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, boolToInt(true))

	monitor := (*glfw.Monitor)(nil)
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	w := &glfwWindow{handle: handle}

	handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k, ok := glfwKeys[key]
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			w.pending = append(w.pending, input.Event{Type: input.EventKeyDown, Key: k})
		case glfw.Repeat:
			w.pending = append(w.pending, input.Event{Type: input.EventKeyDown, Key: k, Repeat: true})
		case glfw.Release:
			w.pending = append(w.pending, input.Event{Type: input.EventKeyUp, Key: k})
		}
	})
	handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.pending = append(w.pending, input.Event{Type: input.EventMouseMove, MouseX: x, MouseY: y})
	})
	handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.pending = append(w.pending, input.Event{Type: input.EventWindowResize, Width: width, Height: height})
	})

	glfw.SetTime(0)
	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func (w *glfwWindow) PollEvents(dst []input.Event) []input.Event {
	glfw.PollEvents()
	dst = append(dst, w.pending...)
	w.pending = w.pending[:0]
	if w.handle.ShouldClose() {
		dst = append(dst, input.Event{Type: input.EventQuit})
	}
	return dst
}

func (w *glfwWindow) SwapBuffers() {
	w.handle.SwapBuffers()
}

func (w *glfwWindow) DrawableSize() (int, int) {
	return w.handle.GetFramebufferSize()
}

func (w *glfwWindow) Elapsed() float64 {
	return glfw.GetTime()
}

func (w *glfwWindow) SetTitle(title string) {
	w.handle.SetTitle(title)
}

func (w *glfwWindow) Close() {
	logger.Info("closing window")
	w.handle.Destroy()
	glfw.Terminate()
}
