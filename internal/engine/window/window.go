// Package window creates the OS window and OpenGL 4.1 core context and
// feeds its events to the input package. Two backends are available: SDL2
// (default) and GLFW.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/robot-demo/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names accepted by New.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window is an open window with a current GL context.
type Window interface {
	// PollEvents appends the events received since the last call to dst.
	PollEvents(dst []input.Event) []input.Event
	// SwapBuffers presents the back buffer.
	SwapBuffers()
	// DrawableSize returns the framebuffer size in pixels.
	DrawableSize() (width, height int)
	// Elapsed returns seconds since the window was created.
	Elapsed() float64
	SetTitle(title string)
	Close()
}

// New opens a window with the named backend.
func New(backend string, cfg Config) (Window, error) {
	switch backend {
	case BackendSDL, "":
		w, err := newSDL(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	case BackendGLFW:
		w, err := newGLFW(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown window backend %q", backend)
	}
}
