// Package capture turns a renderable surface into a raster and a semantic
// tree via an injected Renderer. The engine never renders anything itself;
// how rendering happens belongs entirely to the host UI framework.
package capture

import (
	"errors"
	"fmt"
	"image"

	"github.com/uiproof/uiproof/internal/config"
	"github.com/uiproof/uiproof/internal/semantic"
)

// Renderable is an opaque handle to the surface under test. The renderer
// decides what it means.
type Renderable any

// Renderer is the single boundary contract required from the host UI
// framework: produce a raster and a semantic tree for a surface under a
// given configuration. Implementations must block until rendering finishes.
type Renderer interface {
	Render(surface Renderable, cfg config.CaptureConfig) (image.Image, *semantic.Node, error)
}

// Error carries the renderer's diagnostic code alongside the failure. A
// capture is attempted exactly once; callers needing repetition call again.
type Error struct {
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("capture failed (%s): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("capture failed: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Service wraps a Renderer with the capture contract: blocking, one attempt,
// failures wrapped rather than panicking.
type Service struct {
	renderer Renderer
}

// NewService creates a capture service around the injected renderer.
func NewService(r Renderer) *Service {
	return &Service{renderer: r}
}

// CaptureImage renders the surface and returns its raster.
func (s *Service) CaptureImage(surface Renderable, cfg config.CaptureConfig) (image.Image, error) {
	img, _, err := s.render(surface, cfg)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, &Error{Code: "no-raster", Err: fmt.Errorf("renderer produced no image")}
	}
	return img, nil
}

// CaptureTree renders the surface and returns its semantic tree.
func (s *Service) CaptureTree(surface Renderable, cfg config.CaptureConfig) (*semantic.Node, error) {
	_, tree, err := s.render(surface, cfg)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, &Error{Code: "no-tree", Err: fmt.Errorf("renderer produced no semantic tree")}
	}
	return tree, nil
}

func (s *Service) render(surface Renderable, cfg config.CaptureConfig) (img image.Image, tree *semantic.Node, err error) {
	// A misbehaving renderer must surface as an error, never a panic in the
	// test process.
	defer func() {
		if r := recover(); r != nil {
			img, tree = nil, nil
			err = &Error{Code: "renderer-panic", Err: fmt.Errorf("%v", r)}
		}
	}()

	img, tree, err = s.renderer.Render(surface, cfg)
	if err != nil {
		var cerr *Error
		if errors.As(err, &cerr) {
			return nil, nil, err
		}
		return nil, nil, &Error{Err: err}
	}
	return img, tree, nil
}
