package capture

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/uiproof/uiproof/internal/config"
	"github.com/uiproof/uiproof/internal/semantic"
)

type stubRenderer struct {
	img   image.Image
	tree  *semantic.Node
	err   error
	panic bool
	calls int
}

func (s *stubRenderer) Render(_ Renderable, _ config.CaptureConfig) (image.Image, *semantic.Node, error) {
	s.calls++
	if s.panic {
		panic("renderer exploded")
	}
	return s.img, s.tree, s.err
}

func testCfg() config.CaptureConfig {
	return config.CaptureConfig{
		Device: config.DeviceConfig{Size: config.ScreenNormal, Density: config.DensityXHDPI},
		Theme:  config.ThemeConfig{FontScale: config.FontNormal},
	}
}

func TestService_CaptureImage(t *testing.T) {
	want := image.NewRGBA(image.Rect(0, 0, 4, 4))
	stub := &stubRenderer{img: want, tree: &semantic.Node{Role: "window"}}

	got, err := NewService(stub).CaptureImage("surface", testCfg())
	if err != nil {
		t.Fatalf("CaptureImage: %v", err)
	}
	if got != want {
		t.Error("CaptureImage must return the renderer's raster")
	}
}

func TestService_CaptureTree(t *testing.T) {
	tree := &semantic.Node{Role: "window"}
	stub := &stubRenderer{img: image.NewRGBA(image.Rect(0, 0, 1, 1)), tree: tree}

	got, err := NewService(stub).CaptureTree("surface", testCfg())
	if err != nil {
		t.Fatalf("CaptureTree: %v", err)
	}
	if got != tree {
		t.Error("CaptureTree must return the renderer's tree")
	}
}

func TestService_RendererErrorWrapped(t *testing.T) {
	stub := &stubRenderer{err: fmt.Errorf("surface not attached")}

	_, err := NewService(stub).CaptureImage("surface", testCfg())
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("error %v must be a capture error", err)
	}
}

func TestService_RendererErrorCodePreserved(t *testing.T) {
	orig := &Error{Code: "E42", Err: fmt.Errorf("unsupported API path")}
	stub := &stubRenderer{err: orig}

	_, err := NewService(stub).CaptureImage("surface", testCfg())
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("error %v must be a capture error", err)
	}
	if cerr.Code != "E42" {
		t.Errorf("diagnostic code = %q, want %q (surfaced verbatim)", cerr.Code, "E42")
	}
}

func TestService_RendererPanicBecomesError(t *testing.T) {
	stub := &stubRenderer{panic: true}

	_, err := NewService(stub).CaptureImage("surface", testCfg())
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("panic must surface as a capture error, got %v", err)
	}
	if cerr.Code != "renderer-panic" {
		t.Errorf("code = %q, want renderer-panic", cerr.Code)
	}
}

func TestService_ExactlyOneAttempt(t *testing.T) {
	stub := &stubRenderer{err: fmt.Errorf("flaky")}
	svc := NewService(stub)

	svc.CaptureImage("surface", testCfg())
	if stub.calls != 1 {
		t.Errorf("renderer called %d times, want exactly 1 (no retries)", stub.calls)
	}
}

func TestService_MissingOutputs(t *testing.T) {
	stub := &stubRenderer{img: nil, tree: nil}
	svc := NewService(stub)

	if _, err := svc.CaptureImage("surface", testCfg()); err == nil {
		t.Error("nil raster must be an error")
	}
	if _, err := svc.CaptureTree("surface", testCfg()); err == nil {
		t.Error("nil tree must be an error")
	}
}

func TestFixtureRenderer_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	imgPath := filepath.Join(dir, "screen.png")
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	f, err := os.Create(imgPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	treePath := filepath.Join(dir, "tree.yaml")
	tree := &semantic.Node{Role: "window", Bounds: semantic.Rect{Left: 0, Top: 0, Right: 8, Bottom: 8}}
	if err := semantic.SaveTree(treePath, tree); err != nil {
		t.Fatal(err)
	}

	r := &FixtureRenderer{ImagePath: imgPath, TreePath: treePath}
	gotImg, gotTree, err := r.Render(nil, testCfg())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if gotImg.Bounds().Dx() != 8 {
		t.Error("fixture image not loaded")
	}
	if gotTree == nil || gotTree.Role != "window" {
		t.Errorf("fixture tree = %+v", gotTree)
	}
}

func TestFixtureRenderer_MissingImage(t *testing.T) {
	r := &FixtureRenderer{ImagePath: filepath.Join(t.TempDir(), "absent.png")}
	_, _, err := r.Render(nil, testCfg())
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Code != "fixture-open" {
		t.Errorf("err = %v, want fixture-open capture error", err)
	}
}
