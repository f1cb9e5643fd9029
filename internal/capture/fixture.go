package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/uiproof/uiproof/internal/config"
	"github.com/uiproof/uiproof/internal/semantic"
)

// FixtureRenderer replays a previously captured surface from disk: a PNG
// raster and an optional YAML semantic tree. It lets the CLI and tests
// exercise the engine without a live UI framework. The surface handle and
// configuration are ignored; the fixture IS the rendered output.
type FixtureRenderer struct {
	ImagePath string
	TreePath  string
}

// Render loads the fixture files. Either path may be empty, in which case
// that half of the output is nil.
func (f *FixtureRenderer) Render(_ Renderable, _ config.CaptureConfig) (image.Image, *semantic.Node, error) {
	var img image.Image
	if f.ImagePath != "" {
		file, err := os.Open(f.ImagePath)
		if err != nil {
			return nil, nil, &Error{Code: "fixture-open", Err: err}
		}
		img, err = png.Decode(file)
		file.Close()
		if err != nil {
			return nil, nil, &Error{Code: "fixture-decode", Err: fmt.Errorf("%s: %w", f.ImagePath, err)}
		}
	}

	var tree *semantic.Node
	if f.TreePath != "" {
		var err error
		tree, err = semantic.LoadTree(f.TreePath)
		if err != nil {
			return nil, nil, &Error{Code: "fixture-tree", Err: err}
		}
	}

	return img, tree, nil
}
