// Package golden stores accepted reference screenshots on the filesystem,
// keyed by test name and capture configuration. The store has no cache and
// no locking: every call touches storage, and callers that parallelize
// writers on the same path must serialize access themselves.
package golden

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/uiproof/uiproof/internal/config"
)

// ErrNotFound is returned by Load when no golden exists for the requested
// test name and configuration.
var ErrNotFound = errors.New("golden not found")

// Store maps (test name, configuration) to files under Root.
type Store struct {
	Root string
}

// NewStore creates a store rooted at dir. The directory itself is created
// lazily on first Save.
func NewStore(dir string) *Store {
	return &Store{Root: dir}
}

// Path returns the canonical location for a golden:
// <root>/<size>_<density>/<light|dark>/<testName>.png.
// Equal inputs always yield equal paths; changing any config axis that the
// layout encodes changes the path.
func (s *Store) Path(testName string, cfg config.CaptureConfig) string {
	return filepath.Join(s.Root, cfg.Device.Token(), cfg.Theme.Mode(), testName+".png")
}

// DiffPath returns where a failure diff artifact is written, next to the
// golden it failed against.
func (s *Store) DiffPath(testName string, cfg config.CaptureConfig) string {
	return filepath.Join(s.Root, cfg.Device.Token(), cfg.Theme.Mode(), testName+"_diff.png")
}

// Exists reports whether a golden is present for the test and config.
func (s *Store) Exists(testName string, cfg config.CaptureConfig) bool {
	_, err := os.Stat(s.Path(testName, cfg))
	return err == nil
}

// Load reads and decodes the golden for the test and config. A missing
// artifact yields ErrNotFound; decode failures propagate unchanged.
func (s *Store) Load(testName string, cfg config.CaptureConfig) (image.Image, error) {
	path := s.Path(testName, cfg)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open golden: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode golden %s: %w", path, err)
	}
	return img, nil
}

// Save writes img as the golden for the test and config, creating parent
// directories as needed and overwriting any prior artifact wholesale.
func (s *Store) Save(testName string, img image.Image, cfg config.CaptureConfig) error {
	return s.writePNG(s.Path(testName, cfg), img)
}

// SaveDiff writes a diff visualization beside the golden for triage.
func (s *Store) SaveDiff(testName string, img image.Image, cfg config.CaptureConfig) error {
	return s.writePNG(s.DiffPath(testName, cfg), img)
}

func (s *Store) writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode artifact %s: %w", path, err)
	}
	return f.Close()
}
