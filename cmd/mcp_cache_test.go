package cmd

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/uiproof/uiproof/internal/config"
	"github.com/uiproof/uiproof/internal/golden"
)

func cacheTestConfig() config.CaptureConfig {
	return config.CaptureConfig{
		Device: config.DeviceConfig{Size: config.ScreenNormal, Density: config.DensityMDPI},
		Theme:  config.ThemeConfig{FontScale: config.FontNormal},
	}
}

func solidImage(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestGoldenCache_ServesCachedWithinTTL(t *testing.T) {
	store := golden.NewStore(t.TempDir())
	cfg := cacheTestConfig()
	if err := store.Save("login", solidImage(4, 4, color.RGBA{R: 255, A: 255}), cfg); err != nil {
		t.Fatal(err)
	}

	cache := newGoldenCache(time.Minute)
	first, err := cache.load(store, "login", cfg)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}

	// Overwrite the stored golden with a different size. A cached entry
	// within TTL keeps returning the original.
	if err := store.Save("login", solidImage(8, 8, color.RGBA{G: 255, A: 255}), cfg); err != nil {
		t.Fatal(err)
	}

	second, err := cache.load(store, "login", cfg)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if second.Bounds() != first.Bounds() {
		t.Errorf("expected cached golden %v, got %v", first.Bounds(), second.Bounds())
	}
}

func TestGoldenCache_InvalidateForcesReload(t *testing.T) {
	store := golden.NewStore(t.TempDir())
	cfg := cacheTestConfig()
	if err := store.Save("login", solidImage(4, 4, color.RGBA{R: 255, A: 255}), cfg); err != nil {
		t.Fatal(err)
	}

	cache := newGoldenCache(time.Minute)
	if _, err := cache.load(store, "login", cfg); err != nil {
		t.Fatal(err)
	}

	if err := store.Save("login", solidImage(8, 8, color.RGBA{G: 255, A: 255}), cfg); err != nil {
		t.Fatal(err)
	}
	cache.invalidate("login", cfg)

	img, err := cache.load(store, "login", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("expected reloaded 8x8 golden, got %v", img.Bounds())
	}
}

func TestGoldenCache_ZeroTTLDisablesCaching(t *testing.T) {
	store := golden.NewStore(t.TempDir())
	cfg := cacheTestConfig()
	if err := store.Save("login", solidImage(4, 4, color.RGBA{R: 255, A: 255}), cfg); err != nil {
		t.Fatal(err)
	}

	cache := newGoldenCache(0)
	if _, err := cache.load(store, "login", cfg); err != nil {
		t.Fatal(err)
	}

	if err := store.Save("login", solidImage(8, 8, color.RGBA{G: 255, A: 255}), cfg); err != nil {
		t.Fatal(err)
	}

	img, err := cache.load(store, "login", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("expected fresh 8x8 golden with caching disabled, got %v", img.Bounds())
	}
}

func TestGoldenCache_KeyedByConfig(t *testing.T) {
	store := golden.NewStore(t.TempDir())
	light := cacheTestConfig()
	dark := cacheTestConfig()
	dark.Theme.DarkMode = true

	if err := store.Save("login", solidImage(4, 4, color.RGBA{A: 255}), light); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("login", solidImage(8, 8, color.RGBA{A: 255}), dark); err != nil {
		t.Fatal(err)
	}

	cache := newGoldenCache(time.Minute)
	lightImg, err := cache.load(store, "login", light)
	if err != nil {
		t.Fatal(err)
	}
	darkImg, err := cache.load(store, "login", dark)
	if err != nil {
		t.Fatal(err)
	}
	if lightImg.Bounds().Dx() != 4 || darkImg.Bounds().Dx() != 8 {
		t.Errorf("cache mixed up configs: light=%v dark=%v", lightImg.Bounds(), darkImg.Bounds())
	}
}

func TestGoldenCache_MissPropagatesNotFound(t *testing.T) {
	store := golden.NewStore(t.TempDir())
	cache := newGoldenCache(time.Minute)

	_, err := cache.load(store, "absent", cacheTestConfig())
	if !errors.Is(err, golden.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGoldenCache_InvalidateAll(t *testing.T) {
	store := golden.NewStore(t.TempDir())
	cfg := cacheTestConfig()
	if err := store.Save("login", solidImage(4, 4, color.RGBA{A: 255}), cfg); err != nil {
		t.Fatal(err)
	}

	cache := newGoldenCache(time.Minute)
	if _, err := cache.load(store, "login", cfg); err != nil {
		t.Fatal(err)
	}

	if err := store.Save("login", solidImage(8, 8, color.RGBA{A: 255}), cfg); err != nil {
		t.Fatal(err)
	}
	cache.invalidateAll()

	img, err := cache.load(store, "login", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("expected reload after invalidateAll, got %v", img.Bounds())
	}
}
