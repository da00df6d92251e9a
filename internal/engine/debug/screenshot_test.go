package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

// twoRows is a 1x2 framebuffer: bottom row red, top row green.
var twoRows = []byte{
	255, 0, 0, 255,
	0, 255, 0, 255,
}

func TestFlipRGBA(t *testing.T) {
	img, err := FlipRGBA(twoRows, 1, 2)
	if err != nil {
		t.Fatalf("FlipRGBA: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("top pixel should be green, got %v", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel should be red, got %v", got)
	}

	if _, err := FlipRGBA(twoRows, 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestSavePixels(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		decode func(*os.File) (image.Image, error)
	}{
		{"frame.png", func(f *os.File) (image.Image, error) { return png.Decode(f) }},
		{"frame.BMP", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "out", tt.name)
			if err := SavePixels(path, twoRows, 1, 2); err != nil {
				t.Fatalf("SavePixels: %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()

			img, err := tt.decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			r, g, _, _ := img.At(0, 0).RGBA()
			if r != 0 || g != 0xffff {
				t.Errorf("top pixel should be green, got r=%d g=%d", r, g)
			}
		})
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "uniforms")

	path, err := sc.CaptureFromPixels(twoRows, 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "uniforms_") || filepath.Ext(path) != ".png" {
		t.Errorf("unexpected filename %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("screenshot not written: %v", err)
	}
}
