package capture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: byte(x), G: byte(y), B: 0, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestFileCapturerReplaysSameImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "still.png")
	writeTestPNG(t, path, 12, 9)

	cap, err := NewFileCapturer(path)
	if err != nil {
		t.Fatalf("NewFileCapturer: %v", err)
	}

	first, err := cap.CaptureFrame()
	if err != nil {
		t.Fatalf("CaptureFrame: %v", err)
	}
	if first.Width != 12 || first.Height != 9 {
		t.Fatalf("dims = %dx%d, want 12x9", first.Width, first.Height)
	}

	second, err := cap.CaptureFrame()
	if err != nil {
		t.Fatalf("CaptureFrame (2nd): %v", err)
	}
	if len(first.Pixels) != len(second.Pixels) {
		t.Fatalf("pixel length differs between calls")
	}
	for i := range first.Pixels {
		if first.Pixels[i] != second.Pixels[i] {
			t.Fatalf("byte %d differs between successive captures", i)
		}
	}

	// Mutating one capture's buffer must not affect the next.
	first.Pixels[0] = ^first.Pixels[0]
	third, err := cap.CaptureFrame()
	if err != nil {
		t.Fatalf("CaptureFrame (3rd): %v", err)
	}
	if third.Pixels[0] != second.Pixels[0] {
		t.Fatalf("mutating a returned frame leaked into the capturer's stored copy")
	}
}
