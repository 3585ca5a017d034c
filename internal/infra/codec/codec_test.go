package codec

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeFileRoundTrips(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.png")

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	if err := New().EncodeFile(img, target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(target)
	if err != nil {
		t.Fatalf("expected target file: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 8 || decoded.Bounds().Dy() != 8 {
		t.Fatalf("unexpected bounds: %v", decoded.Bounds())
	}
}

func TestEncodeFileFailsOnUnwritablePath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	target := filepath.Join(t.TempDir(), "missing", "out.png")

	if err := New().EncodeFile(img, target); err == nil {
		t.Fatalf("expected error for unwritable path")
	}
}

func TestDecodeFileRejectsMalformedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.webp")
	if err := os.WriteFile(path, []byte("this is not an image"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if _, err := New().DecodeFile(path); err == nil {
		t.Fatalf("expected decode error for malformed input")
	}
}

func TestDecodeFileMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.webp")

	if _, err := New().DecodeFile(path); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
