// Package codec adapts the image libraries behind the Codec port.
// Decoding goes through image.Decode with the WebP format registered via
// golang.org/x/image/webp; encoding uses the standard PNG encoder.
package codec

import (
	"fmt"
	"image"
	"image/png"
	"os"

	_ "golang.org/x/image/webp"
)

type ImageCodec struct {
	// Level is the zlib effort applied to every encode. It is a run-wide
	// tuning constant, not exposed on the CLI.
	Level png.CompressionLevel
}

func New() ImageCodec {
	return ImageCodec{Level: png.DefaultCompression}
}

func (c ImageCodec) DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

func (c ImageCodec) EncodeFile(img image.Image, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	encoder := &png.Encoder{CompressionLevel: c.Level}
	if err := encoder.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return out.Close()
}
