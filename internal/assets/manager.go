package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
)

var ErrEmptyPath = errors.New("asset path is empty")

// DecodeImage reads and decodes the sprite at path.
// The error always names the path so a missing asset is easy to spot.
func DecodeImage(path string) (image.Image, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("image %q has no pixels", path)
	}
	return img, nil
}
