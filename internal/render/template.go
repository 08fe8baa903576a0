package render

import (
	"image"

	"github.com/disintegration/imaging"
)

// LoadTemplate decodes the certificate background once per run. The decoded
// image is shared read-only across iterations; Compose copies it instead of
// drawing on it.
func LoadTemplate(path string) (image.Image, error) {
	return imaging.Open(path)
}

// TemplateBounds returns the pixel width and height of an image file. Used by
// validation before any rendering starts.
func TemplateBounds(path string) (int, int, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return 0, 0, err
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}
