package render

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// Stamp generates the verification QR code and scales it to the requested
// edge length. The encoder output is decoded back to validate it before use.
func Stamp(payload string, size int) (image.Image, error) {
	pngBytes, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, err
	}
	if img.Bounds().Dx() == size && img.Bounds().Dy() == size {
		return img, nil
	}
	return imaging.Resize(img, size, size, imaging.Lanczos), nil
}
