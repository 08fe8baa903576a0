package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Compose renders one certificate. The shared template is copied onto a
// fresh base, the name (and optional QR stamp) is drawn onto a fully
// transparent overlay, and the overlay is alpha-blended over the base.
// Text that runs past the image bounds is clipped by the destination, never
// wrapped or truncated.
func Compose(template image.Image, face font.Face, text string, x, y int, ink color.NRGBA, qr image.Image, qrX, qrY int) *image.NRGBA {
	b := template.Bounds()
	base := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(base, base.Bounds(), template, b.Min, draw.Src)

	overlay := image.NewNRGBA(base.Bounds())
	drawText(overlay, face, text, x, y, ink)
	if qr != nil {
		draw.Draw(overlay, qr.Bounds().Sub(qr.Bounds().Min).Add(image.Pt(qrX, qrY)), qr, qr.Bounds().Min, draw.Src)
	}

	draw.Draw(base, base.Bounds(), overlay, image.Point{}, draw.Over)
	return base
}

// drawText anchors (x, y) at the top-left of the glyph box. The drawer dot
// sits on the baseline, so it is pushed down by the face ascent.
func drawText(dst draw.Image, face font.Face, text string, x, y int, ink color.NRGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// ToRGB drops the alpha channel the way the print export expects: channel
// values are kept as-is rather than blended against a background.
func ToRGB(img *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}
