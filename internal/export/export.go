package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"
)

const pointsPerInch = 72.0

// Writer persists rendered certificates into the output directory. Existing
// files with the same name are silently overwritten; there is no temp file
// or atomic replace.
type Writer struct {
	dir string
	dpi float64
}

// NewWriter ensures the output directory exists before the first artifact is
// written.
func NewWriter(dir string, dpi float64) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Writer{dir: dir, dpi: dpi}, nil
}

// PNG writes the full 4-channel composite.
func (w *Writer) PNG(img image.Image, name string) (string, error) {
	path := filepath.Join(w.dir, name)
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("saving %s: %w", name, err)
	}
	return path, nil
}

// PDF writes the 3-channel composite onto a single page sized so the image
// prints at the writer's DPI.
func (w *Writer) PDF(img image.Image, name string) (string, error) {
	b := img.Bounds()
	pageW := float64(b.Dx()) / w.dpi * pointsPerInch
	pageH := float64(b.Dy()) / w.dpi * pointsPerInch

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", name, err)
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(name, opts, &buf)
	doc.ImageOptions(name, 0, 0, pageW, pageH, false, opts, 0, "")

	path := filepath.Join(w.dir, name)
	if err := doc.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}
