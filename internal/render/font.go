package render

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// ListFonts returns the file names available in the fonts directory.
// Subdirectories are skipped; no attempt is made to parse the files here.
func ListFonts(fontsDir string) ([]string, error) {
	entries, err := os.ReadDir(fontsDir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// LoadFace parses a TrueType/OpenType font file and builds a face at the
// given point size. The face renders at 72 DPI so the point size equals the
// pixel size on the template.
func LoadFace(path string, size int) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", filepath.Base(path), err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("building face for %s: %w", filepath.Base(path), err)
	}
	return face, nil
}
