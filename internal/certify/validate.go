package certify

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/0xy43/certissue/internal/render"
)

// Params is the raw CLI input before validation.
type Params struct {
	X, Y         int
	TemplatePath string
	FontName     string
	FontSize     int
	RosterPath   string
	TestMode     string
	R, G, B      int
	QRPayload    string
	QRSize       int
	QRX, QRY     int
}

// Validate runs every check in fixed order and stops at the first violation.
// Nothing is written before this returns; the template is opened only to
// learn its bounds.
func Validate(p Params, fontsDir string) (*Request, *ValidationError) {
	mode, verr := checkMode(p.TestMode)
	if verr != nil {
		return nil, verr
	}
	if verr := checkFont(p.FontName, fontsDir); verr != nil {
		return nil, verr
	}
	if verr := checkImageExtension(p.TemplatePath); verr != nil {
		return nil, verr
	}
	width, height, verr := checkCoordinates(p.X, p.Y, p.TemplatePath)
	if verr != nil {
		return nil, verr
	}
	if verr := checkRosterExtension(p.RosterPath); verr != nil {
		return nil, verr
	}
	if verr := checkColors(p.R, p.G, p.B); verr != nil {
		return nil, verr
	}
	qr, verr := checkQR(p, width, height)
	if verr != nil {
		return nil, verr
	}

	return &Request{
		TemplatePath: p.TemplatePath,
		X:            p.X,
		Y:            p.Y,
		FontName:     p.FontName,
		FontSize:     p.FontSize,
		Color:        Color{R: p.R, G: p.G, B: p.B},
		Mode:         mode,
		QR:           qr,
	}, nil
}

func checkMode(s string) (Mode, *ValidationError) {
	switch strings.ToLower(s) {
	case "on":
		return ModeTest, nil
	case "off":
		return ModeFull, nil
	}
	return 0, &ValidationError{Code: ExitBadMode, Message: "Test mode must either be ON or OFF"}
}

// checkFont requires the exact file name to be present in the fonts
// directory. On a miss the error message is the directory listing, so the
// user can pick a valid name.
func checkFont(name, fontsDir string) *ValidationError {
	names, err := render.ListFonts(fontsDir)
	if err != nil {
		return &ValidationError{
			Code:    ExitUnknownFont,
			Message: fmt.Sprintf("cannot read fonts directory %s: %v", fontsDir, err),
		}
	}
	for _, n := range names {
		if n == name {
			return nil
		}
	}
	return &ValidationError{Code: ExitUnknownFont, Message: "Available fonts:\n" + strings.Join(names, "\n")}
}

// Only the suffix is inspected; the file content is left to the decoder.
func checkImageExtension(path string) *ValidationError {
	if strings.ToLower(filepath.Ext(path)) == ".png" {
		return nil
	}
	return &ValidationError{Code: ExitBadImageExt, Message: "Certification is not a .PNG file"}
}

// checkCoordinates opens the template to learn its bounds. Both ends are
// inclusive: text anchored exactly at an edge clips, and that is accepted.
func checkCoordinates(x, y int, templatePath string) (int, int, *ValidationError) {
	width, height, err := render.TemplateBounds(templatePath)
	if err != nil {
		return 0, 0, &ValidationError{
			Code:    ExitRunFailure,
			Message: fmt.Sprintf("cannot open template %s: %v", templatePath, err),
		}
	}
	if x < 0 || x > width || y < 0 || y > height {
		return 0, 0, &ValidationError{Code: ExitBadCoordinates, Message: "Invalid (x,y) coordinates"}
	}
	return width, height, nil
}

func checkRosterExtension(path string) *ValidationError {
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return nil
	}
	return &ValidationError{Code: ExitBadRosterExt, Message: "CSV file is not a .csv file"}
}

func checkColors(r, g, b int) *ValidationError {
	channels := []struct {
		name  string
		value int
	}{
		{"Red", r},
		{"Green", g},
		{"Blue", b},
	}
	for _, ch := range channels {
		if ch.value < 0 || ch.value > 255 {
			return &ValidationError{
				Code:    ExitBadColor,
				Message: fmt.Sprintf("%s must have value of range [0,255]", ch.name),
			}
		}
	}
	return nil
}

// The QR stamp follows the same inclusive bounds rule as the text anchor.
func checkQR(p Params, width, height int) (QROptions, *ValidationError) {
	if p.QRPayload == "" {
		return QROptions{}, nil
	}
	if p.QRSize <= 0 || p.QRX < 0 || p.QRX > width || p.QRY < 0 || p.QRY > height {
		return QROptions{}, &ValidationError{Code: ExitBadCoordinates, Message: "Invalid QR options"}
	}
	return QROptions{Payload: p.QRPayload, Size: p.QRSize, X: p.QRX, Y: p.QRY}, nil
}
