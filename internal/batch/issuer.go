package batch

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/0xy43/certissue/internal/certify"
	"github.com/0xy43/certissue/internal/export"
	"github.com/0xy43/certissue/internal/render"
	"github.com/0xy43/certissue/internal/roster"
)

// Test-mode artifacts use a fixed base name so repeated dry runs overwrite
// each other instead of piling up.
const testBaseName = "TEST"

// Terminal messages printed on the success paths.
const (
	MsgTestDone = "TEST certificates created successfully"
	MsgFullDone = "Certificates created successfully"
)

// ErrEmptyRoster is returned when test mode has nothing to issue.
var ErrEmptyRoster = errors.New("roster must contain at least one entry")

// Issuer walks the roster and writes one PNG/PDF pair per issued entry.
// Any failure aborts the batch, leaving already-written files in place.
type Issuer struct {
	req    *certify.Request
	writer *export.Writer
	log    zerolog.Logger
}

func New(req *certify.Request, writer *export.Writer, log zerolog.Logger) *Issuer {
	return &Issuer{req: req, writer: writer, log: log}
}

// Run issues certificates for the roster according to the request mode and
// returns the terminal success message. The template and font are loaded
// once; every iteration composites onto its own fresh copy.
func (is *Issuer) Run(entries []roster.Entry, fontsDir string) (string, error) {
	if is.req.Mode == certify.ModeTest && len(entries) == 0 {
		return "", ErrEmptyRoster
	}

	template, err := render.LoadTemplate(is.req.TemplatePath)
	if err != nil {
		return "", err
	}
	is.log.Debug().Str("template", is.req.TemplatePath).Msg("template loaded")

	face, err := render.LoadFace(filepath.Join(fontsDir, is.req.FontName), is.req.FontSize)
	if err != nil {
		return "", err
	}
	defer face.Close()
	is.log.Debug().Str("font", is.req.FontName).Int("size", is.req.FontSize).Msg("font face ready")

	var qr image.Image
	if is.req.QR.Enabled() {
		qr, err = render.Stamp(is.req.QR.Payload, is.req.QR.Size)
		if err != nil {
			return "", err
		}
	}

	ink := color.NRGBA{
		R: uint8(is.req.Color.R),
		G: uint8(is.req.Color.G),
		B: uint8(is.req.Color.B),
		A: 0xff,
	}

	issue := func(entry roster.Entry, pngName, pdfName string) error {
		composite := render.Compose(template, face, entry.FullName(), is.req.X, is.req.Y, ink, qr, is.req.QR.X, is.req.QR.Y)
		pngPath, err := is.writer.PNG(composite, pngName)
		if err != nil {
			return err
		}
		pdfPath, err := is.writer.PDF(render.ToRGB(composite), pdfName)
		if err != nil {
			return err
		}
		is.log.Info().
			Str("name", entry.FullName()).
			Str("png", pngPath).
			Str("pdf", pdfPath).
			Msg("certificate issued")
		return nil
	}

	if is.req.Mode == certify.ModeTest {
		if err := issue(entries[0], testBaseName+".png", testBaseName+".pdf"); err != nil {
			return "", err
		}
		return MsgTestDone, nil
	}

	for _, entry := range entries {
		name := entry.FullName()
		if err := issue(entry, name+".PNG", name+".pdf"); err != nil {
			return "", err
		}
	}
	return MsgFullDone, nil
}
