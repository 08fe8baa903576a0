package certify

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func writeFontsDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("stub"), 0o644))
	}
	return dir
}

// baseParams builds a parameter set that passes every check against a
// 200x100 template.
func baseParams(t *testing.T) (Params, string) {
	t.Helper()
	tpl := writeTemplate(t, t.TempDir(), "cert.png", 200, 100)
	fonts := writeFontsDir(t, "FreeMono.ttf", "FreeSans.ttf")
	return Params{
		X:            10,
		Y:            20,
		TemplatePath: tpl,
		FontName:     "FreeMono.ttf",
		FontSize:     24,
		RosterPath:   "people.csv",
		TestMode:     "ON",
	}, fonts
}

func TestValidateMode(t *testing.T) {
	p, fonts := baseParams(t)

	for _, mode := range []string{"ON", "on", "On", "OFF", "off", "oFf"} {
		p.TestMode = mode
		_, verr := Validate(p, fonts)
		assert.Nil(t, verr, "mode %q should pass", mode)
	}
	for _, mode := range []string{"", "maybe", "0", "true"} {
		p.TestMode = mode
		_, verr := Validate(p, fonts)
		require.NotNil(t, verr, "mode %q should fail", mode)
		assert.Equal(t, ExitBadMode, verr.Code)
		assert.Equal(t, "Test mode must either be ON or OFF", verr.Message)
	}
}

func TestValidateModeSelectsIssueMode(t *testing.T) {
	p, fonts := baseParams(t)

	p.TestMode = "on"
	req, verr := Validate(p, fonts)
	require.Nil(t, verr)
	assert.Equal(t, ModeTest, req.Mode)

	p.TestMode = "off"
	req, verr = Validate(p, fonts)
	require.Nil(t, verr)
	assert.Equal(t, ModeFull, req.Mode)
}

func TestValidateFont(t *testing.T) {
	p, fonts := baseParams(t)

	p.FontName = "Comic.ttf"
	_, verr := Validate(p, fonts)
	require.NotNil(t, verr)
	assert.Equal(t, ExitUnknownFont, verr.Code)
	assert.Contains(t, verr.Message, "Available fonts:")
	assert.Contains(t, verr.Message, "FreeMono.ttf")
	assert.Contains(t, verr.Message, "FreeSans.ttf")

	p.FontName = "FreeSans.ttf"
	_, verr = Validate(p, fonts)
	assert.Nil(t, verr)
}

func TestValidateImageExtension(t *testing.T) {
	p, fonts := baseParams(t)
	dir := t.TempDir()

	for _, name := range []string{"cert.PNG", "cert.png", "cert.Png"} {
		p.TemplatePath = writeTemplate(t, dir, name, 200, 100)
		_, verr := Validate(p, fonts)
		assert.Nil(t, verr, "extension of %q should pass", name)
	}

	p.TemplatePath = "cert.jpg"
	_, verr := Validate(p, fonts)
	require.NotNil(t, verr)
	assert.Equal(t, ExitBadImageExt, verr.Code)
	assert.Equal(t, "Certification is not a .PNG file", verr.Message)
}

func TestValidateUnreadableTemplate(t *testing.T) {
	p, fonts := baseParams(t)

	p.TemplatePath = filepath.Join(t.TempDir(), "gone.png")
	_, verr := Validate(p, fonts)
	require.NotNil(t, verr)
	assert.Equal(t, ExitRunFailure, verr.Code)
}

func TestValidateCoordinates(t *testing.T) {
	p, fonts := baseParams(t)

	// both ends inclusive against the 200x100 template
	for _, c := range []struct{ x, y int }{{0, 0}, {200, 100}, {200, 0}, {0, 100}, {37, 64}} {
		p.X, p.Y = c.x, c.y
		_, verr := Validate(p, fonts)
		assert.Nil(t, verr, "(%d,%d) should pass", c.x, c.y)
	}
	for _, c := range []struct{ x, y int }{{-1, 0}, {0, -1}, {201, 0}, {0, 101}} {
		p.X, p.Y = c.x, c.y
		_, verr := Validate(p, fonts)
		require.NotNil(t, verr, "(%d,%d) should fail", c.x, c.y)
		assert.Equal(t, ExitBadCoordinates, verr.Code)
		assert.Equal(t, "Invalid (x,y) coordinates", verr.Message)
	}
}

func TestValidateRosterExtension(t *testing.T) {
	p, fonts := baseParams(t)

	for _, name := range []string{"people.csv", "people.CSV", "people.Csv"} {
		p.RosterPath = name
		_, verr := Validate(p, fonts)
		assert.Nil(t, verr, "roster %q should pass", name)
	}

	p.RosterPath = "people.xlsx"
	_, verr := Validate(p, fonts)
	require.NotNil(t, verr)
	assert.Equal(t, ExitBadRosterExt, verr.Code)
	assert.Equal(t, "CSV file is not a .csv file", verr.Message)
}

func TestValidateColors(t *testing.T) {
	p, fonts := baseParams(t)

	p.R, p.G, p.B = 0, 255, 128
	_, verr := Validate(p, fonts)
	assert.Nil(t, verr)

	cases := []struct {
		r, g, b int
		channel string
	}{
		{256, 0, 0, "Red"},
		{-1, 0, 0, "Red"},
		{0, 256, 0, "Green"},
		{0, -1, 0, "Green"},
		{0, 0, 256, "Blue"},
		{0, 0, -1, "Blue"},
	}
	for _, c := range cases {
		p.R, p.G, p.B = c.r, c.g, c.b
		_, verr := Validate(p, fonts)
		require.NotNil(t, verr, "(%d,%d,%d) should fail", c.r, c.g, c.b)
		assert.Equal(t, ExitBadColor, verr.Code)
		assert.Equal(t, c.channel+" must have value of range [0,255]", verr.Message)
	}
}

func TestValidateFirstViolationWins(t *testing.T) {
	p, fonts := baseParams(t)

	// bad mode and bad color at once: the mode check runs first
	p.TestMode = "maybe"
	p.R = 999
	_, verr := Validate(p, fonts)
	require.NotNil(t, verr)
	assert.Equal(t, ExitBadMode, verr.Code)
}

func TestValidateQROptions(t *testing.T) {
	p, fonts := baseParams(t)

	// disabled by default
	req, verr := Validate(p, fonts)
	require.Nil(t, verr)
	assert.False(t, req.QR.Enabled())

	p.QRPayload = "https://example.org/verify/1"
	p.QRSize = 64
	p.QRX, p.QRY = 120, 10
	req, verr = Validate(p, fonts)
	require.Nil(t, verr)
	assert.True(t, req.QR.Enabled())
	assert.Equal(t, 64, req.QR.Size)

	bad := []Params{p, p, p}
	bad[0].QRSize = 0
	bad[1].QRX = 201
	bad[2].QRY = -1
	for i, bp := range bad {
		_, verr = Validate(bp, fonts)
		require.NotNil(t, verr, "case %d should fail", i)
		assert.Equal(t, ExitBadCoordinates, verr.Code)
		assert.Equal(t, "Invalid QR options", verr.Message)
	}
}
