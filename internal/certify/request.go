package certify

// Mode selects how much of the roster is issued.
type Mode int

const (
	// ModeTest issues only the first roster entry under the fixed TEST base name.
	ModeTest Mode = iota
	// ModeFull issues every roster entry under its own name.
	ModeFull
)

// Color is the ink color for the overlay text, each channel in [0,255].
type Color struct {
	R, G, B int
}

// QROptions places an optional verification QR code on each certificate.
// A zero Payload disables the stamp.
type QROptions struct {
	Payload string
	Size    int
	X, Y    int
}

// Enabled reports whether a QR stamp was requested.
func (q QROptions) Enabled() bool { return q.Payload != "" }

// Request carries the validated parameters for one run. It is built once by
// Validate and never mutated afterwards.
type Request struct {
	TemplatePath string
	X, Y         int
	FontName     string
	FontSize     int
	Color        Color
	Mode         Mode
	QR           QROptions
}
