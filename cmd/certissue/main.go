package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/0xy43/certissue/internal/batch"
	"github.com/0xy43/certissue/internal/certify"
	"github.com/0xy43/certissue/internal/config"
	"github.com/0xy43/certissue/internal/export"
	"github.com/0xy43/certissue/internal/logging"
	"github.com/0xy43/certissue/internal/roster"
)

// Flags that must be set explicitly on every run.
var requiredFlagNames = []string{"x", "y", "i", "s", "fi"}

func main() {
	os.Exit(run())
}

func run() int {
	var p certify.Params
	flag.IntVar(&p.X, "x", 0, "x-axis point of the name on the template")
	flag.IntVar(&p.Y, "y", 0, "y-axis point of the name on the template")
	flag.StringVar(&p.TemplatePath, "i", "", "certification template file (.PNG)")
	flag.StringVar(&p.FontName, "fo", "FreeMono.ttf", "font file name from the fonts directory")
	flag.IntVar(&p.FontSize, "s", 0, "font size")
	flag.StringVar(&p.RosterPath, "fi", "", "roster CSV file with First name/Last name columns")
	flag.StringVar(&p.TestMode, "t", "ON", "test mode, either ON or OFF")
	flag.IntVar(&p.R, "r", 0, "red color value [0,255]")
	flag.IntVar(&p.G, "g", 0, "green color value [0,255]")
	flag.IntVar(&p.B, "b", 0, "blue color value [0,255]")
	flag.StringVar(&p.QRPayload, "q", "", "optional QR payload stamped on each certificate")
	flag.IntVar(&p.QRSize, "qs", 160, "QR edge length in pixels")
	flag.IntVar(&p.QRX, "qx", 0, "QR x-axis point")
	flag.IntVar(&p.QRY, "qy", 0, "QR y-axis point")
	flag.Parse()

	if missing := missingFlags(); len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "missing required flags: %s\n", strings.Join(missing, ", "))
		flag.Usage()
		return certify.ExitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return certify.ExitUsage
	}
	log := logging.Setup(cfg.LogLevel)

	req, verr := certify.Validate(p, cfg.FontsDir)
	if verr != nil {
		fmt.Fprintln(os.Stderr, verr.Message)
		return verr.Code
	}

	entries, count, err := roster.Load(p.RosterPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return certify.ExitRosterData
	}
	log.Debug().Int("entries", count).Str("roster", p.RosterPath).Msg("roster loaded")

	writer, err := export.NewWriter(cfg.OutputDir, cfg.DPI)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return certify.ExitRunFailure
	}

	msg, err := batch.New(req, writer, log).Run(entries, cfg.FontsDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, batch.ErrEmptyRoster) {
			return certify.ExitRosterData
		}
		return certify.ExitRunFailure
	}
	fmt.Println(msg)
	return certify.ExitOK
}

// missingFlags reports required flags the user did not set. Relying on zero
// values is not enough: -x 0 is a legal coordinate.
func missingFlags() []string {
	seen := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	var missing []string
	for _, name := range requiredFlagNames {
		if !seen[name] {
			missing = append(missing, "-"+name)
		}
	}
	return missing
}
