package colorscale

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/pkg/errors"
	"github.com/vdobler/colorscale/rc"
)

// ErrInvalidInput is wrapped by all errors caused by invalid arguments.
var ErrInvalidInput = errors.New("colorscale: invalid input")

func invalidf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

// Env carries the configuration and the logger a call runs with.
type Env struct {
	// Config holds the defaults; nil means rc.Global().
	Config *rc.Config

	// Logger receives warnings and debug output; nil means slog.Default().
	Logger *slog.Logger
}

// env is the per-call state shared by the resolution stages.
type env struct {
	cfg      *rc.Config
	log      *slog.Logger
	warnings []string
}

func newEnv(e Env) *env {
	log := e.Logger
	if log == nil {
		log = slog.Default()
	}
	return &env{cfg: rc.Or(e.Config), log: log}
}

func (e *env) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	e.warnings = append(e.warnings, msg)
	e.log.Warn(msg)
}

func (e *env) debug(stage string, args ...any) {
	e.log.Debug(stage, args...)
}

// discardLogger swallows records of warnings which are reported later.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func have(x float64) bool {
	return !math.IsNaN(x)
}

func boolPtr(b bool) *bool { return &b }
