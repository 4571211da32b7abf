package logger

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Prm groups Logger's parameters.
type Prm struct {
	level     zapcore.Level
	encoding  string
	timestamp *bool
}

const (
	// EncodingConsole is a human-readable output format.
	EncodingConsole = "console"
	// EncodingJSON is a machine-readable output format.
	EncodingJSON = "json"
)

// SetLevelString sets the minimum logging level. Default is "info".
//
// Returns an error if s is not a string representation of a supported
// logging level.
func (p *Prm) SetLevelString(s string) error {
	return p.level.UnmarshalText([]byte(s))
}

// SetEncoding sets output format, EncodingConsole or EncodingJSON. Default is
// EncodingConsole.
func (p *Prm) SetEncoding(enc string) error {
	switch enc {
	case "", EncodingConsole, EncodingJSON:
		p.encoding = enc
		return nil
	default:
		return fmt.Errorf("unsupported encoding %q", enc)
	}
}

// SetTimestamp explicitly enables or disables timestamps. By default they are
// written only if the log goes to a terminal.
func (p *Prm) SetTimestamp(enabled bool) {
	p.timestamp = &enabled
}

// NewLogger constructs zap.Logger writing to os.Stderr. Nil Prm is equivalent
// to the zero one.
func NewLogger(prm *Prm) (*zap.Logger, error) {
	if prm == nil {
		prm = new(Prm)
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(prm.level)
	c.Encoding = EncodingConsole
	if prm.encoding != "" {
		c.Encoding = prm.encoding
	}
	c.Sampling = nil

	if (prm.timestamp == nil && term.IsTerminal(int(os.Stderr.Fd()))) || (prm.timestamp != nil && *prm.timestamp) {
		c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		c.EncoderConfig.EncodeTime = func(_ time.Time, _ zapcore.PrimitiveArrayEncoder) {}
	}

	l, err := c.Build(
		zap.AddStacktrace(zap.NewAtomicLevelAt(zap.FatalLevel)),
	)
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return l, nil
}
