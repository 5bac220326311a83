package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// EngineLogger adapts a zerolog.Logger to the printf-style interface the
// calculation engine expects.
type EngineLogger struct {
	log zerolog.Logger
}

// NewConsoleLogger builds a console-writer logger at info level, or debug
// level when verbose is set.
func NewConsoleLogger(verbose bool) *EngineLogger {
	return NewLogger(zerolog.ConsoleWriter{Out: os.Stderr}, verbose)
}

// NewLogger builds a logger writing to w.
func NewLogger(w io.Writer, verbose bool) *EngineLogger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &EngineLogger{log: log}
}

func (l *EngineLogger) Debugf(format string, args ...any) { l.log.Debug().Msgf(format, args...) }
func (l *EngineLogger) Infof(format string, args ...any)  { l.log.Info().Msgf(format, args...) }
func (l *EngineLogger) Warnf(format string, args ...any)  { l.log.Warn().Msgf(format, args...) }
func (l *EngineLogger) Errorf(format string, args ...any) { l.log.Error().Msgf(format, args...) }
