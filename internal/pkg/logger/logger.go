package logger

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger.
// Development uses a human readable console writer, production writes JSON.
func Init(level string, production bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stdout
	if !production {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	SetLevel(level)
}

// SetLevel parses level and applies it globally, falling back to info.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
		log.Debug().Str("loglevel", level).Msg("unknown log level, using info")
	}
	zerolog.SetGlobalLevel(lvl)
}

// ErrorWithStack logs err with a stack trace attached at the call site.
func ErrorWithStack(err error, msg string) {
	log.Error().Msgf("%s: %+v", msg, errors.WithStack(err))
}
