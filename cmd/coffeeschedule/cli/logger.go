package cli

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// initLogger configures the global zerolog logger: pretty console output
// on a terminal, JSON when piped, matching the teacher's logger.Init.
func initLogger(debug bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	isTerminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	var output io.Writer = os.Stdout
	if isTerminal {
		timeFormat := "15:04:05"
		if debug {
			timeFormat = "2006-01-02 15:04:05"
		}
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: timeFormat}
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Logger = logger
}
