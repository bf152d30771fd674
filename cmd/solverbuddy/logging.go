package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

// setupLogger configures zerolog with pretty console output, or JSON when
// structured is set. debug overrides the configured level.
func setupLogger(w io.Writer, level zerolog.Level, debug, structured bool) zerolog.Logger {
	if debug {
		level = zerolog.DebugLevel
	}

	if structured {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		return zerolog.New(w).
			Level(level).
			With().
			Timestamp().
			Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// signalContext creates a context that is cancelled on interrupt signals
func signalContext(logger zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info().Str("signal", sig.String()).Msg("Received signal, stopping")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
