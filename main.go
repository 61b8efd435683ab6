package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/katoy/rust-book-listing/internal/config"
	"github.com/katoy/rust-book-listing/internal/game"
	"github.com/katoy/rust-book-listing/internal/lineio"
)

// Process exit codes.
const (
	exitSuccess     = 0
	exitFailure     = 1
	exitConfigError = 2
)

func main() {
	_ = godotenv.Load()
	exitOnInterrupt(os.Stdout)
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

// run plays one session on stdin/stdout and returns the process exit code.
// Logs go to stderr so they never interleave with game output.
func run(stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfigError
	}
	logger := newLogger(cfg, stderr)

	secret := game.RandomSecret()
	if cfg.Secret != nil {
		if secret, err = game.NewSecret(*cfg.Secret); err != nil {
			logger.Error().Err(err).Msg("invalid GUESS_SECRET")
			return exitConfigError
		}
	}

	log := logger.With().Str("session", uuid.NewString()).Logger()
	log.Debug().Int("secret", secret).Msg("session started")

	outcome, err := game.Run(secret, lineio.NewReader(stdin), lineio.NewWriter(stdout))
	if err != nil {
		log.Error().Err(err).Msg("session failed")
		return exitFailure
	}
	log.Info().Stringer("outcome", outcome).Msg("session finished")
	return exitSuccess
}

func newLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w}
	}
	logger := zerolog.New(w).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(lvl)
	}
	return logger
}

// exitOnInterrupt ends the process cleanly on Ctrl-C or SIGTERM.
// A session blocked on stdin has no other way to stop.
func exitOnInterrupt(stdout io.Writer) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go handleInterrupt(sig, lineio.NewWriter(stdout), os.Exit)
}

// handleInterrupt waits for one signal, prints the interruption notice and
// exits with success. The notice may land between two lines of a running
// session; each line is still written whole.
func handleInterrupt(sig <-chan os.Signal, out game.Sink, exit func(int)) {
	<-sig
	_ = out.WriteLine("")
	_ = out.WriteLine(game.MsgInterrupted)
	exit(exitSuccess)
}
