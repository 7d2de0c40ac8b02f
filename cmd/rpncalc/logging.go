package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

// newLogger creates a logger which writes text to stderr and, if path is not
// empty, JSON to the file at path. The stderr handler logs warnings and
// worse unless debug is set; the file gets everything.
func newLogger(stderr io.Writer, path string, debug bool) (*slog.Logger, func(), error) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}
	closer := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening log file")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closer = func() { f.Close() }
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}
