package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

// repl reads expressions and assignments from an interactive prompt until
// EOF or ^C.
func (c *calc) repl() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	hist := historyFile()
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			if _, err := line.ReadHistory(f); err != nil {
				c.log.Warn("loading history", "file", hist, "error", err)
			}
			f.Close()
		}
	}

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				break
			}
			return errors.Wrap(err, "reading input")
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		c.handle(input)
	}

	if hist != "" {
		f, err := os.Create(hist)
		if err != nil {
			c.log.Warn("saving history", "file", hist, "error", err)
			return nil
		}
		defer f.Close()
		if _, err := line.WriteHistory(f); err != nil {
			c.log.Warn("saving history", "file", hist, "error", err)
		}
	}
	return nil
}

// historyFile returns the path of the prompt history, or the empty string if
// there is no cache directory.
func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rpncalc_history")
}
