// Package valueinput reads secret values from flags, pipes, or an
// interactive hidden prompt.
package valueinput

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/bwsm-dev/bwsm/internal/apperr"
	"github.com/bwsm-dev/bwsm/internal/cli/terminal"
	"github.com/bwsm-dev/bwsm/internal/secmem"
)

// Reader acquires secret values for create and update.
type Reader struct {
	Stdin  io.Reader
	Stderr io.Writer

	// IsTerminal overrides TTY detection in tests. When nil, the reader
	// checks whether Stdin is a terminal.
	IsTerminal func(io.Reader) bool
}

func (r *Reader) isTerminal() bool {
	if r.IsTerminal != nil {
		return r.IsTerminal(r.Stdin)
	}

	return terminal.IsTerminalReader(r.Stdin)
}

// Read returns the secret value, preferring the explicit flag value.
// Without a flag value it reads piped stdin, or prompts without echo on
// an interactive terminal. The value is held in protected memory.
func (r *Reader) Read(flagValue string) (*secmem.Value, error) {
	if flagValue != "" {
		return secmem.NewString(flagValue), nil
	}

	if !r.isTerminal() {
		data, err := io.ReadAll(r.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read value from stdin: %w", err)
		}
		trimmed := strings.TrimSpace(string(data))
		if trimmed == "" {
			return nil, apperr.New(apperr.CategoryValueRequired,
				"secret value is required; provide via --value or pipe to stdin")
		}

		return secmem.NewString(trimmed), nil
	}

	_, _ = fmt.Fprint(r.Stderr, "Enter secret value (input hidden): ")
	value, err := r.readHidden()
	_, _ = fmt.Fprintln(r.Stderr) // newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read value: %w", err)
	}
	if len(value) == 0 {
		return nil, apperr.New(apperr.CategoryValueRequired,
			"secret value is required; provide via --value or pipe to stdin")
	}

	return secmem.New(value), nil
}

// readHidden reads a value from the terminal without echoing.
func (r *Reader) readHidden() ([]byte, error) {
	if f, ok := r.Stdin.(terminal.Fder); ok && terminal.IsTTY(f.Fd()) {
		return term.ReadPassword(int(f.Fd()))
	}

	// Fallback for tests that simulate a terminal with a plain reader.
	data, err := io.ReadAll(r.Stdin)
	if err != nil {
		return nil, err
	}

	return []byte(strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")), nil
}
