// Package confirm provides confirmation prompts for destructive operations.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bwsm-dev/bwsm/internal/apperr"
	"github.com/bwsm-dev/bwsm/internal/cli/colors"
	"github.com/bwsm-dev/bwsm/internal/cli/terminal"
)

// ErrNotInteractive is returned when a prompt is needed but stdin is not a
// terminal. Callers should suggest --force for scripted use. It maps to the
// usage exit code.
var ErrNotInteractive = apperr.Usage("cannot prompt for confirmation in non-interactive mode (use --force to skip)")

// Prompter handles confirmation prompts.
type Prompter struct {
	Stdin  io.Reader
	Stderr io.Writer

	// IsTerminal overrides TTY detection in tests. When nil, the prompter
	// checks whether Stdin is a terminal.
	IsTerminal func(io.Reader) bool
}

func (p *Prompter) isTerminal() bool {
	if p.IsTerminal != nil {
		return p.IsTerminal(p.Stdin)
	}

	return terminal.IsTerminalReader(p.Stdin)
}

// Confirm displays a confirmation prompt and returns true if the user confirms.
// If force is true, returns true without prompting. Prompting requires an
// interactive stdin; otherwise ErrNotInteractive is returned.
func (p *Prompter) Confirm(message string, force bool) (bool, error) {
	if force {
		return true, nil
	}

	if !p.isTerminal() {
		return false, ErrNotInteractive
	}

	_, _ = fmt.Fprintf(p.Stderr, "%s %s [y/N]: ", colors.Warning("?"), message)

	reader := bufio.NewReader(p.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))

	return response == "y" || response == "yes", nil
}
