// Package output handles formatted output for the CLI.
//
// This package provides utilities for:
//   - User feedback messages (Warn, Error, Success) with TTY-aware coloring
//   - Single-line JSON output for scripting
//   - Aligned table rendering for list output
//   - Unified diff generation with color highlighting
//
// Colors are automatically disabled when output is not a TTY, ensuring
// clean output when piped or redirected.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/bwsm-dev/bwsm/internal/cli/colors"
)

// Error prints an error message in red.
// Used for user-facing error messages that are not Go errors.
// For Go errors, use the standard error return pattern instead.
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Error(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(w, colors.Error("Error: "+msg))
}

// Success prints a success message with green checkmark.
// Example: "✓ Created secret 3c1f...".
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Success(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n", colors.Success("✓"), msg)
}

// Info prints an informational message in cyan.
// Example: "No secrets found.".
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Info(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(w, colors.Info(msg))
}

// Warn prints a warning message with yellow "!" prefix.
// Example: "! Secret has no project assigned".
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Warn(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n", colors.Warning("!"), msg)
}

// Print writes a message to the writer without a newline.
func Print(w io.Writer, msg string) {
	_, _ = fmt.Fprint(w, msg)
}

// Println writes a message to the writer with a newline.
func Println(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, msg)
}

// Printf writes a formatted message to the writer.
func Printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

// JSONLine marshals v and writes it as a single line.
// Used for machine-readable output under the --json flag.
func JSONLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	_, _ = fmt.Fprintln(w, string(data))

	return nil
}

// Column describes one table column: its header and width bounds.
// Cells longer than Max are truncated with a "..." suffix.
type Column struct {
	Name string
	Min  int
	Max  int
}

// Table renders rows as an aligned plain-text table with a header line
// and a dash separator. Each cell is padded to its column width.
func Table(w io.Writer, columns []Column, rows [][]string) {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = max(len(c.Name), c.Min)
	}
	for _, row := range rows {
		for i := range columns {
			if i >= len(row) {
				continue
			}
			widths[i] = max(widths[i], len(row[i]))
		}
	}
	for i, c := range columns {
		if c.Max > 0 && widths[i] > c.Max {
			widths[i] = c.Max
		}
	}

	writeRow := func(cells []string) {
		parts := make([]string, len(columns))
		for i := range columns {
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			if len(cell) > widths[i] {
				cell = cell[:widths[i]-3] + "..."
			}
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	headers := make([]string, len(columns))
	dashes := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Name
		dashes[i] = strings.Repeat("-", widths[i])
	}
	writeRow(headers)
	writeRow(dashes)
	for _, row := range rows {
		writeRow(row)
	}
}

// Diff generates a unified diff between two strings with ANSI colors.
func Diff(oldName, newName, oldContent, newContent string) string {
	edits := udiff.Strings(oldContent, newContent)
	unified, _ := udiff.ToUnifiedDiff(oldName, newName, oldContent, edits, udiff.DefaultContextLines)

	return colorDiff(unified.String())
}

// colorDiff adds ANSI colors to diff output.
func colorDiff(diff string) string {
	if diff == "" {
		return ""
	}

	lines := strings.Split(diff, "\n")

	var result strings.Builder

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++"):
			result.WriteString(colors.DiffHeader(line))
		case strings.HasPrefix(line, "-"):
			result.WriteString(colors.DiffRemoved(line))
		case strings.HasPrefix(line, "+"):
			result.WriteString(colors.DiffAdded(line))
		case strings.HasPrefix(line, "@@"):
			result.WriteString(colors.DiffHunk(line))
		default:
			result.WriteString(line)
		}

		result.WriteString("\n")
	}

	return result.String()
}
