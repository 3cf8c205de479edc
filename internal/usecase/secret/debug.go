// Package secret implements the secret use cases: get, create, update,
// delete, list, and name resolution.
package secret

import (
	"fmt"
	"io"
)

// debugf writes a diagnostic line when w is non-nil. Debug output always
// goes to stderr, never stdout.
func debugf(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}
