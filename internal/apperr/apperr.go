// Package apperr provides categorized errors and their process exit codes.
//
// Every subcommand maps failures to the same five exit codes; automation
// relies on these values, so the mapping must not change.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Category tags an error with one of the failure classes shared by all
// subcommands.
type Category string

const (
	CategoryAuth                  Category = "AUTH_ERROR"
	CategoryNotFound              Category = "NOT_FOUND"
	CategoryOrgIDRequired         Category = "ORG_ID_REQUIRED"
	CategoryInvalidID             Category = "INVALID_ID"
	CategoryList                  Category = "LIST_ERROR"
	CategoryMultipleSecrets       Category = "MULTIPLE_SECRETS"
	CategoryMultipleSecretsDelete Category = "MULTIPLE_SECRETS_DELETE"
	CategoryMultipleSecretsUpdate Category = "MULTIPLE_SECRETS_UPDATE"
	CategoryDuplicateSecret       Category = "DUPLICATE_SECRET"
	CategorySDK                   Category = "SDK_ERROR"
	CategoryProjectIDRequired     Category = "PROJECT_ID_REQUIRED"
	CategoryValueRequired         Category = "VALUE_REQUIRED"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitAuth     = 3
	ExitNotFound = 4
	ExitRuntime  = 5
)

// Error is an error carrying a Category.
type Error struct {
	Category Category
	err      error
}

// New creates a categorized error from a format string.
func New(category Category, format string, args ...any) *Error {
	return &Error{Category: category, err: fmt.Errorf(format, args...)}
}

// Wrap attaches a category to an existing error.
func Wrap(category Category, err error) *Error {
	return &Error{Category: category, err: err}
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

// CategoryOf returns the category of err, or false if err is uncategorized.
func CategoryOf(err error) (Category, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Category, true
	}
	return "", false
}

// Is reports whether err carries the given category.
func Is(err error, category Category) bool {
	got, ok := CategoryOf(err)
	return ok && got == category
}

type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// Usage creates an uncategorized usage/config error that maps to ExitUsage.
// Used for failures like missing credentials or conflicting flags that have
// no entry in the category taxonomy.
func Usage(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// IsUsage reports whether err is a usage/config error.
func IsUsage(err error) bool {
	var ue *usageError
	return errors.As(err, &ue)
}

// ExitCode maps err to the process exit code.
//
// Uncategorized errors map to ExitRuntime unless their text looks like a
// not-found response, in which case they map to ExitNotFound. The substring
// match is deliberately loose: the SDK does not always return structured
// error codes. It can misclassify unrelated errors that merely mention
// "not found"; kept as-is for compatibility with existing automation.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if IsUsage(err) {
		return ExitUsage
	}
	if category, ok := CategoryOf(err); ok {
		switch category {
		case CategoryAuth:
			return ExitAuth
		case CategoryNotFound:
			return ExitNotFound
		case CategoryList, CategorySDK:
			return ExitRuntime
		default:
			return ExitUsage
		}
	}
	if LooksLikeNotFound(err.Error()) {
		return ExitNotFound
	}
	return ExitRuntime
}

// Headline returns the error text with the lead-in phrase matching its
// failure class, ready to print as the final "Error: ..." line.
// Uncategorized errors get the not-found lead-in under the same loose text
// match that ExitCode uses.
func Headline(err error) string {
	msg := err.Error()
	if IsUsage(err) {
		return msg
	}
	if category, ok := CategoryOf(err); ok {
		switch category {
		case CategoryAuth:
			return "Authentication failed. " + msg
		case CategoryNotFound:
			return "Secret not found. " + msg
		default:
			return msg
		}
	}
	if LooksLikeNotFound(msg) {
		return "Secret not found. " + msg
	}
	return msg
}

// LooksLikeNotFound reports whether the message text resembles a 404 response.
func LooksLikeNotFound(msg string) bool {
	return strings.Contains(msg, "404") ||
		strings.Contains(strings.ToLower(msg), "not found") ||
		strings.Contains(msg, "Resource not found")
}
