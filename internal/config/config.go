// Package config resolves subcommand configuration from CLI flags and the
// process environment.
//
// Every field follows the same precedence: a non-empty CLI flag wins, an
// empty or absent flag falls through to the environment variable. The get
// subcommand additionally pairs the access token with a secret identifier;
// see ResolveGet.
package config

import (
	"os"
	"strings"

	"github.com/samber/lo"
)

// Environment variable names understood by every subcommand.
const (
	EnvAccessToken = "BWS_ACCESS_TOKEN"
	EnvSecretID    = "BWS_SECRET_ID"
	EnvSecretName  = "BWS_SECRET_NAME"
	EnvOrgID       = "BWS_ORG_ID"
	// EnvOrgIDLegacy is accepted as a fallback for environments written
	// before the variable was renamed.
	EnvOrgIDLegacy = "BWS_ORGANIZATION_ID"
)

// Source records where a resolved configuration came from. Diagnostic only;
// it never changes behavior except for the missing sentinel.
type Source string

const (
	SourceCLI     Source = "cli"
	SourceEnv     Source = "env"
	SourceMissing Source = "missing"
)

// IdentifierKind distinguishes UUID lookups from name lookups.
type IdentifierKind string

const (
	KindID   IdentifierKind = "id"
	KindName IdentifierKind = "name"
)

// Resolver merges CLI flag values with environment variables. The zero value
// reads the process environment; tests inject their own lookup.
type Resolver struct {
	Getenv func(key string) string
}

func (r *Resolver) getenv(key string) string {
	if r.Getenv != nil {
		return r.Getenv(key)
	}
	return os.Getenv(key)
}

func (r *Resolver) envOrgID() string {
	return lo.CoalesceOrEmpty(r.getenv(EnvOrgID), r.getenv(EnvOrgIDLegacy))
}

// SplitIDList splits a comma-separated id list, trimming whitespace and
// dropping empty entries.
func SplitIDList(s string) []string {
	var ids []string
	for part := range strings.SplitSeq(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
