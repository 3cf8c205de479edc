package config

import "github.com/samber/lo"

// GetFlags holds the raw flag values of the get subcommand.
type GetFlags struct {
	AccessToken string
	SecretID    string
	SecretName  string
	OrgID       string
}

// Get is the resolved configuration of the get subcommand. When Source is
// SourceMissing no other field is meaningful and the caller reports a usage
// error.
type Get struct {
	AccessToken string
	Identifier  string
	Kind        IdentifierKind
	OrgID       string
	Source      Source
}

// ResolveGet merges get flags with the environment.
//
// The identifier kind is fixed by whichever flag was supplied; when the
// identifier has to come from the environment, BWS_SECRET_ID takes priority
// over BWS_SECRET_NAME. Each missing half (token, identifier) is filled from
// the environment independently; the result is usable only when both halves
// resolve.
func (r *Resolver) ResolveGet(flags GetFlags) Get {
	var (
		identifier string
		kind       IdentifierKind
	)
	switch {
	case flags.SecretID != "":
		identifier, kind = flags.SecretID, KindID
	case flags.SecretName != "":
		identifier, kind = flags.SecretName, KindName
	}

	token := lo.CoalesceOrEmpty(flags.AccessToken, r.getenv(EnvAccessToken))
	if identifier == "" {
		if id := r.getenv(EnvSecretID); id != "" {
			identifier, kind = id, KindID
		} else if name := r.getenv(EnvSecretName); name != "" {
			identifier, kind = name, KindName
		}
	}

	if token == "" || identifier == "" {
		return Get{Source: SourceMissing}
	}

	source := SourceEnv
	if flags.AccessToken != "" || flags.SecretID != "" || flags.SecretName != "" {
		source = SourceCLI
	}

	return Get{
		AccessToken: token,
		Identifier:  identifier,
		Kind:        kind,
		OrgID:       lo.CoalesceOrEmpty(flags.OrgID, r.envOrgID()),
		Source:      source,
	}
}
