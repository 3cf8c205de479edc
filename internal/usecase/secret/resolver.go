package secret

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bwsm-dev/bwsm/internal/api/bwsapi"
	"github.com/bwsm-dev/bwsm/internal/apperr"
	"github.com/bwsm-dev/bwsm/internal/config"
)

// ResolveClient is the client surface needed for name resolution.
type ResolveClient interface {
	bwsapi.SecretListerAPI
	bwsapi.SecretGetterAPI
}

// NameResolver resolves a human-readable key to a unique secret id by
// listing the organization and matching keys exactly (case-sensitive).
type NameResolver struct {
	Client   ResolveClient
	Projects ProjectAssociations // defaults to one Get per secret when nil
	Debug    io.Writer
}

// Resolve returns the id of the single secret whose key equals name.
//
// Zero matches fail NOT_FOUND. Multiple matches fail MULTIPLE_SECRETS with a
// listing of candidate ids and their project associations; the caller must
// disambiguate with an explicit id.
func (r *NameResolver) Resolve(ctx context.Context, name, orgID string) (string, error) {
	if orgID == "" {
		return "", apperr.New(apperr.CategoryOrgIDRequired,
			"organization ID is required when searching by name (provide via --org-id or %s)", config.EnvOrgID)
	}

	debugf(r.Debug, "Listing secrets to find secret with name/key=%q...", name)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	list, err := r.Client.List(orgID)
	if err != nil {
		return "", apperr.Wrap(apperr.CategoryList, err)
	}

	var matches []string
	for _, entry := range list.Data {
		if entry.Key == name {
			matches = append(matches, entry.ID)
		}
	}
	debugf(r.Debug, "Found %d secrets, %d matching name/key=%q", len(list.Data), len(matches), name)

	switch len(matches) {
	case 0:
		return "", apperr.New(apperr.CategoryNotFound, "secret with name/key %q not found", name)
	case 1:
		debugf(r.Debug, "Found secret: name=%q, id=%q", name, matches[0])
		return matches[0], nil
	}

	// Fetch project info per candidate so the error message can point at
	// each one.
	var details strings.Builder
	for _, id := range matches {
		project, err := r.projects().ProjectIDFor(ctx, id)
		if err != nil || project == "" {
			project = "unknown"
		}
		fmt.Fprintf(&details, "\n  - Secret ID: %s, Project ID: %s", id, project)
	}

	return "", apperr.New(apperr.CategoryMultipleSecrets,
		"found %d secrets with name/key %q:%s\n\nTo disambiguate, use --secret-id <uuid> with one of the secret IDs above",
		len(matches), name, details.String())
}

func (r *NameResolver) projects() ProjectAssociations {
	if r.Projects != nil {
		return r.Projects
	}
	return &FetchProjectAssociations{Client: r.Client}
}
