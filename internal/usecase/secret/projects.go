package secret

import (
	"context"

	"github.com/samber/lo"

	"github.com/bwsm-dev/bwsm/internal/api/bwsapi"
	"github.com/bwsm-dev/bwsm/internal/apperr"
)

// ProjectAssociations resolves which project a secret belongs to.
//
// The backend list endpoint omits project links, so the default
// implementation fetches each secret individually. Callers go through this
// interface so a future listing capability with project info can replace the
// per-secret lookups without touching them.
type ProjectAssociations interface {
	// ProjectIDFor returns the project id of the secret, or "" when the
	// secret is not attached to any project.
	ProjectIDFor(ctx context.Context, secretID string) (string, error)
}

// FetchProjectAssociations implements ProjectAssociations with one Get call
// per secret.
type FetchProjectAssociations struct {
	Client bwsapi.SecretGetterAPI
}

// ProjectIDFor fetches the secret and returns its project id.
func (f *FetchProjectAssociations) ProjectIDFor(ctx context.Context, secretID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	resp, err := f.Client.Get(secretID)
	if err != nil {
		return "", apperr.Wrap(apperr.CategorySDK, err)
	}
	return lo.FromPtr(resp.ProjectID), nil
}
