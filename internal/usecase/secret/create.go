package secret

import (
	"context"
	"fmt"
	"io"

	"github.com/bwsm-dev/bwsm/internal/api/bwsapi"
	"github.com/bwsm-dev/bwsm/internal/apperr"
	"github.com/bwsm-dev/bwsm/internal/uuidutil"
)

// CreateClient is the interface for the create use case.
type CreateClient interface {
	bwsapi.SecretCreatorAPI
	bwsapi.SecretListerAPI
	bwsapi.SecretGetterAPI
}

// CreateInput holds input for the create use case.
type CreateInput struct {
	OrgID          string
	Key            string
	Value          string
	Note           string
	ProjectIDs     []string
	AllowDuplicate bool
}

// CreateOutput holds the result of the create use case.
type CreateOutput struct {
	SecretID string
}

// CreateUseCase creates a new secret, guarding against duplicate keys in the
// target projects unless explicitly allowed.
type CreateUseCase struct {
	Client   CreateClient
	Projects ProjectAssociations // defaults to one Get per secret when nil
	Debug    io.Writer
}

// Execute runs the create use case.
func (u *CreateUseCase) Execute(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if !uuidutil.IsUUID(input.OrgID) {
		return nil, apperr.New(apperr.CategoryInvalidID, "organization ID must be a valid UUID, got %q", input.OrgID)
	}
	if len(input.ProjectIDs) == 0 {
		return nil, apperr.New(apperr.CategoryProjectIDRequired,
			"at least one project ID is required; secrets must be created within a project, not at the organization level")
	}
	for _, pid := range input.ProjectIDs {
		if !uuidutil.IsUUID(pid) {
			return nil, apperr.New(apperr.CategoryInvalidID, "project ID must be a valid UUID, got %q", pid)
		}
	}

	if !input.AllowDuplicate {
		existing, err := u.findDuplicate(ctx, input.Key, input.OrgID, input.ProjectIDs)
		if err != nil {
			return nil, err
		}
		if existing != "" {
			return nil, apperr.New(apperr.CategoryDuplicateSecret,
				"a secret with key %q already exists in one or more of the specified projects (secret ID: %s); use --allow-duplicate to create anyway",
				input.Key, existing)
		}
	}

	debugf(u.Debug, "Creating secret with key=%q in organization id=%s...", input.Key, input.OrgID)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := u.Client.Create(input.Key, input.Value, input.Note, input.OrgID, input.ProjectIDs)
	if err != nil {
		if apperr.LooksLikeNotFound(err.Error()) {
			return nil, apperr.Wrap(apperr.CategoryNotFound,
				fmt.Errorf("%w; this may indicate an invalid organization ID or insufficient permissions", err))
		}
		return nil, apperr.Wrap(apperr.CategorySDK, err)
	}
	if resp.ID == "" {
		return nil, apperr.New(apperr.CategorySDK, "secret created but returned ID is empty")
	}

	return &CreateOutput{SecretID: resp.ID}, nil
}

// findDuplicate returns the id of an existing same-key secret in any target
// project, or "" when none exists.
//
// The listing call omits project membership, so each same-key secret is
// fetched individually. The extra round trips are bounded by the number of
// same-named secrets; accepted as a usability safeguard.
func (u *CreateUseCase) findDuplicate(ctx context.Context, key, orgID string, projectIDs []string) (string, error) {
	debugf(u.Debug, "Checking for duplicate secret with key=%q in organization id=%s...", key, orgID)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	list, err := u.Client.List(orgID)
	if err != nil {
		return "", apperr.Wrap(apperr.CategoryList, err)
	}

	targets := make(map[string]struct{}, len(projectIDs))
	for _, pid := range projectIDs {
		targets[pid] = struct{}{}
	}

	for _, entry := range list.Data {
		if entry.Key != key {
			continue
		}
		project, err := u.projects().ProjectIDFor(ctx, entry.ID)
		if err != nil {
			debugf(u.Debug, "Warning: failed to inspect secret id=%s: %v", entry.ID, err)
			continue
		}
		if project == "" {
			continue
		}
		if _, ok := targets[project]; ok {
			debugf(u.Debug, "Found duplicate secret: key=%q, id=%q, project=%q", key, entry.ID, project)
			return entry.ID, nil
		}
	}

	debugf(u.Debug, "No duplicate found for key=%q in the specified projects", key)
	return "", nil
}

func (u *CreateUseCase) projects() ProjectAssociations {
	if u.Projects != nil {
		return u.Projects
	}
	return &FetchProjectAssociations{Client: u.Client}
}
