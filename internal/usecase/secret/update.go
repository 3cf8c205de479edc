package secret

import (
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/bwsm-dev/bwsm/internal/api/bwsapi"
	"github.com/bwsm-dev/bwsm/internal/apperr"
	"github.com/bwsm-dev/bwsm/internal/uuidutil"
)

// UpdateClient is the interface for the update use case.
type UpdateClient interface {
	bwsapi.SecretGetterAPI
	bwsapi.SecretUpdaterAPI
}

// Current holds the stored state of a secret fetched before an update.
type Current struct {
	Key            string
	Value          string
	Note           string
	ProjectID      string // "" when the secret was detached from its project
	OrganizationID string
}

// UpdateInput holds input for the update use case. Empty Key/Value/Note and
// a nil ProjectIDs mean "keep the stored value".
type UpdateInput struct {
	SecretID   string
	OrgID      string
	Key        string
	Value      string
	Note       string
	ProjectIDs []string
	// Stored is the pre-fetched secret state to merge against. When nil it
	// is fetched here.
	Stored *Current
}

// UpdateOutput holds the updated secret as returned by the backend.
type UpdateOutput struct {
	SecretID  string
	Key       string
	Value     string
	Note      string
	ProjectID string
}

// UpdateUseCase applies a sparse update, filling omitted fields from the
// secret's current stored values.
type UpdateUseCase struct {
	Client UpdateClient
	Debug  io.Writer
}

// Current fetches the stored secret an update will merge against.
func (u *UpdateUseCase) Current(ctx context.Context, secretID string) (*Current, error) {
	if !uuidutil.IsUUID(secretID) {
		return nil, apperr.New(apperr.CategoryInvalidID, "secret ID must be a valid UUID, got %q", secretID)
	}

	debugf(u.Debug, "Fetching current secret data for id=%s...", secretID)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := u.Client.Get(secretID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CategoryNotFound,
			fmt.Errorf("secret with ID %q does not exist or you may not have permission to access it: %w", secretID, err))
	}

	return &Current{
		Key:            resp.Key,
		Value:          resp.Value,
		Note:           resp.Note,
		ProjectID:      lo.FromPtr(resp.ProjectID),
		OrganizationID: resp.OrganizationID,
	}, nil
}

// Execute runs the update use case.
func (u *UpdateUseCase) Execute(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if !uuidutil.IsUUID(input.OrgID) {
		return nil, apperr.New(apperr.CategoryInvalidID, "organization ID must be a valid UUID, got %q", input.OrgID)
	}

	stored := input.Stored
	if stored == nil {
		var err error
		stored, err = u.Current(ctx, input.SecretID)
		if err != nil {
			return nil, err
		}
	}

	key := lo.CoalesceOrEmpty(input.Key, stored.Key)
	value := lo.CoalesceOrEmpty(input.Value, stored.Value)
	note := lo.CoalesceOrEmpty(input.Note, stored.Note)

	projectIDs := input.ProjectIDs
	if len(projectIDs) == 0 {
		// The backend requires a non-empty project set on every write, so a
		// detached secret cannot be updated without an explicit target.
		if stored.ProjectID == "" {
			return nil, apperr.New(apperr.CategoryInvalidID,
				"current secret has no project (it may have been removed from its project); provide --project-ids to assign it to one")
		}
		projectIDs = []string{stored.ProjectID}
	} else {
		for _, pid := range projectIDs {
			if !uuidutil.IsUUID(pid) {
				return nil, apperr.New(apperr.CategoryInvalidID, "project ID must be a valid UUID, got %q", pid)
			}
		}
	}

	debugf(u.Debug, "Updating secret id=%s in organization id=%s...", input.SecretID, input.OrgID)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := u.Client.Update(input.SecretID, key, value, note, input.OrgID, projectIDs)
	if err != nil {
		if apperr.LooksLikeNotFound(err.Error()) {
			return nil, apperr.Wrap(apperr.CategoryNotFound,
				fmt.Errorf("%w; this may indicate the secret doesn't exist, an invalid organization ID, or insufficient permissions", err))
		}
		return nil, apperr.Wrap(apperr.CategorySDK, err)
	}
	if resp.ID == "" {
		return nil, apperr.New(apperr.CategorySDK, "secret updated but returned ID is empty")
	}

	return &UpdateOutput{
		SecretID:  resp.ID,
		Key:       resp.Key,
		Value:     resp.Value,
		Note:      resp.Note,
		ProjectID: lo.FromPtr(resp.ProjectID),
	}, nil
}
