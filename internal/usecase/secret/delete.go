package secret

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/bwsm-dev/bwsm/internal/api/bwsapi"
	"github.com/bwsm-dev/bwsm/internal/apperr"
	"github.com/bwsm-dev/bwsm/internal/uuidutil"
)

// DeleteClient is the interface for the delete use case.
type DeleteClient interface {
	bwsapi.SecretGetterAPI
	bwsapi.SecretListerAPI
	bwsapi.SecretDeleterAPI
}

// DeleteOutput holds the result of the delete use case.
type DeleteOutput struct {
	DeletedIDs []string
}

// DeleteUseCase deletes secrets by id, verifying each target exists first.
type DeleteUseCase struct {
	Client DeleteClient
	Debug  io.Writer
}

// ResolveTargets expands explicit ids and an optional name into a
// deduplicated id list, preserving first-seen order.
//
// A name resolves only when it is unique in the organization. Duplicates
// fail MULTIPLE_SECRETS_DELETE: deletion by an ambiguous name never proceeds
// automatically.
func (u *DeleteUseCase) ResolveTargets(ctx context.Context, secretIDs []string, secretName, orgID string) ([]string, error) {
	resolved := make([]string, 0, len(secretIDs)+1)
	for _, id := range secretIDs {
		if !uuidutil.IsUUID(id) {
			return nil, apperr.New(apperr.CategoryInvalidID, "secret ID must be a valid UUID, got %q", id)
		}
		resolved = append(resolved, id)
	}

	if secretName != "" {
		debugf(u.Debug, "Resolving secret name %q to ID(s)...", secretName)
		resolver := &NameResolver{Client: u.Client, Debug: u.Debug}
		id, err := resolver.Resolve(ctx, secretName, orgID)
		if err != nil {
			if apperr.Is(err, apperr.CategoryMultipleSecrets) {
				return nil, apperr.Wrap(apperr.CategoryMultipleSecretsDelete,
					fmt.Errorf("cannot delete by name when multiple secrets share it: %w\n\nFor safety, use --secret-id <uuid> to specify which secret to delete", err))
			}
			return nil, err
		}
		resolved = append(resolved, id)
	}

	unique := lo.Uniq(resolved)
	debugf(u.Debug, "Resolved %d unique secret ID(s) for deletion", len(unique))
	return unique, nil
}

// Execute verifies every target exists, then deletes them in one batch call.
// Deletion is irreversible; callers confirm with the user before invoking.
func (u *DeleteUseCase) Execute(ctx context.Context, secretIDs []string) (*DeleteOutput, error) {
	if len(secretIDs) == 0 {
		return nil, apperr.New(apperr.CategoryInvalidID, "no secret IDs provided for deletion")
	}

	debugf(u.Debug, "Checking that %d secret(s) exist before deletion...", len(secretIDs))
	var missing []string
	for _, id := range secretIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := u.Client.Get(id); err != nil {
			debugf(u.Debug, "Secret %s not found: %v", id, err)
			missing = append(missing, id)
		}
	}
	switch len(missing) {
	case 0:
	case 1:
		return nil, apperr.New(apperr.CategoryNotFound,
			"secret with ID %q does not exist or you may not have permission to access it", missing[0])
	default:
		quoted := make([]string, len(missing))
		for i, id := range missing {
			quoted[i] = fmt.Sprintf("%q", id)
		}
		return nil, apperr.New(apperr.CategoryNotFound,
			"secrets with IDs %s do not exist or you may not have permission to access them", strings.Join(quoted, ", "))
	}

	debugf(u.Debug, "Deleting %d secret(s)...", len(secretIDs))
	resp, err := u.Client.Delete(secretIDs)
	if err != nil {
		if apperr.LooksLikeNotFound(err.Error()) {
			return nil, apperr.Wrap(apperr.CategoryNotFound, err)
		}
		return nil, apperr.Wrap(apperr.CategorySDK, err)
	}

	// The batch call reports per-item failures inline.
	for _, item := range resp.Data {
		if item.Error != nil {
			return nil, apperr.New(apperr.CategorySDK, "failed to delete secret %s: %s", item.ID, *item.Error)
		}
	}

	return &DeleteOutput{DeletedIDs: secretIDs}, nil
}
