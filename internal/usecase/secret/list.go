package secret

import (
	"context"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/bwsm-dev/bwsm/internal/api/bwsapi"
	"github.com/bwsm-dev/bwsm/internal/apperr"
	"github.com/bwsm-dev/bwsm/internal/uuidutil"
)

// ListClient is the interface for the list use case.
type ListClient interface {
	bwsapi.SecretListerAPI
	bwsapi.SecretGetterAPI
}

// Entry is one listed secret. ProjectID and Note are populated only when
// the full secret was fetched (the project filter forces a per-secret Get);
// nil means unknown, not absent.
type Entry struct {
	ID        string
	Key       string
	ProjectID *string
	Note      *string
}

// ListInput holds parameters for the list use case.
type ListInput struct {
	OrgID      string
	KeyPattern string
	ProjectID  string
}

// ListUseCase enumerates secrets in an organization with optional filters.
type ListUseCase struct {
	Client ListClient
	Debug  io.Writer
}

func (u *ListUseCase) Execute(ctx context.Context, in ListInput) ([]Entry, error) {
	if in.OrgID == "" {
		return nil, apperr.New(apperr.CategoryOrgIDRequired, "organization ID is required to list secrets")
	}
	if !uuidutil.IsUUID(in.OrgID) {
		return nil, apperr.New(apperr.CategoryInvalidID, "organization ID must be a valid UUID, got %q", in.OrgID)
	}
	if in.ProjectID != "" && !uuidutil.IsUUID(in.ProjectID) {
		return nil, apperr.New(apperr.CategoryInvalidID, "project ID must be a valid UUID, got %q", in.ProjectID)
	}

	debugf(u.Debug, "Listing secrets in organization %s...", in.OrgID)
	resp, err := u.Client.List(in.OrgID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CategoryList, err)
	}
	debugf(u.Debug, "Found %d secret(s)", len(resp.Data))

	identifiers := resp.Data
	if in.KeyPattern != "" {
		identifiers = lo.Filter(identifiers, func(s bwsapi.SecretIdentifierResponse, _ int) bool {
			return strings.Contains(s.Key, in.KeyPattern)
		})
		debugf(u.Debug, "%d secret(s) match key pattern %q", len(identifiers), in.KeyPattern)
	}

	if in.ProjectID == "" {
		entries := make([]Entry, len(identifiers))
		for i, s := range identifiers {
			entries[i] = Entry{ID: s.ID, Key: s.Key}
		}
		return entries, nil
	}

	// The identifier listing carries no project information, so the project
	// filter fetches each remaining secret individually.
	entries := make([]Entry, 0, len(identifiers))
	for _, s := range identifiers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		full, err := u.Client.Get(s.ID)
		if err != nil {
			debugf(u.Debug, "Warning: could not fetch secret %s: %v", s.ID, err)
			continue
		}
		if lo.FromPtr(full.ProjectID) != in.ProjectID {
			continue
		}
		entries = append(entries, Entry{
			ID:        full.ID,
			Key:       full.Key,
			ProjectID: full.ProjectID,
			Note:      lo.ToPtr(full.Note),
		})
	}
	debugf(u.Debug, "%d secret(s) belong to project %s", len(entries), in.ProjectID)
	return entries, nil
}
