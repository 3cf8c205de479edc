package secret

import (
	"context"
	"io"

	"github.com/bwsm-dev/bwsm/internal/api/bwsapi"
	"github.com/bwsm-dev/bwsm/internal/apperr"
	"github.com/bwsm-dev/bwsm/internal/config"
	"github.com/bwsm-dev/bwsm/internal/uuidutil"
)

// GetClient is the interface for the get use case.
type GetClient interface {
	bwsapi.SecretGetterAPI
	bwsapi.SecretListerAPI
}

// GetInput holds input for the get use case.
type GetInput struct {
	Identifier string
	Kind       config.IdentifierKind
	OrgID      string
}

// GetOutput holds the result of the get use case.
type GetOutput struct {
	SecretID string
	Key      string
	Value    string
}

// GetUseCase fetches a secret value by id or unique name.
type GetUseCase struct {
	Client GetClient
	Debug  io.Writer
}

// Execute runs the get use case.
func (u *GetUseCase) Execute(ctx context.Context, input GetInput) (*GetOutput, error) {
	secretID := input.Identifier

	switch input.Kind {
	case config.KindName:
		debugf(u.Debug, "Searching for secret name=%q (organization id=%s)...", input.Identifier, input.OrgID)
		resolver := &NameResolver{Client: u.Client, Debug: u.Debug}
		id, err := resolver.Resolve(ctx, input.Identifier, input.OrgID)
		if err != nil {
			return nil, err
		}
		secretID = id
	case config.KindID:
		if !uuidutil.IsUUID(secretID) {
			return nil, apperr.New(apperr.CategoryInvalidID,
				"secret ID must be a valid UUID, got %q; use --secret-name for name-based lookup", secretID)
		}
	}

	debugf(u.Debug, "Fetching secret id=%s...", secretID)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// The organization is scoped by the access token; Get takes only the id.
	resp, err := u.Client.Get(secretID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CategoryNotFound, err)
	}

	return &GetOutput{SecretID: resp.ID, Key: resp.Key, Value: resp.Value}, nil
}
