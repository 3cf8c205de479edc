// Package infra provides Bitwarden SDK client initialization.
package infra

import (
	"fmt"

	"github.com/bwsm-dev/bwsm/internal/api/bwsapi"
	"github.com/bwsm-dev/bwsm/internal/apperr"
	"github.com/bwsm-dev/bwsm/internal/config"
)

// NewClient constructs an SDK client using the given server settings. The
// client is not authenticated; most callers want NewAuthenticatedClient.
func NewClient(server config.Server) (bwsapi.Client, error) {
	client, err := bwsapi.NewBitwardenClient(optional(server.APIURL), optional(server.IdentityURL))
	if err != nil {
		return nil, apperr.Wrap(apperr.CategorySDK, fmt.Errorf("failed to initialize client: %w", err))
	}
	return client, nil
}

// NewAuthenticatedClient constructs an SDK client and logs in with the
// access token. The caller owns the returned client and must Close it.
func NewAuthenticatedClient(server config.Server, accessToken string) (bwsapi.Client, error) {
	client, err := NewClient(server)
	if err != nil {
		return nil, err
	}
	if err := client.AccessTokenLogin(accessToken, optional(server.StateFile)); err != nil {
		client.Close()
		return nil, apperr.Wrap(apperr.CategoryAuth, err)
	}
	return client, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
