package secret_test

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwsm-dev/bwsm/internal/api/bwsapi"
	"github.com/bwsm-dev/bwsm/internal/apperr"
	"github.com/bwsm-dev/bwsm/internal/usecase/secret"
)

const (
	deleteUUID1 = "44444444-4444-4444-8444-444444444444"
	deleteUUID2 = "55555555-5555-4555-8555-555555555555"
)

type mockDeleteClient struct {
	secrets      map[string]*bwsapi.SecretResponse
	listResult   *bwsapi.SecretIdentifiersResponse
	listErr      error
	deleteResult *bwsapi.SecretsDeleteResponse
	deleteErr    error
	deletedIDs   []string
}

func (m *mockDeleteClient) Get(secretID string) (*bwsapi.SecretResponse, error) {
	if s, ok := m.secrets[secretID]; ok {
		return s, nil
	}
	return nil, errors.New("not found")
}

func (m *mockDeleteClient) List(_ string) (*bwsapi.SecretIdentifiersResponse, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listResult, nil
}

func (m *mockDeleteClient) Delete(secretIDs []string) (*bwsapi.SecretsDeleteResponse, error) {
	m.deletedIDs = secretIDs
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	if m.deleteResult != nil {
		return m.deleteResult, nil
	}
	data := make([]bwsapi.SecretDeleteResponse, len(secretIDs))
	for i, id := range secretIDs {
		data[i] = bwsapi.SecretDeleteResponse{ID: id}
	}
	return &bwsapi.SecretsDeleteResponse{Data: data}, nil
}

func existingSecrets(ids ...string) map[string]*bwsapi.SecretResponse {
	secrets := make(map[string]*bwsapi.SecretResponse, len(ids))
	for _, id := range ids {
		secrets[id] = &bwsapi.SecretResponse{ID: id}
	}
	return secrets
}

func TestDeleteUseCase_ResolveTargets_DedupesPreservingOrder(t *testing.T) {
	t.Parallel()

	uc := &secret.DeleteUseCase{Client: &mockDeleteClient{}}

	targets, err := uc.ResolveTargets(context.Background(),
		[]string{deleteUUID2, deleteUUID1, deleteUUID2}, "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{deleteUUID2, deleteUUID1}, targets)
}

func TestDeleteUseCase_ResolveTargets_InvalidUUID(t *testing.T) {
	t.Parallel()

	uc := &secret.DeleteUseCase{Client: &mockDeleteClient{}}

	_, err := uc.ResolveTargets(context.Background(), []string{"not-a-uuid"}, "", "")
	assert.True(t, apperr.Is(err, apperr.CategoryInvalidID))
}

func TestDeleteUseCase_ResolveTargets_ByName(t *testing.T) {
	t.Parallel()

	client := &mockDeleteClient{
		listResult: identifiers(
			bwsapi.SecretIdentifierResponse{ID: deleteUUID1, Key: "old-api-key"},
		),
	}

	uc := &secret.DeleteUseCase{Client: client}

	targets, err := uc.ResolveTargets(context.Background(), nil, "old-api-key", orgUUID)
	require.NoError(t, err)
	assert.Equal(t, []string{deleteUUID1}, targets)
}

func TestDeleteUseCase_ResolveTargets_AmbiguousName(t *testing.T) {
	t.Parallel()

	client := &mockDeleteClient{
		listResult: identifiers(
			bwsapi.SecretIdentifierResponse{ID: deleteUUID1, Key: "old-api-key"},
			bwsapi.SecretIdentifierResponse{ID: deleteUUID2, Key: "old-api-key"},
		),
		secrets: map[string]*bwsapi.SecretResponse{
			deleteUUID1: {ID: deleteUUID1, ProjectID: lo.ToPtr(projectUUID)},
			deleteUUID2: {ID: deleteUUID2, ProjectID: lo.ToPtr(project2UUID)},
		},
	}

	uc := &secret.DeleteUseCase{Client: client}

	_, err := uc.ResolveTargets(context.Background(), nil, "old-api-key", orgUUID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CategoryMultipleSecretsDelete))
	assert.Contains(t, err.Error(), "For safety")
}

func TestDeleteUseCase_ResolveTargets_NameAndIDsCombine(t *testing.T) {
	t.Parallel()

	client := &mockDeleteClient{
		listResult: identifiers(
			bwsapi.SecretIdentifierResponse{ID: deleteUUID2, Key: "old-api-key"},
		),
	}

	uc := &secret.DeleteUseCase{Client: client}

	targets, err := uc.ResolveTargets(context.Background(),
		[]string{deleteUUID1}, "old-api-key", orgUUID)
	require.NoError(t, err)
	assert.Equal(t, []string{deleteUUID1, deleteUUID2}, targets)
}

func TestDeleteUseCase_Execute(t *testing.T) {
	t.Parallel()

	client := &mockDeleteClient{secrets: existingSecrets(deleteUUID1, deleteUUID2)}

	uc := &secret.DeleteUseCase{Client: client}

	result, err := uc.Execute(context.Background(), []string{deleteUUID1, deleteUUID2})
	require.NoError(t, err)
	assert.Equal(t, []string{deleteUUID1, deleteUUID2}, result.DeletedIDs)
	assert.Equal(t, []string{deleteUUID1, deleteUUID2}, client.deletedIDs)
}

func TestDeleteUseCase_Execute_NoTargets(t *testing.T) {
	t.Parallel()

	uc := &secret.DeleteUseCase{Client: &mockDeleteClient{}}

	_, err := uc.Execute(context.Background(), nil)
	assert.True(t, apperr.Is(err, apperr.CategoryInvalidID))
}

func TestDeleteUseCase_Execute_SingleMissing(t *testing.T) {
	t.Parallel()

	client := &mockDeleteClient{secrets: existingSecrets(deleteUUID1)}

	uc := &secret.DeleteUseCase{Client: client}

	_, err := uc.Execute(context.Background(), []string{deleteUUID1, deleteUUID2})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CategoryNotFound))
	assert.Contains(t, err.Error(), deleteUUID2)
	assert.Contains(t, err.Error(), "does not exist")
	assert.Nil(t, client.deletedIDs)
}

func TestDeleteUseCase_Execute_MultipleMissing(t *testing.T) {
	t.Parallel()

	client := &mockDeleteClient{}

	uc := &secret.DeleteUseCase{Client: client}

	_, err := uc.Execute(context.Background(), []string{deleteUUID1, deleteUUID2})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CategoryNotFound))
	assert.Contains(t, err.Error(), "do not exist")
	assert.Contains(t, err.Error(), deleteUUID1)
	assert.Contains(t, err.Error(), deleteUUID2)
}

func TestDeleteUseCase_Execute_BatchError(t *testing.T) {
	t.Parallel()

	client := &mockDeleteClient{
		secrets:   existingSecrets(deleteUUID1),
		deleteErr: errors.New("internal server error"),
	}

	uc := &secret.DeleteUseCase{Client: client}

	_, err := uc.Execute(context.Background(), []string{deleteUUID1})
	assert.True(t, apperr.Is(err, apperr.CategorySDK))
}

func TestDeleteUseCase_Execute_PerItemError(t *testing.T) {
	t.Parallel()

	client := &mockDeleteClient{
		secrets: existingSecrets(deleteUUID1),
		deleteResult: &bwsapi.SecretsDeleteResponse{
			Data: []bwsapi.SecretDeleteResponse{
				{ID: deleteUUID1, Error: lo.ToPtr("still referenced")},
			},
		},
	}

	uc := &secret.DeleteUseCase{Client: client}

	_, err := uc.Execute(context.Background(), []string{deleteUUID1})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CategorySDK))
	assert.Contains(t, err.Error(), "still referenced")
}
