package secret_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwsm-dev/bwsm/internal/api/bwsapi"
	"github.com/bwsm-dev/bwsm/internal/apperr"
	"github.com/bwsm-dev/bwsm/internal/config"
	"github.com/bwsm-dev/bwsm/internal/usecase/secret"
)

const validUUID = "3b5e0f1e-8c9d-4a2b-b1c3-d4e5f6a7b8c9"

type mockGetClient struct {
	getResult  *bwsapi.SecretResponse
	getErr     error
	listResult *bwsapi.SecretIdentifiersResponse
	listErr    error
}

func (m *mockGetClient) Get(_ string) (*bwsapi.SecretResponse, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.getResult, nil
}

func (m *mockGetClient) List(_ string) (*bwsapi.SecretIdentifiersResponse, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listResult, nil
}

func TestGetUseCase_ByID(t *testing.T) {
	t.Parallel()

	client := &mockGetClient{
		getResult: &bwsapi.SecretResponse{ID: validUUID, Key: "db-password", Value: "hunter2"},
	}

	uc := &secret.GetUseCase{Client: client}

	result, err := uc.Execute(context.Background(), secret.GetInput{
		Identifier: validUUID,
		Kind:       config.KindID,
	})
	require.NoError(t, err)
	assert.Equal(t, validUUID, result.SecretID)
	assert.Equal(t, "db-password", result.Key)
	assert.Equal(t, "hunter2", result.Value)
}

func TestGetUseCase_ByID_InvalidUUID(t *testing.T) {
	t.Parallel()

	uc := &secret.GetUseCase{Client: &mockGetClient{}}

	_, err := uc.Execute(context.Background(), secret.GetInput{
		Identifier: "db-password",
		Kind:       config.KindID,
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CategoryInvalidID))
	assert.Contains(t, err.Error(), "--secret-name")
}

func TestGetUseCase_ByID_NotFound(t *testing.T) {
	t.Parallel()

	client := &mockGetClient{getErr: errors.New("404: resource not found")}

	uc := &secret.GetUseCase{Client: client}

	_, err := uc.Execute(context.Background(), secret.GetInput{
		Identifier: validUUID,
		Kind:       config.KindID,
	})
	assert.True(t, apperr.Is(err, apperr.CategoryNotFound))
}

func TestGetUseCase_ByName(t *testing.T) {
	t.Parallel()

	client := &mockGetClient{
		listResult: identifiers(
			bwsapi.SecretIdentifierResponse{ID: validUUID, Key: "db-password"},
		),
		getResult: &bwsapi.SecretResponse{ID: validUUID, Key: "db-password", Value: "hunter2"},
	}

	uc := &secret.GetUseCase{Client: client}

	result, err := uc.Execute(context.Background(), secret.GetInput{
		Identifier: "db-password",
		Kind:       config.KindName,
		OrgID:      "org-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "hunter2", result.Value)
}

func TestGetUseCase_ByName_MissingOrgID(t *testing.T) {
	t.Parallel()

	uc := &secret.GetUseCase{Client: &mockGetClient{}}

	_, err := uc.Execute(context.Background(), secret.GetInput{
		Identifier: "db-password",
		Kind:       config.KindName,
	})
	assert.True(t, apperr.Is(err, apperr.CategoryOrgIDRequired))
}

func TestGetUseCase_EmptyValueAllowed(t *testing.T) {
	t.Parallel()

	client := &mockGetClient{
		getResult: &bwsapi.SecretResponse{ID: validUUID, Key: "empty-secret", Value: ""},
	}

	uc := &secret.GetUseCase{Client: client}

	result, err := uc.Execute(context.Background(), secret.GetInput{
		Identifier: validUUID,
		Kind:       config.KindID,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Value)
}
