package update_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwsm-dev/bwsm/internal/api/bwsapi"
	"github.com/bwsm-dev/bwsm/internal/apperr"
	appcli "github.com/bwsm-dev/bwsm/internal/cli/commands"
	"github.com/bwsm-dev/bwsm/internal/cli/commands/update"
	"github.com/bwsm-dev/bwsm/internal/cli/confirm"
	"github.com/bwsm-dev/bwsm/internal/config"
	"github.com/bwsm-dev/bwsm/internal/usecase/secret"
)

const (
	secretUUID  = "3b5e0f1e-8c9d-4a2b-b1c3-d4e5f6a7b8c9"
	orgUUID     = "11111111-1111-4111-8111-111111111111"
	projectUUID = "22222222-2222-4222-8222-222222222222"
)

type mockClient struct {
	getResult    *bwsapi.SecretResponse
	listResult   *bwsapi.SecretIdentifiersResponse
	updateResult *bwsapi.SecretResponse
	updated      bool
}

func (m *mockClient) Get(_ string) (*bwsapi.SecretResponse, error) {
	return m.getResult, nil
}

func (m *mockClient) List(_ string) (*bwsapi.SecretIdentifiersResponse, error) {
	return m.listResult, nil
}

func (m *mockClient) Update(_ string, _, _, _ string, _ string, _ []string) (*bwsapi.SecretResponse, error) {
	m.updated = true
	return m.updateResult, nil
}

func TestCommand_Validation(t *testing.T) {
	t.Parallel()

	t.Run("no target", func(t *testing.T) {
		t.Parallel()
		app := appcli.MakeApp()
		err := app.Run(t.Context(), []string{"bwsm", "update", "--value", "x"})
		require.Error(t, err)
		assert.True(t, apperr.IsUsage(err))
	})

	t.Run("both targets", func(t *testing.T) {
		t.Parallel()
		app := appcli.MakeApp()
		err := app.Run(t.Context(), []string{
			"bwsm", "update", "--secret-id", secretUUID, "--secret-name", "x", "--value", "y",
		})
		require.Error(t, err)
		assert.True(t, apperr.IsUsage(err))
		assert.Contains(t, err.Error(), "cannot be used together")
	})

	t.Run("no update fields", func(t *testing.T) {
		t.Parallel()
		app := appcli.MakeApp()
		err := app.Run(t.Context(), []string{"bwsm", "update", "--secret-id", secretUUID})
		require.Error(t, err)
		assert.True(t, apperr.IsUsage(err))
		assert.Contains(t, err.Error(), "nothing to update")
	})
}

func newRunner(client *mockClient, confirmInput string) (*update.Runner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &update.Runner{
		UseCase:  &secret.UpdateUseCase{Client: client},
		Resolver: &secret.NameResolver{Client: client},
		Prompter: &confirm.Prompter{
			Stdin:      strings.NewReader(confirmInput),
			Stderr:     io.Discard,
			IsTerminal: func(io.Reader) bool { return true },
		},
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func stored() *bwsapi.SecretResponse {
	return &bwsapi.SecretResponse{
		ID:             secretUUID,
		Key:            "db-password",
		Value:          "old-value",
		OrganizationID: orgUUID,
		ProjectID:      lo.ToPtr(projectUUID),
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("update by id", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{
			getResult: stored(),
			updateResult: &bwsapi.SecretResponse{
				ID: secretUUID, Key: "db-password", Value: "new-value", ProjectID: lo.ToPtr(projectUUID),
			},
		}
		r, stdout, stderr := newRunner(client, "")

		err := r.Run(context.Background(), update.Options{
			Config: config.Update{SecretID: secretUUID, Value: "new-value"},
		})
		require.NoError(t, err)
		assert.True(t, client.updated)
		assert.Equal(t, secretUUID+"\n", stdout.String())
		assert.Contains(t, stderr.String(), "Updated secret "+secretUUID)
	})

	t.Run("org falls back to stored secret", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{
			getResult: stored(),
			updateResult: &bwsapi.SecretResponse{
				ID: secretUUID, Key: "db-password", Value: "new-value", ProjectID: lo.ToPtr(projectUUID),
			},
		}
		r, stdout, _ := newRunner(client, "")

		err := r.Run(context.Background(), update.Options{
			Config: config.Update{SecretID: secretUUID, Value: "new-value"},
			JSON:   true,
		})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"org_id":"`+orgUUID+`"`)
	})

	t.Run("update by unique name", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{
			getResult: stored(),
			listResult: &bwsapi.SecretIdentifiersResponse{
				Data: []bwsapi.SecretIdentifierResponse{{ID: secretUUID, Key: "db-password"}},
			},
			updateResult: &bwsapi.SecretResponse{ID: secretUUID, ProjectID: lo.ToPtr(projectUUID)},
		}
		r, _, _ := newRunner(client, "")

		err := r.Run(context.Background(), update.Options{
			Config: config.Update{SecretName: "db-password", OrgID: orgUUID, Note: "rotated"},
		})
		require.NoError(t, err)
		assert.True(t, client.updated)
	})

	t.Run("ambiguous name", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{
			getResult: stored(),
			listResult: &bwsapi.SecretIdentifiersResponse{
				Data: []bwsapi.SecretIdentifierResponse{
					{ID: secretUUID, Key: "db-password"},
					{ID: "66666666-6666-4666-8666-666666666666", Key: "db-password"},
				},
			},
		}
		r, _, _ := newRunner(client, "")

		err := r.Run(context.Background(), update.Options{
			Config: config.Update{SecretName: "db-password", OrgID: orgUUID, Note: "rotated"},
		})
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.CategoryMultipleSecretsUpdate))
		assert.False(t, client.updated)
	})

	t.Run("detached secret confirmed", func(t *testing.T) {
		t.Parallel()

		detached := stored()
		detached.ProjectID = nil
		client := &mockClient{
			getResult:    detached,
			updateResult: &bwsapi.SecretResponse{ID: secretUUID, ProjectID: lo.ToPtr(projectUUID)},
		}
		r, _, stderr := newRunner(client, "y\n")

		err := r.Run(context.Background(), update.Options{
			Config: config.Update{
				SecretID:   secretUUID,
				Value:      "new-value",
				ProjectIDs: []string{projectUUID},
			},
		})
		require.NoError(t, err)
		assert.True(t, client.updated)
		assert.Contains(t, stderr.String(), "removed from its project")
	})

	t.Run("detached secret declined", func(t *testing.T) {
		t.Parallel()

		detached := stored()
		detached.ProjectID = nil
		client := &mockClient{getResult: detached}
		r, _, _ := newRunner(client, "n\n")

		err := r.Run(context.Background(), update.Options{
			Config: config.Update{
				SecretID:   secretUUID,
				Value:      "new-value",
				ProjectIDs: []string{projectUUID},
			},
		})
		require.Error(t, err)
		assert.True(t, apperr.IsUsage(err))
		assert.False(t, client.updated)
	})

	t.Run("show diff writes to stderr", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{
			getResult:    stored(),
			updateResult: &bwsapi.SecretResponse{ID: secretUUID, ProjectID: lo.ToPtr(projectUUID)},
		}
		r, stdout, stderr := newRunner(client, "")

		err := r.Run(context.Background(), update.Options{
			Config:   config.Update{SecretID: secretUUID, Value: "new-value"},
			ShowDiff: true,
		})
		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "-old-value")
		assert.Contains(t, stderr.String(), "+new-value")
		assert.NotContains(t, stdout.String(), "old-value")
	})
}
