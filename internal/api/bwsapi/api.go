// Package bwsapi provides interfaces for the Bitwarden Secrets Manager SDK.
//
// The SDK client is synchronous FFI and does not accept a context; callers
// that need cancellation check it between calls.
package bwsapi

// SecretGetterAPI is the interface for fetching a single secret.
type SecretGetterAPI interface {
	Get(secretID string) (*SecretResponse, error)
}

// SecretListerAPI is the interface for listing secret identifiers in an
// organization. The response carries only id/key/organization; project
// associations require a per-secret Get.
type SecretListerAPI interface {
	List(organizationID string) (*SecretIdentifiersResponse, error)
}

// SecretCreatorAPI is the interface for creating a secret.
type SecretCreatorAPI interface {
	Create(key, value, note string, organizationID string, projectIDs []string) (*SecretResponse, error)
}

// SecretUpdaterAPI is the interface for updating a secret. The backend
// requires the full field set on every write, including a non-empty project
// list.
type SecretUpdaterAPI interface {
	Update(secretID string, key, value, note string, organizationID string, projectIDs []string) (*SecretResponse, error)
}

// SecretDeleterAPI is the interface for deleting secrets in a batch.
type SecretDeleterAPI interface {
	Delete(secretIDs []string) (*SecretsDeleteResponse, error)
}
