// Package bwsapi provides interfaces and types for the Bitwarden Secrets Manager SDK.
package bwsapi

import (
	sdk "github.com/bitwarden/sdk-go"
)

// Re-exported SDK client types.
type (
	Client        = sdk.BitwardenClientInterface
	SecretsClient = sdk.SecretsInterface
)

// Re-exported SDK response types.
type (
	SecretResponse            = sdk.SecretResponse
	SecretIdentifierResponse  = sdk.SecretIdentifierResponse
	SecretIdentifiersResponse = sdk.SecretIdentifiersResponse
	SecretsDeleteResponse     = sdk.SecretsDeleteResponse
	SecretDeleteResponse      = sdk.SecretDeleteResponse
)

// Re-exported SDK functions.
var NewBitwardenClient = sdk.NewBitwardenClient
