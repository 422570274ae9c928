package auth

import (
	"os"
	"time"
)

// EnvAPIKey is read by EnvironmentStore
const EnvAPIKey = "IGSTATS_API_KEY"

// EnvironmentStore is a read-only CredentialStore over IGSTATS_API_KEY
type EnvironmentStore struct{}

// NewEnvironmentStore creates a new environment-based credential store
func NewEnvironmentStore() *EnvironmentStore {
	return &EnvironmentStore{}
}

// Name implements CredentialStore
func (e *EnvironmentStore) Name() string {
	return "environment"
}

// Store is not supported for environment variables
func (e *EnvironmentStore) Store(cred *Credential) error {
	return ErrStoreUnavailable
}

// Retrieve returns the key from the environment under any requested name
func (e *EnvironmentStore) Retrieve(name string) (*Credential, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, ErrCredentialsNotFound
	}

	if name == "" {
		name = DefaultName
	}

	return &Credential{
		Name:         name,
		APIKey:       apiKey,
		LastModified: time.Now(),
	}, nil
}

// Delete is not supported for environment variables
func (e *EnvironmentStore) Delete(name string) error {
	return ErrStoreUnavailable
}

// Exists checks if the environment carries a key
func (e *EnvironmentStore) Exists(name string) bool {
	return os.Getenv(EnvAPIKey) != ""
}
