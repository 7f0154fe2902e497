// Package credential stores the ProjectFlow API token in the operating
// system keyring, falling back to an encrypted file under the config
// directory when no native backend is available.
package credential

import (
	"fmt"

	"github.com/99designs/keyring"
)

// TokenKey is the credential key under which the API token is stored.
const TokenKey = "api-token"

// ringConfig scopes lookups to the ProjectFlow service. The file backend
// keeps headless environments working.
var ringConfig = keyring.Config{
	ServiceName: "projectflow",
	AllowedBackends: []keyring.BackendType{
		keyring.KeychainBackend,
		keyring.SecretServiceBackend,
		keyring.WinCredBackend,
		keyring.FileBackend,
	},
	FileDir:                  "~/.config/projectflow/credentials",
	FilePasswordFunc:         keyring.FixedStringPrompt("projectflow-file-key"),
	KeychainTrustApplication: true,
}

// Get retrieves a credential value by key.
func Get(key string) (string, error) {
	ring, err := keyring.Open(ringConfig)
	if err != nil {
		return "", fmt.Errorf("opening keyring: %w", err)
	}

	item, err := ring.Get(key)
	if err != nil {
		return "", fmt.Errorf("getting credential %q: %w", key, err)
	}
	return string(item.Data), nil
}

// Set stores a credential value by key.
func Set(key string, value string) error {
	ring, err := keyring.Open(ringConfig)
	if err != nil {
		return fmt.Errorf("opening keyring: %w", err)
	}

	err = ring.Set(keyring.Item{
		Key:  key,
		Data: []byte(value),
	})
	if err != nil {
		return fmt.Errorf("setting credential %q: %w", key, err)
	}
	return nil
}

// Delete removes a credential by key.
func Delete(key string) error {
	ring, err := keyring.Open(ringConfig)
	if err != nil {
		return fmt.Errorf("opening keyring: %w", err)
	}

	if err := ring.Remove(key); err != nil {
		return fmt.Errorf("deleting credential %q: %w", key, err)
	}
	return nil
}
