package credential

import "github.com/99designs/keyring"

// SetRingConfig swaps the keyring configuration for tests and returns a
// restore func.
func SetRingConfig(cfg keyring.Config) func() {
	prev := ringConfig
	ringConfig = cfg
	return func() { ringConfig = prev }
}
