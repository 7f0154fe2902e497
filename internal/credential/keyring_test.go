package credential_test

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projectflow/internal/credential"
)

func useFileRing(t *testing.T) {
	t.Helper()
	restore := credential.SetRingConfig(keyring.Config{
		ServiceName:      "projectflow-test",
		AllowedBackends:  []keyring.BackendType{keyring.FileBackend},
		FileDir:          t.TempDir(),
		FilePasswordFunc: keyring.FixedStringPrompt("test-file-key"),
	})
	t.Cleanup(restore)
}

func TestTokenRoundTrip(t *testing.T) {
	useFileRing(t)

	require.NoError(t, credential.Set(credential.TokenKey, "secret-token"))

	got, err := credential.Get(credential.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", got)

	require.NoError(t, credential.Delete(credential.TokenKey))

	_, err = credential.Get(credential.TokenKey)
	assert.Error(t, err)
}

func TestGetMissingCredential(t *testing.T) {
	useFileRing(t)

	_, err := credential.Get("never-stored")
	assert.Error(t, err)
}
