package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDecryptor(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		_, err := NewDecryptor("")
		assert.ErrorIs(t, err, ErrEncryptionKeyMissing)
	})

	t.Run("malformed key", func(t *testing.T) {
		_, err := NewDecryptor("not-a-key")
		assert.ErrorIs(t, err, ErrEncryptionKeyMissing)
	})
}

func TestCredentialsRoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	d, err := NewDecryptor(key)
	require.NoError(t, err)

	blob, err := d.Encrypt([]byte(`{"elevenlabs":"sk-abc","kling":"kl-def"}`))
	require.NoError(t, err)

	creds, err := d.Credentials(blob)
	require.NoError(t, err)
	assert.Equal(t, "sk-abc", creds["elevenlabs"])
	assert.Equal(t, "kl-def", creds["kling"])
}

func TestCredentialsFailures(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	d, err := NewDecryptor(key)
	require.NoError(t, err)

	t.Run("empty blob yields empty map", func(t *testing.T) {
		creds, err := d.Credentials("")
		require.NoError(t, err)
		assert.Empty(t, creds)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := d.Credentials("gAAAAA-garbage")
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("wrong key", func(t *testing.T) {
		otherKey, err := GenerateKey()
		require.NoError(t, err)
		other, err := NewDecryptor(otherKey)
		require.NoError(t, err)

		blob, err := other.Encrypt([]byte(`{"a":"b"}`))
		require.NoError(t, err)

		_, err = d.Credentials(blob)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("error text never contains ciphertext", func(t *testing.T) {
		_, err := d.Credentials("gAAAAA-secret-material")
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "secret-material")
	})
}
