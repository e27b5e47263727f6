// Package secrets decrypts per-channel third-party credentials stored as
// Fernet tokens. Plaintext is produced on demand, handed straight to the
// consumer, and never logged.
package secrets

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"
)

// Sentinel errors for credential access.
var (
	// ErrEncryptionKeyMissing indicates FERNET_KEY is not configured.
	ErrEncryptionKeyMissing = errors.New("encryption key missing")

	// ErrDecryptionFailed indicates a blob could not be verified/decrypted.
	// The message is deliberately generic: ciphertext and keys are never
	// included in errors or logs.
	ErrDecryptionFailed = errors.New("credential decryption failed")
)

// Decryptor verifies and decrypts Fernet tokens with a single key.
type Decryptor struct {
	keys []*fernet.Key
}

// NewDecryptor creates a Decryptor from a base64 Fernet key string.
// An empty key returns ErrEncryptionKeyMissing.
func NewDecryptor(key string) (*Decryptor, error) {
	if key == "" {
		return nil, ErrEncryptionKeyMissing
	}
	k, err := fernet.DecodeKey(key)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key: %w", ErrEncryptionKeyMissing)
	}
	return &Decryptor{keys: []*fernet.Key{k}}, nil
}

// Decrypt returns the plaintext for a Fernet token.
func (d *Decryptor) Decrypt(token string) ([]byte, error) {
	if d == nil || len(d.keys) == 0 {
		return nil, ErrEncryptionKeyMissing
	}
	msg := fernet.VerifyAndDecrypt([]byte(token), 0, d.keys)
	if msg == nil {
		return nil, ErrDecryptionFailed
	}
	return msg, nil
}

// Credentials decrypts a channel's credential blob into a service→secret
// map (e.g. "elevenlabs" → API key).
func (d *Decryptor) Credentials(blob string) (map[string]string, error) {
	if blob == "" {
		return map[string]string{}, nil
	}
	plain, err := d.Decrypt(blob)
	if err != nil {
		return nil, err
	}
	creds := map[string]string{}
	if err := json.Unmarshal(plain, &creds); err != nil {
		return nil, ErrDecryptionFailed
	}
	return creds, nil
}

// Encrypt seals plaintext with the decryptor's key. Used by provisioning
// tooling and tests; the worker itself only decrypts.
func (d *Decryptor) Encrypt(plain []byte) (string, error) {
	if d == nil || len(d.keys) == 0 {
		return "", ErrEncryptionKeyMissing
	}
	tok, err := fernet.EncryptAndSign(plain, d.keys[0])
	if err != nil {
		return "", fmt.Errorf("encrypting credentials: %w", err)
	}
	return string(tok), nil
}

// GenerateKey returns a fresh base64 Fernet key. Test helper.
func GenerateKey() (string, error) {
	var k fernet.Key
	if err := k.Generate(); err != nil {
		return "", err
	}
	return k.Encode(), nil
}
