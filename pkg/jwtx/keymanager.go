package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// KeyManager wires a session signing key to its verifier.
type KeyManager struct {
	Signer   Signer
	Verifier Verifier
	KeySet   *KeySet
}

// KeyManagerOptions configures the KeyManager.
type KeyManagerOptions struct {
	// Issuer is the issuer claim (iss) that will be validated in tokens.
	Issuer string

	// Audience is the list of audience values (aud) that will be validated.
	// Empty slice means no audience validation.
	Audience []string

	// KeyFile is a PKCS8 PEM Ed25519 key. When it does not exist a new key
	// is generated and written there. Empty means an in-memory key, so every
	// session is invalidated by a restart.
	KeyFile string
}

// NewKeyManager loads or generates the signing key described by opts.
func NewKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, errors.New("jwtx: Issuer is required")
	}

	pemKey, err := loadOrGenerateKey(opts.KeyFile)
	if err != nil {
		return nil, err
	}

	return newKeyManager(pemKey, opts)
}

func newKeyManager(pemKey []byte, opts KeyManagerOptions) (*KeyManager, error) {
	// Derive the kid from the key material so a persisted key keeps its kid
	// across restarts.
	sum := sha256.Sum256(pemKey)
	kid := "yup-" + base64.RawURLEncoding.EncodeToString(sum[:9])

	signer, err := NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, err
	}
	if err := signer.Validate(); err != nil {
		return nil, err
	}

	keyset := NewKeySet()
	if err := keyset.AddSigner(signer); err != nil {
		return nil, fmt.Errorf("jwtx: add signer to keyset: %w", err)
	}

	return &KeyManager{
		Signer:   signer,
		Verifier: NewVerifierEdDSA(keyset, opts.Issuer, opts.Audience),
		KeySet:   keyset,
	}, nil
}

// IsReady returns true if the KeyManager has valid keys loaded.
func (km *KeyManager) IsReady() bool {
	return km.KeySet.IsReady()
}

func loadOrGenerateKey(path string) ([]byte, error) {
	if path == "" {
		return GenerateKey()
	}

	path = filepath.Clean(path)
	b, err := os.ReadFile(path)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("jwtx: read key file: %w", err)
	}

	pemKey, err := GenerateKey()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("jwtx: create key dir: %w", err)
	}
	if err := os.WriteFile(path, pemKey, 0600); err != nil {
		return nil, fmt.Errorf("jwtx: write key file: %w", err)
	}
	return pemKey, nil
}

// GenerateKey returns a fresh Ed25519 private key as a PKCS8 PEM block, the
// format YUP_SIGNING_KEY_FILE holds.
func GenerateKey() ([]byte, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate key: %w", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("jwtx: marshal key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}
