package jwtx_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/yup/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewKeyManager_RequiresIssuer(t *testing.T) {
	_, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{})
	require.Error(t, err)
}

func TestKeyManager_EphemeralRoundTrip(t *testing.T) {
	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer})
	require.NoError(t, err)
	require.True(t, km.IsReady())

	claims := jwtx.NewSessionClaims("user-1", "sess-1", time.Hour, exampleIssuer, nil, "sam", "Sam", time.Now().UTC())
	token, err := km.Signer.Sign(claims)
	require.NoError(t, err)

	parsed, err := km.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", parsed.Subject)
	require.Equal(t, "sess-1", parsed.SID)
}

func TestKeyManager_PersistsKeyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "session.pem")

	km1, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer, KeyFile: path})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	claims := jwtx.NewSessionClaims("user-1", "sess-1", time.Hour, exampleIssuer, nil, "", "", time.Now().UTC())
	token, err := km1.Signer.Sign(claims)
	require.NoError(t, err)

	// A second manager over the same file must accept tokens from the first.
	km2, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer, KeyFile: path})
	require.NoError(t, err)
	require.Equal(t, km1.Signer.KID(), km2.Signer.KID())

	_, err = km2.Verifier.Verify(token)
	require.NoError(t, err)
}

func TestKeyManager_EphemeralKeysDiffer(t *testing.T) {
	km1, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer})
	require.NoError(t, err)
	km2, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer})
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims("user-1", "s", time.Hour, exampleIssuer, nil, "", "", time.Now().UTC())
	token, err := km1.Signer.Sign(claims)
	require.NoError(t, err)

	_, err = km2.Verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrNoKey)
}
