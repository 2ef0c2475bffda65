package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/yup/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "https://yup.example.test"

func newTestSigner(t *testing.T, kid string) *jwtx.EdDSASigner {
	t.Helper()
	pemKey, err := jwtx.GenerateKey()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	return signer
}

func TestEdDSASignAndVerify(t *testing.T) {
	signer := newTestSigner(t, "test-key-eddsa")
	require.NoError(t, signer.Validate())
	require.Equal(t, "EdDSA", signer.Alg())
	require.Equal(t, "test-key-eddsa", signer.KID())

	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims(
		"user-456",
		"session-eddsa1",
		5*time.Minute,
		exampleIssuer,
		[]string{"yup"},
		"maya",
		"Maya Lin",
		now,
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	verifier := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, []string{"yup"})

	parsed, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Issuer, parsed.Issuer)
	require.Equal(t, claims.Subject, parsed.Subject)
	require.ElementsMatch(t, claims.Audience, parsed.Audience)
	require.Equal(t, claims.SID, parsed.SID)
	require.Equal(t, "maya", parsed.Username)
	require.Equal(t, "Maya Lin", parsed.DisplayName)
	require.NotEmpty(t, parsed.ID)
}

func TestEdDSAVerifyFailsForWrongIssuer(t *testing.T) {
	signer := newTestSigner(t, "k1")

	claims := jwtx.NewSessionClaims("user-789", "s", time.Minute, exampleIssuer, nil, "", "", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	_, err = jwtx.NewVerifierEdDSA(keyset, "wrong-issuer", nil).Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestEdDSAVerifyFailsForUnknownKey(t *testing.T) {
	signer1 := newTestSigner(t, "key1")
	signer2 := newTestSigner(t, "key2")

	claims := jwtx.NewSessionClaims("user-unknown", "s", time.Minute, exampleIssuer, nil, "", "", time.Now().UTC())
	token, err := signer1.Sign(claims)
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer2))

	_, err = jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil).Verify(token)
	require.ErrorIs(t, err, jwtx.ErrNoKey)
}

func TestEdDSAVerifyFailsForExpiredToken(t *testing.T) {
	signer := newTestSigner(t, "k1")

	issued := time.Now().UTC().Add(-2 * time.Hour)
	claims := jwtx.NewSessionClaims("user-1", "s", time.Hour, exampleIssuer, nil, "", "", issued)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	_, err = jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil).Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestEdDSAVerifyFailsForHS256Token(t *testing.T) {
	claims := jwtx.NewSessionClaims("user-1", "s", time.Minute, exampleIssuer, nil, "", "", time.Now().UTC())
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tok.Header["kid"] = "k1"
	token, err := tok.SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(newTestSigner(t, "k1")))

	_, err = jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil).Verify(token)
	require.Error(t, err)
}

func TestEdDSAValidateFailsForInvalidKey(t *testing.T) {
	_, err := jwtx.NewSignerEdDSA("test", []byte("not-a-pem-key"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid PEM")
}
