package yup_test

import (
	"testing"

	"github.com/aussiebroadwan/yup/pkg/yupsdk"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies liveness and readiness on a fresh container.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupYupContainer(t)
	defer cleanup()

	client := yupsdk.NewClient(baseURL)

	require.NoError(t, client.Livez(t.Context()))
	require.NoError(t, client.Readyz(t.Context()))
}
