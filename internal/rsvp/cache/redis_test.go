package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisFlagCache(t *testing.T) {
	if os.Getenv("YUP_DOCKER_TESTS") != "1" {
		t.Skip("set YUP_DOCKER_TESTS=1 to run Docker-backed tests")
	}
	ctx := context.Background()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(ctx) })

	endpoint, err := ctr.Endpoint(ctx, "")
	require.NoError(t, err)

	c, err := DialRedis(ctx, endpoint, time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	_, ok, err := c.Get(ctx, "u1")
	require.NoError(t, err)
	require.False(t, ok)

	want := domain.UserFlags{IsPremium: true, IsPro: true}
	require.NoError(t, c.Set(ctx, "u1", want))

	got, ok, err := c.Get(ctx, "u1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)

	require.NoError(t, c.Invalidate(ctx, "u1"))
	_, ok, err = c.Get(ctx, "u1")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, "u2", want))
	require.Eventually(t, func() bool {
		_, ok, err := c.Get(ctx, "u2")
		return err == nil && !ok
	}, 5*time.Second, 100*time.Millisecond)
}

func TestDialRedisUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := DialRedis(ctx, "127.0.0.1:1", time.Minute)
	require.Error(t, err)
}
