package yup_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/yup/pkg/yupsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and shared helpers for the Yup end-to-end tests. The
 * suite needs a Docker daemon and only runs with YUP_DOCKER_TESTS=1.
 */

const (
	testImageName = "yup-rsvp-test:latest"

	adminUsername = "root"
	testPassword  = "correct horse battery"
)

// TestMain builds the image once for the whole suite and removes it after.
func TestMain(m *testing.M) {
	if os.Getenv("YUP_DOCKER_TESTS") != "1" {
		fmt.Fprintln(os.Stdout, "YUP_DOCKER_TESTS not set, skipping end-to-end tests")
		os.Exit(0)
	}

	fmt.Fprintf(os.Stdout, "Building Yup Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Yup Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/yup/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // the image may already be gone
}

// setupYupContainer starts the service with relaxed rate limits and
// returns its base URL.
func setupYupContainer(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	})
}

// setupYupContainerWithDefaultRateLimits keeps the production limits, for
// the rate limit tests only.
func setupYupContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, nil)
}

func startContainer(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"ENV":                          "test",
		"LOG_LEVEL":                    "info",
		"LOG_FORMAT":                   "json",
		"YUP_ISSUER":                   "yup-e2e",
		"YUP_PUBLIC_URL":               "http://yup.test",
		"YUP_ADMIN_OVERRIDE_USERNAMES": adminUsername,
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// signupAndLogin creates username and returns a client holding its session.
func signupAndLogin(t *testing.T, client *yupsdk.Client, username string) (*yupsdk.Client, *yupsdk.User) {
	t.Helper()
	ctx := t.Context()

	_, err := client.Signup(ctx, yupsdk.SignupRequest{
		Username: username,
		Password: testPassword,
		Email:    username + "@example.com",
	})
	require.NoError(t, err, "Signup should succeed")

	session, err := client.Login(ctx, username, testPassword)
	require.NoError(t, err, "Login should succeed")
	require.NotEmpty(t, session.Token)
	require.Equal(t, "Bearer", session.TokenType)

	return client.WithToken(session.Token), &session.User
}

// createEvent creates an open event starting next week.
func createEvent(t *testing.T, host *yupsdk.Client, req yupsdk.CreateEventRequest) *yupsdk.Event {
	t.Helper()
	if req.StartsAt.IsZero() {
		req.StartsAt = time.Now().Add(7 * 24 * time.Hour).UTC().Truncate(time.Second)
	}
	e, err := host.CreateEvent(t.Context(), req)
	require.NoError(t, err, "CreateEvent should succeed")
	require.Equal(t, "open", e.Status)
	return e
}

// assertAPIError checks err is an *APIError with the given status and code.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	var apiErr *yupsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *yupsdk.APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode, "unexpected status: %v", apiErr)
	require.Equal(t, code, apiErr.Code)
}

func intPtr(i int) *int { return &i }
