package market_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/pkg/marketsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and account helpers for the marketplace end-to-end tests.
 */

const (
	testImageName = "harvest-market-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	adminEmail     = "admin@harvest.test"
	password       = "Harvest123!"
	jwtSecret      = "e2e-secret-e2e-secret-e2e-secret!"
)

// TestMain builds the Docker image once before all tests and removes it after.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Market Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Market Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/market/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run()
}

// setupMarketContainer starts the service with relaxed rate limits and
// returns an SDK client pointed at it.
func setupMarketContainer(t *testing.T) *marketsdk.SDKClient {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8000/tcp"},
		Env: map[string]string{
			"BOOTSTRAP_TOKEN": bootstrapToken,
			"JWT_SECRET":      jwtSecret,
			"ENV":             "test",
			"LOG_LEVEL":       "info",
			"LOG_FORMAT":      "json",

			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8000/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8000")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return marketsdk.NewSDKClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

// bootstrapAdmin creates the admin account and logs in as it.
func bootstrapAdmin(t *testing.T, client *marketsdk.SDKClient) *marketsdk.Session {
	t.Helper()

	_, err := client.Bootstrap(t.Context(), bootstrapToken, marketsdk.BootstrapRequest{
		Email:    adminEmail,
		Phone:    "+919800000000",
		Name:     "Administrator",
		Password: password,
	})
	require.NoError(t, err)

	session, err := client.Login(t.Context(), adminEmail, password)
	require.NoError(t, err)
	return session
}

var phoneSeq atomic.Int64

// registerUser creates a pending account with a unique email and phone.
func registerUser(t *testing.T, client *marketsdk.SDKClient, role string) *marketsdk.UserResponse {
	t.Helper()

	n := phoneSeq.Add(1)
	user, err := client.Register(t.Context(), marketsdk.RegisterRequest{
		Email:    fmt.Sprintf("%s%d@harvest.test", role, n),
		Phone:    fmt.Sprintf("+9190000%05d", n),
		Name:     "E2E " + role,
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	require.Equal(t, "pending", user.Status)
	return user
}

// approvedSession registers, approves and logs in a user.
func approvedSession(t *testing.T, client *marketsdk.SDKClient, admin *marketsdk.Session, role string) *marketsdk.Session {
	t.Helper()

	user := registerUser(t, client, role)
	_, err := admin.ApproveUser(t.Context(), user.ID)
	require.NoError(t, err)

	session, err := client.Login(t.Context(), user.Email, password)
	require.NoError(t, err)
	return session
}

// requireAPIError asserts err is an APIError with the given status and code.
func requireAPIError(t *testing.T, err error, status int, code string) *marketsdk.APIError {
	t.Helper()

	var apiErr *marketsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}
