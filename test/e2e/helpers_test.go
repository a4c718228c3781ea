package e2e_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tasknest/tasknest/internal/domain"
	httpapi "github.com/tasknest/tasknest/internal/http"
	"github.com/tasknest/tasknest/internal/service"
	"github.com/tasknest/tasknest/internal/store"
	"github.com/tasknest/tasknest/internal/store/sqlite"
	"github.com/tasknest/tasknest/pkg/cryptox"
	"github.com/tasknest/tasknest/pkg/httpx"
	"github.com/tasknest/tasknest/pkg/jwtx"
	"github.com/tasknest/tasknest/pkg/taskapi"
)

const (
	testIssuer    = "tasknest-e2e"
	adminEmail    = "admin@example.com"
	adminPassword = "admin-password-123"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tasknest-e2e-*")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper.key"))

	// Every test server shares one client IP, so the production limits
	// would trip across unrelated requests.
	open := httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}
	httpx.StrictLimit = open
	httpx.ModerateLimit = open
	httpx.LenientLimit = open
	httpx.PublicLimit = open

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testEnv struct {
	Client *taskapi.Client
	Store  store.Store
}

// setupServer boots a full service instance on an in-memory database behind
// httptest and returns a client pointed at it.
func setupServer(t *testing.T, mfaRequired bool) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	keys, err := jwtx.NewEphemeralKeyPair()
	require.NoError(t, err)
	signer := jwtx.NewSigner(keys)
	verifier := jwtx.NewVerifier(keys, testIssuer)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := httpapi.NewRouter(verifier, st, logger)
	router.AuthService = &service.AuthService{
		Store:       st,
		Signer:      signer,
		Issuer:      testIssuer,
		MFARequired: mfaRequired,
	}
	router.TaskService = &service.TaskService{Store: st}
	router.AdminService = &service.AdminService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{
		Client: taskapi.NewClient(server.URL),
		Store:  st,
	}
}

// registerUser registers through the API and returns an authenticated client.
func registerUser(t *testing.T, env *testEnv, email, password, name string) *taskapi.Client {
	t.Helper()

	resp, err := env.Client.Register(t.Context(), taskapi.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	return env.Client.WithToken(resp.Token)
}

// loginAsAdmin provisions an ADMIN account directly in the store and logs in
// through the API.
func loginAsAdmin(t *testing.T, env *testEnv) *taskapi.Client {
	t.Helper()

	hash, err := cryptox.HashPassword(adminPassword)
	require.NoError(t, err)

	_, err = env.Store.Users().CreateUser(context.Background(), domain.User{
		Email:        adminEmail,
		Name:         "Admin",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	})
	require.NoError(t, err)

	resp, err := env.Client.Login(t.Context(), taskapi.LoginRequest{
		Email:    adminEmail,
		Password: adminPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	return env.Client.WithToken(resp.Token)
}
