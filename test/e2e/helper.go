package e2e

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/asakaida/banken/internal/handlers"
	"github.com/asakaida/banken/internal/infrastructure/config"
	"github.com/asakaida/banken/internal/infrastructure/database"
	"github.com/asakaida/banken/internal/infrastructure/metrics"
	"github.com/asakaida/banken/internal/repositories/postgres"
	"github.com/asakaida/banken/internal/services/authorization"
	"github.com/asakaida/banken/internal/services/relation"
	"github.com/asakaida/banken/pkg/authrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

// TestServer runs the full gRPC stack over an in-memory listener with a
// real database behind it.
type TestServer struct {
	Server   *grpc.Server
	Client   authrpc.AuthServiceClient
	Conn     *grpc.ClientConn
	DB       *sql.DB
	Listener *bufconn.Listener
}

// SetupE2ETest wires stores, services and the AuthService handler the
// same way cmd/server does, then serves them over bufconn. The test is
// skipped when no test database is available.
func SetupE2ETest(t *testing.T) *TestServer {
	t.Helper()

	if err := config.InitConfig("test"); err != nil {
		t.Fatalf("failed to init config: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Skipf("test database not configured: %v", err)
	}

	pg, err := database.NewPostgres(&cfg.Database)
	if err != nil {
		t.Skipf("test database not reachable: %v", err)
	}

	projectRoot, err := findProjectRoot()
	if err != nil {
		t.Fatalf("failed to find project root: %v", err)
	}
	migrationsPath := filepath.Join(projectRoot, "internal/infrastructure/database/migrations/postgres")
	if err := pg.RunMigrations(migrationsPath); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Rows from an earlier run must not bleed into this one.
	cleanupDatabase(t, pg.DB)

	userRoles := postgres.NewUserRoleStore(pg.DB)
	rolePerms := postgres.NewRolePermissionStore(pg.DB)
	serviceRoles := postgres.NewServiceRoleStore(pg.DB)

	authHandler := handlers.NewAuthHandler(
		userRoles,
		rolePerms,
		serviceRoles,
		relation.NewReplacer(userRoles),
		relation.NewReplacer(rolePerms),
		relation.NewReplacer(serviceRoles),
		authorization.NewResolver(userRoles, rolePerms),
	)

	// The metrics interceptor rides along so these scenarios cover it too.
	listener := bufconn.Listen(bufSize)
	server := grpc.NewServer(
		grpc.UnaryInterceptor(metrics.UnaryServerInterceptor(metrics.NewCollector(), nil)),
	)
	authrpc.RegisterAuthServiceServer(server, authHandler)

	go func() {
		if err := server.Serve(listener); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	conn, err := grpc.NewClient(
		"passthrough://bufconn",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		server.Stop()
		t.Fatalf("failed to create client connection: %v", err)
	}

	return &TestServer{
		Server:   server,
		Client:   authrpc.NewAuthServiceClient(conn),
		Conn:     conn,
		DB:       pg.DB,
		Listener: listener,
	}
}

// Teardown closes the client, the server and the database, clearing the
// tables this run wrote.
func (s *TestServer) Teardown(t *testing.T) {
	t.Helper()

	if s.Conn != nil {
		s.Conn.Close()
	}
	if s.Server != nil {
		s.Server.Stop()
	}
	if s.Listener != nil {
		s.Listener.Close()
	}
	if s.DB != nil {
		cleanupDatabase(t, s.DB)
		s.DB.Close()
	}
}

// cleanupDatabase empties every association table.
func cleanupDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, table := range []string{"user_roles", "role_permissions", "service_roles"} {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("warning: failed to clean up table %s: %v", table, err)
		}
	}
}

// findProjectRoot walks up until it sees go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("project root not found")
		}
		dir = parent
	}
}
