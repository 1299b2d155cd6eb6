package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asakaida/banken/internal/entities"
	"github.com/asakaida/banken/internal/handlers"
	"github.com/asakaida/banken/internal/httpapi"
	"github.com/asakaida/banken/internal/infrastructure/config"
	"github.com/asakaida/banken/internal/infrastructure/database"
	"github.com/asakaida/banken/internal/infrastructure/metrics"
	"github.com/asakaida/banken/internal/repositories/postgres"
	"github.com/asakaida/banken/internal/services/authorization"
	"github.com/asakaida/banken/internal/services/relation"
	"github.com/asakaida/banken/pkg/authrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

const defaultEnv = "dev"

func main() {
	// Get environment from ENV variable or use default
	env := os.Getenv("ENV")
	if env == "" {
		env = defaultEnv
	}

	// Initialize configuration
	if err := config.InitConfig(env); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := newLogger(cfg.Log.Format)

	// Connect to database
	pg, err := database.NewPostgres(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pg.Close()

	log.Printf("Connected to database: %s@%s:%d/%s",
		cfg.Database.User,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Database)

	// Initialize relation stores
	userRoles := postgres.NewUserRoleStore(pg.DB)
	rolePerms := postgres.NewRolePermissionStore(pg.DB)
	serviceRoles := postgres.NewServiceRoleStore(pg.DB)

	// Initialize services
	roleReplacer := relation.NewReplacer(userRoles)
	permReplacer := relation.NewReplacer(rolePerms)
	serviceRoleReplacer := relation.NewReplacer(serviceRoles)
	resolver := authorization.NewResolver(userRoles, rolePerms)

	adminRoles := make([]entities.RoleID, 0, len(cfg.Auth.AdminRoles))
	for _, r := range cfg.Auth.AdminRoles {
		adminRoles = append(adminRoles, entities.RoleID(r))
	}
	guard := authorization.NewGuard(resolver, adminRoles)

	// Initialize metrics
	collector := metrics.NewCollector()
	exporter := metrics.NewPrometheusExporter(collector)

	// Initialize the gRPC handler for trusted internal callers
	authHandler := handlers.NewAuthHandler(
		userRoles,
		rolePerms,
		serviceRoles,
		roleReplacer,
		permReplacer,
		serviceRoleReplacer,
		resolver,
	)

	// Create gRPC server
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(metrics.UnaryServerInterceptor(collector, exporter)),
	)
	authrpc.RegisterAuthServiceServer(grpcServer, authHandler)

	// Register reflection service (for grpcurl, etc.)
	reflection.Register(grpcServer)

	// Build the REST facade
	restHandler := httpapi.NewHandler(httpapi.HandlerParams{
		Logger:              logger,
		UserRoles:           userRoles,
		RolePermissions:     rolePerms,
		ServiceRoles:        serviceRoles,
		RoleReplacer:        roleReplacer,
		PermissionReplacer:  permReplacer,
		ServiceRoleReplacer: serviceRoleReplacer,
		Resolver:            resolver,
		Guard:               guard,
		Health:              pg,
	})
	router := httpapi.NewRouter(restHandler, exporter.Middleware)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", exporter.Handler())
	metricsServer := &http.Server{
		Addr:        fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.MetricsPort),
		Handler:     metricsMux,
		ReadTimeout: 10 * time.Second,
	}

	// Start listening for gRPC
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.GRPCPort))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	// Start servers in goroutines
	serverErrors := make(chan error, 3)
	go func() {
		log.Printf("gRPC server listening on %s:%d", cfg.Server.Host, cfg.Server.GRPCPort)
		if err := grpcServer.Serve(listener); err != nil {
			serverErrors <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()
	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()
	go func() {
		log.Printf("Metrics server listening on %s", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("metrics server error: %w", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErrors:
		log.Fatalf("Server error: %v", err)
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
		log.Println("Initiating graceful shutdown...")

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Metrics server shutdown error: %v", err)
		}

		// Channel to notify when graceful stop completes
		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()

		// Wait for graceful stop or timeout
		select {
		case <-stopped:
			log.Println("Server stopped gracefully")
		case <-shutdownCtx.Done():
			log.Println("Shutdown timeout exceeded, forcing stop")
			grpcServer.Stop()
		}

		// Close database connection
		if err := pg.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}

		log.Println("Shutdown complete")
	}
}

// newLogger builds the request logger for the REST facade. LOG_FORMAT=json
// switches to machine-readable output for log aggregation.
func newLogger(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
