package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-campaign-api/internal/config"
	rpgerrors "github.com/KirkDiggler/rpg-campaign-api/internal/errors"
	"github.com/KirkDiggler/rpg-campaign-api/internal/handlers/combat/v1alpha1"
	"github.com/KirkDiggler/rpg-campaign-api/internal/handlers/feed"
	"github.com/KirkDiggler/rpg-campaign-api/internal/handlers/httpapi"
	"github.com/KirkDiggler/rpg-campaign-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-campaign-api/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-campaign-api/internal/pkg/logging"
	"github.com/KirkDiggler/rpg-campaign-api/internal/pkg/telemetry"
	combatsessions "github.com/KirkDiggler/rpg-campaign-api/internal/repositories/combat_sessions"
	"github.com/KirkDiggler/rpg-campaign-api/internal/services/notification"
)

const (
	serviceName     = "rpg-campaign-api"
	shutdownTimeout = 30 * time.Second
)

var serverFlags struct {
	grpcPort   int
	httpPort   int
	storage    string
	redisAddr  string
	sqlitePath string
	logLevel   string
	logFormat  string
	logFile    string
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the combat server",
	Long: `Start the gRPC combat service, the HTTP API and the live websocket feed.
Settings come from RPG_* environment variables; flags override them.`,
	RunE: runServer,
}

func init() {
	f := serverCmd.Flags()
	f.IntVar(&serverFlags.grpcPort, "grpc-port", 50051, "gRPC server port")
	f.IntVar(&serverFlags.httpPort, "http-port", 8080, "HTTP API port, 0 disables")
	f.StringVar(&serverFlags.storage, "storage", config.StorageMemory, "session storage: memory, redis or sqlite")
	f.StringVar(&serverFlags.redisAddr, "redis-addr", "localhost:6379", "Redis address or URL")
	f.StringVar(&serverFlags.sqlitePath, "sqlite-path", "rpg-campaign.db", "SQLite database file")
	f.StringVar(&serverFlags.logLevel, "log-level", "info", "log level")
	f.StringVar(&serverFlags.logFormat, "log-format", config.LogFormatText, "log format: text or json")
	f.StringVar(&serverFlags.logFile, "log-file", "", "also write logs to this rotated file")
}

// loadConfig reads the environment and applies any flags set explicitly
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("grpc-port") {
		cfg.GRPCPort = serverFlags.grpcPort
	}
	if f.Changed("http-port") {
		cfg.HTTPPort = serverFlags.httpPort
	}
	if f.Changed("storage") {
		cfg.Storage = serverFlags.storage
	}
	if f.Changed("redis-addr") {
		cfg.RedisAddr = serverFlags.redisAddr
	}
	if f.Changed("sqlite-path") {
		cfg.SQLitePath = serverFlags.sqlitePath
	}
	if f.Changed("log-level") {
		cfg.LogLevel = serverFlags.logLevel
	}
	if f.Changed("log-format") {
		cfg.LogFormat = serverFlags.logFormat
	}
	if f.Changed("log-file") {
		cfg.LogFile = serverFlags.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logCloser, err := logging.Setup(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() { _ = logCloser.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	systemClock := clock.New()
	bus := events.NewBus()

	hub := feed.NewHub(systemClock)
	go hub.Run(ctx)
	unsubscribeFeed := hub.SubscribeSessionEvents(bus)
	defer func() { _ = unsubscribeFeed() }()

	notifier, err := buildNotifier(cfg, store, hub, systemClock)
	if err != nil {
		return err
	}

	combatService, err := combat.NewOrchestrator(&combat.Config{
		Repository:    combatsessions.WithEvents(store.repo, bus),
		Clock:         systemClock,
		IDGenerator:   idgen.NewUUID(""),
		InitiativeDie: cfg.InitiativeDie,
		EventBus:      bus,
	})
	if err != nil {
		return fmt.Errorf("failed to create combat orchestrator: %w", err)
	}
	defer func() { _ = combatService.Close() }()

	synced, err := combatService.Sync(ctx, &combat.SyncInput{})
	if err != nil {
		return fmt.Errorf("failed to load combat sessions: %w", err)
	}
	slog.Info("combat sessions loaded", "count", synced.Loaded)

	grpcServer, err := newGRPCServer(combatService, notifier)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve gRPC: %w", err)
		}
	}()

	var httpServer *http.Server
	if cfg.HTTPPort != 0 {
		router, err := httpapi.NewRouter(&httpapi.Config{
			CombatService: combatService,
			Feed:          hub,
			Notifier:      notifier,
		})
		if err != nil {
			return fmt.Errorf("failed to create HTTP router: %w", err)
		}

		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:           router.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			slog.Info("HTTP server starting", "port", cfg.HTTPPort)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("failed to serve HTTP: %w", err)
			}
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		slog.Info("received shutdown signal, gracefully stopping")
	case serveErr = <-errChan:
		slog.Error("server failed", "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if httpServer != nil {
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("HTTP shutdown incomplete", "error", err)
		}
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		grpcServer.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}

	return serveErr
}

// buildNotifier fans notifications out to the log, the live feed and, when
// Redis backs storage, a Redis channel
func buildNotifier(cfg *config.Config, store *storage, hub *feed.Hub, c clock.Clock) (notification.Notifier, error) {
	notifiers := []notification.Notifier{
		notification.NewLogNotifier(slog.Default()),
		notification.NewFeedNotifier(hub, c),
	}

	if store.redis != nil {
		redisNotifier, err := notification.NewRedisNotifier(&notification.RedisConfig{
			Client:  store.redis,
			Channel: cfg.NotifyChannel,
			Clock:   c,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis notifier: %w", err)
		}
		notifiers = append(notifiers, redisNotifier)
	}

	return notification.Multi(notifiers...), nil
}

func newGRPCServer(combatService combat.Service, notifier notification.Notifier) (*grpc.Server, error) {
	logger := grpc_logging.LoggerFunc(interceptorLogger)
	recovery := grpc_recovery.WithRecoveryHandlerContext(recoverPanic)

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recovery),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recovery),
		),
	)

	combatHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CombatService: combatService,
		Notifier:      notifier,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create combat handler: %w", err)
	}

	v1alpha1.RegisterCombatServiceServer(srv, combatHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return srv, nil
}

// interceptorLogger routes middleware logs through slog; the middleware
// levels share slog's numeric values
func interceptorLogger(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic in gRPC handler", "panic", p)
	return rpgerrors.ToGRPCError(rpgerrors.Internalf("internal error: %v", p))
}
