package main

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"

	g "github.com/mahabubulhasibshawon/dairy-admin/internal/adapters/grpc"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/adapters/redis"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/adapters/restapi"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/application"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/config"
	"github.com/mahabubulhasibshawon/dairy-admin/pkg/auth"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Dairy subscription back office",
	Long: `server exposes the dairy back office over gRPC. It signs operators in
against the dairy API, proxies the admin screens and drives the daily
delivery sheet.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gRPC server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		return serve(cmd.Context(), cfg, logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func serve(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}

	db, err := sql.Open("postgres", cfg.DB.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to DB: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping DB: %w", err)
	}
	if err := repository.InitSchema(ctx, db); err != nil {
		return fmt.Errorf("failed to init DB: %w", err)
	}

	rdb := redis.NewClient(cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
	defer rdb.Close()
	cache := redis.NewCache(rdb, cfg.CacheTTL)
	if err := cache.Ping(ctx); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	tokens := redis.NewTokenStore(rdb)

	journal := repository.NewPostgresRepository(db)
	api := restapi.NewClient(cfg.APIBaseURL, cfg.APITimeout, tokens, logger)
	gateway := application.NewGateway(api, cache, journal, logger)
	authService := application.NewAuthService(api, tokens, auth.NewSigner(cfg.JWTSecret), logger)
	srv := g.NewServer(g.NewServices(gateway, authService, journal, loc), logger)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(g.LoggingInterceptor(logger), g.AuthInterceptor(authService)))
	g.RegisterAdminServiceServer(grpcServer, srv)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	logger.Info("gRPC server listening",
		zap.String("addr", cfg.GRPCAddr),
		zap.String("api", cfg.APIBaseURL),
		zap.String("timezone", cfg.Timezone))
	return grpcServer.Serve(lis)
}
