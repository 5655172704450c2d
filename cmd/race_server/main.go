package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/mitchelldurbincs/GridRacingRL/internal/config"
	"github.com/mitchelldurbincs/GridRacingRL/internal/grpc/raceserver"
	"github.com/mitchelldurbincs/GridRacingRL/internal/monitoring"
	"github.com/mitchelldurbincs/GridRacingRL/internal/race"
	"github.com/mitchelldurbincs/GridRacingRL/internal/storage"
	"github.com/mitchelldurbincs/GridRacingRL/internal/track"
	racingv1 "github.com/mitchelldurbincs/GridRacingRL/pkg/api/racing/v1"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	port := flag.Int("port", -1, "The server port (-1 to use config default)")
	host := flag.String("host", "", "The server host (empty to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	tracksDir := flag.String("tracks", "", "Directory of YAML track definitions (empty to use config default)")
	enableReflection := flag.Bool("enable-reflection", false, "Enable gRPC reflection for debugging")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}

	cfg := config.Get()

	if *port == -1 {
		*port = cfg.Server.GRPCServer.Port
	}
	if *host == "" {
		*host = cfg.Server.GRPCServer.Host
	}
	if *logLevel == "" {
		*logLevel = cfg.Server.GRPCServer.LogLevel
	}
	if *tracksDir == "" {
		*tracksDir = cfg.Tracks.Dir
	}
	if !*enableReflection {
		*enableReflection = cfg.Server.GRPCServer.EnableReflection
	}

	setupLogging(*logLevel)

	if err := run(cfg, *host, *port, *tracksDir, *enableReflection); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}
	log.Info().Msg("Server shutdown complete")
}

func run(cfg *config.Config, host string, port int, tracksDir string, enableReflection bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracks, err := track.LoadDir(ctx, tracksDir)
	if err != nil {
		return fmt.Errorf("load tracks from %s: %w", tracksDir, err)
	}
	registry := track.NewRegistry(log.Logger)
	registry.Add(tracks...)

	store, err := storage.NewStore(cfg.Storage.Backend, cfg.Storage.SQLitePath, cfg.StorageLimits())
	if err != nil {
		return err
	}
	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("init %s store: %w", cfg.Storage.Backend, err)
	}
	defer func() {
		if err := storage.CloseIfSupported(store); err != nil {
			log.Error().Err(err).Msg("Failed to close store")
		}
	}()

	races := race.NewService(registry, store, cfg.RaceSettings(), log.Logger)

	log.Info().
		Int("port", port).
		Str("host", host).
		Int("tracks", registry.Len()).
		Str("storage", cfg.Storage.Backend).
		Str("config_file", config.ConfigFilePath()).
		Msg("Starting gRPC race server")

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	grpcServer := grpc.NewServer(raceserver.ServerOptions(log.Logger)...)
	racingv1.RegisterRaceServiceServer(grpcServer, raceserver.NewServer(races, log.Logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(racingv1.RaceService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	if enableReflection {
		reflection.Register(grpcServer)
		log.Info().Msg("gRPC reflection enabled")
	}

	if config.ConfigFilePath() != "" {
		config.WatchConfig(func() {
			log.Info().Str("config_file", config.ConfigFilePath()).Msg("Config file changed; restart to apply race settings")
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	if interval := cfg.Server.GRPCServer.MonitorInterval; interval > 0 {
		monitor := monitoring.NewGoroutineMonitor(time.Duration(interval)*time.Second, cfg.Server.GRPCServer.MonitorThreshold, log.Logger)
		g.Go(func() error { return monitor.Run(gctx) })
	}
	g.Go(func() error {
		log.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Received shutdown signal")

		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		healthServer.SetServingStatus(racingv1.RaceService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

		// Give ongoing requests time to complete
		time.Sleep(time.Duration(cfg.Server.GRPCServer.GracefulShutdownDelay) * time.Second)

		log.Info().Msg("Gracefully stopping gRPC server")
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func setupLogging(level string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if os.Getenv("APP_ENV") == "production" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}
