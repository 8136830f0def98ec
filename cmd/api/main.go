package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/justdogs/training-system/internal/api"
	"github.com/justdogs/training-system/internal/core/ports"
	"github.com/justdogs/training-system/internal/core/service"
	"github.com/justdogs/training-system/internal/infrastructure/config"
	mongodb "github.com/justdogs/training-system/internal/infrastructure/db/mongo"
	redisdb "github.com/justdogs/training-system/internal/infrastructure/db/redis"
	"github.com/justdogs/training-system/pkg/logger"
)

// @title           Just Dogs Training API
// @version         1.0
// @description     Role-based management API for a dog training business.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	// Entity storage is always Mongo-backed; AUTH_BACKEND only selects the
	// identity provider.
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	repos, err := mongodb.NewRepositories(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("repository setup failed")
	}

	var (
		identity ports.IdentityService
		rdb      *goredis.Client
	)
	switch cfg.AuthBackend {
	case config.AuthBackendMongo:
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		defer func() {
			_ = rdb.Close()
		}()
		sessions := redisdb.NewSessionStore(rdb)
		identity = service.NewMongoIdentity(repos.Users, sessions, cfg.JWTSecret, 24*time.Hour, log)
	default:
		identity = service.NewLocalIdentity(log)
	}
	log.Info().Str("auth_backend", cfg.AuthBackend).Msg("identity provider selected")

	e := api.NewRouter(api.Dependencies{
		Log:      log,
		Identity: identity,
		Repos:    repos,
		Mongo:    db,
		Redis:    rdb,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info().Msg("shutdown complete")
}
