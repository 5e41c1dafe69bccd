package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bar-trivia-service/internal/app"
	"bar-trivia-service/internal/config"
	"bar-trivia-service/internal/infra/memory"
	pgcatalog "bar-trivia-service/internal/infra/postgres"
	rediscatalog "bar-trivia-service/internal/infra/redis"
	"bar-trivia-service/internal/questions"
	transport "bar-trivia-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the trivia server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	// Curated pools come from Postgres when configured, otherwise the
	// embedded bank; either way they sit behind a TTL cache.
	var catalog questions.Catalog = memory.NewStaticCatalog(questions.CuratedBank())
	if pool != nil {
		catalog = pgcatalog.NewCatalog(pool)
	}
	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	if redisClient != nil {
		catalog = rediscatalog.NewCatalog(redisClient, catalog, catalogTTL)
	} else {
		catalog = memory.NewCatalogCache(catalog, catalogTTL)
	}

	bank := questions.NewBankSource(catalog)
	triviaTimeout := config.TTLDuration(cfg.Trivia.Timeout, 10*time.Second)
	trivia := questions.NewOpenTriviaSource(cfg.Trivia.URL, triviaTimeout)

	var registry app.SessionRegistry = memory.NewSessionRegistry()
	if redisClient != nil {
		registryTTL := config.TTLDuration(cfg.Redis.TTL, 2*time.Hour)
		registry = rediscatalog.NewSessionRegistry(redisClient, registryTTL)
	}

	service := app.NewGameService(registry, bank, trivia)

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	retention := config.TTLDuration(cfg.Session.Retention, app.DefaultRetention)
	hostGrace := config.TTLDuration(cfg.Session.HostGrace, app.DefaultHostGrace)
	app.NewSweeper(registry, retention, hostGrace).Start(sweepCtx)

	hub := transport.NewHub()
	wsHandler := transport.NewWSHandler(service, hub)
	restHandler := transport.NewRESTHandler(service)

	mux := http.NewServeMux()
	restHandler.Routes(mux)
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:        ":" + finalPort,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting trivia service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
