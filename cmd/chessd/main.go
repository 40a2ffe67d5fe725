// chessd serves chess games over HTTP: clients create games, submit moves
// that the rules engine validates, and follow games over websockets.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/server"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

func main() {
	logger := log.New(os.Stderr, "chessd: ", log.LstdFlags)

	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		logger.Fatalf("configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatalf("%v", err)
	}
}

// loadConfig reads CHESSRULES_* variables, then lets flags override them.
func loadConfig(args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	if err := config.LoadEnv(cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("chessd", flag.ContinueOnError)
	addr := fs.String("addr", cfg.Server.Addr, "Listen address")
	driver := fs.String("storage", cfg.Storage.Driver, "Storage driver: none, sqlite, mongo")
	dbPath := fs.String("db", cfg.Storage.Path, "SQLite database file")
	mongoURI := fs.String("mongo-uri", cfg.Storage.MongoURI, "MongoDB connection URI")
	origins := fs.String("origins", cfg.Server.AllowOrigins, "Allowed CORS origins, comma separated")
	accessLog := fs.Bool("access-log", cfg.Server.AccessLog, "Log every request")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.Addr = *addr
	cfg.Server.AllowOrigins = *origins
	cfg.Server.AccessLog = *accessLog
	cfg.Storage.Driver = *driver
	cfg.Storage.Path = *dbPath
	cfg.Storage.MongoURI = *mongoURI

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run serves until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	openCtx, cancel := context.WithTimeout(ctx, cfg.Storage.Timeout)
	store, err := storage.Open(openCtx, cfg.Storage)
	cancel()
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	opts := []game.Option{game.WithLogger(logger)}
	if store != nil {
		defer func() {
			if err := store.Close(); err != nil {
				logger.Printf("close storage: %v", err)
			}
		}()
		opts = append(opts, game.WithStore(store))
		logger.Printf("storage: %s", cfg.Storage.Driver)
	} else {
		logger.Printf("storage: disabled")
	}

	srv := server.New(game.NewManager(opts...), cfg.Server, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Println("shutting down")
	if err := srv.Shutdown(); err != nil {
		logger.Printf("forced shutdown: %v", err)
	}
	return <-errCh
}
