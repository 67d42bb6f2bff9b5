// Package server initializes and runs the phonebook server: it connects to
// the document store, wires the identity and directory services into the
// GraphQL schema, and starts the HTTP endpoint with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/phonebook/internal/logging"
	"github.com/dmitrijs2005/phonebook/internal/server/config"
	"github.com/dmitrijs2005/phonebook/internal/server/docstore"
	"github.com/dmitrijs2005/phonebook/internal/server/graph"
	"github.com/dmitrijs2005/phonebook/internal/server/httpapi"
	"github.com/dmitrijs2005/phonebook/internal/server/models"
	"github.com/dmitrijs2005/phonebook/internal/server/repositories/persons"
	"github.com/dmitrijs2005/phonebook/internal/server/repositories/users"
	"github.com/dmitrijs2005/phonebook/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	logger.Info(ctx, "Connecting to database", "uri", cfg.DatabaseURI)

	db, err := docstore.ConnectMongo(ctx, &docstore.MongoConfig{
		URI:      cfg.DatabaseURI,
		Database: cfg.DatabaseName,
		MaxRetry: 5,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := docstore.EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("db index error: %w", err)
	}

	personColl := docstore.NewMongoCollection(db, "people", func() *models.Person { return &models.Person{} })
	userColl := docstore.NewMongoCollection(db, "users", func() *models.User { return &models.User{} })

	personRepo := persons.NewStoreRepository(personColl)
	userRepo := users.NewStoreRepository(userColl)

	identitySvc := services.NewIdentityService(userRepo, cfg)
	directorySvc := services.NewDirectoryService(personRepo, userRepo)

	schema, err := graph.ParseSchema(graph.NewResolver(identitySvc, directorySvc, logger))
	if err != nil {
		return nil, fmt.Errorf("schema init error: %w", err)
	}

	srv := httpapi.NewServer(cfg.EndpointAddr, schema, identitySvc, logger)

	return &App{config: cfg, logger: logger, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}
