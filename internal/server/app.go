// Package server initializes and runs the application server: it wires the
// stores, services, and GraphQL schema together, starts the HTTP endpoint,
// and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/graphql-go/handler"

	"github.com/akarpov/gqltodo/internal/logging"
	"github.com/akarpov/gqltodo/internal/server/config"
	"github.com/akarpov/gqltodo/internal/server/graph"
	"github.com/akarpov/gqltodo/internal/server/services"
	"github.com/akarpov/gqltodo/internal/server/store"
)

type App struct {
	config *config.Config
	logger logging.Logger
	router http.Handler
}

// NewApp wires the full application. The stores are constructed here, once,
// and handed to the services by reference; nothing holds global state.
func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	users := store.NewUsers()
	todos := store.NewTodos()

	userService := services.NewUserService(users, cfg)
	todoService := services.NewTodoService(todos, users)

	schema, err := graph.NewSchema(userService, todoService, logger)
	if err != nil {
		return nil, fmt.Errorf("schema init error: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(graph.PrincipalExtractor([]byte(cfg.SecretKey)))

	r.Handle("/graphql", handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: cfg.EnableGraphiQL,
	}))
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return &App{config: cfg, logger: logger, router: r}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves the HTTP endpoint until the context is cancelled or an OS
// signal arrives, then shuts down gracefully.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.router,
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.config.EndpointAddr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		app.logger.Error(ctx, err.Error())
	}
}
