package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	internalhttp "hello-devsecops/internal/http"
	"hello-devsecops/internal/shared/configs"
	"hello-devsecops/internal/shared/loggers"
	"hello-devsecops/internal/shared/metrics"
)

const appName = "hello-devsecops"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	registry  *metrics.Registry
	server    *http.Server
	stdout    io.Writer
}

// Option customizes an App.
type Option func(*App)

// WithStdout redirects the startup banner. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(app *App) {
		app.stdout = w
	}
}

// WithLogger replaces the logger built from config.
func WithLogger(logger loggers.Logger) Option {
	return func(app *App) {
		app.appLogger = logger
	}
}

// New creates and initializes a new App instance.
func New(config *configs.Config, opts ...Option) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	app := &App{
		config:    config,
		appLogger: appLogger,
		stdout:    os.Stdout,
	}
	for _, opt := range opts {
		opt(app)
	}

	app.appLogger = app.appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	// Initialize metrics registry
	app.registry = metrics.NewRegistry(metrics.Options{
		ProcessCollectors: config.Metrics.ProcessCollectors,
	})

	// Initialize http router
	httpLogger := app.appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(app.registry, httpLogger, internalhttp.RouterOptions{
		NormalizeRoutes: config.Metrics.NormalizeRoutes,
	})

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return app, nil
}

// Start binds the configured port and serves until Shutdown. It blocks.
func (app *App) Start() error {
	listener, err := net.Listen("tcp", app.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", app.server.Addr, err)
	}
	return app.Serve(listener)
}

// Serve announces the service and serves on an already bound listener. It blocks.
func (app *App) Serve(listener net.Listener) error {
	port := app.config.Server.Port
	if tcpAddr, ok := listener.Addr().(*net.TCPAddr); ok {
		port = tcpAddr.Port
	}

	app.appLogger.Info().
		Msgf("Starting %s on port %d (log_level=%s, process_collectors=%t, normalize_routes=%t)",
			appName,
			port,
			app.config.Log.Level,
			app.config.Metrics.ProcessCollectors,
			app.config.Metrics.NormalizeRoutes)
	app.printBanner(port)

	return app.server.Serve(listener)
}

func (app *App) printBanner(port int) {
	baseURL := fmt.Sprintf("http://localhost:%d", port)
	fmt.Fprintf(app.stdout, "App started on port %d\n", port)
	fmt.Fprintf(app.stdout, "→ %s/\n", baseURL)
	fmt.Fprintf(app.stdout, "→ %s/health\n", baseURL)
	fmt.Fprintf(app.stdout, "→ %s/metrics\n", baseURL)
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
