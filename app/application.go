package app

import (
	"fmt"
	"log/slog"

	"farmportal.app/api"
	"farmportal.app/cache"
	"farmportal.app/config"
	"farmportal.app/errors"
	"farmportal.app/providers"
	"farmportal.app/service"
)

// Application represents the portal gateway with all its dependencies
type Application struct {
	config       *config.Config
	cache        cache.GenericCache
	cacheBackend cache.GenericCache
	server       *api.Server
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeCache(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("Configuration loaded successfully")
	return nil
}

func (app *Application) initializeCache() error {
	slog.Info("Initializing eco-advice cache", "type", app.config.Cache.Type)

	backend, err := createCacheBackend(&app.config.Cache)
	if err != nil {
		slog.Error("Failed to initialize cache", "error", err)
		return fmt.Errorf("initialize cache backend: %w", err)
	}

	app.cacheBackend = backend
	app.cache = cache.NewInstrumentedCache(backend, app.config.Cache.Type)
	return nil
}

func createCacheBackend(cfg *config.CacheConfig) (cache.GenericCache, error) {
	switch cfg.Type {
	case "memory":
		return cache.NewMemoryCache(), nil
	case "redis":
		return cache.NewRedisCache(cfg)
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported cache type: %s", cfg.Type), nil)
	}
}

func (app *Application) initializeServices() error {
	slog.Info("Initializing services...")

	authProvider := providers.NewAuthProvider(&app.config.Advisory)
	advisoryProvider := providers.NewAdvisoryProvider(&app.config.Advisory)
	ecoProvider := providers.NewEcoProvider(&app.config.Eco)
	leafProvider := providers.NewLeafProvider(&app.config.Eco)
	alertProvider := providers.NewAlertProvider(&app.config.Alert)
	chatbotProvider := providers.NewChatbotProvider(&app.config.Chatbot)

	sessionService := service.NewSessionService(authProvider)
	advisoryService := service.NewAdvisoryService(advisoryProvider)
	ecoService := service.NewEcoAdviceService(ecoProvider, app.cache, app.config.Cache.TTL())

	server, err := api.NewServer(api.ServerOptions{
		Config:          app.config,
		SessionService:  sessionService,
		AdvisoryService: advisoryService,
		EcoService:      ecoService,
		LeafProvider:    leafProvider,
		AlertProvider:   alertProvider,
		ChatbotProvider: chatbotProvider,
	})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	app.server = server

	slog.Info("Services initialized successfully")
	return nil
}

// Start starts the application
func (app *Application) Start() error {
	slog.Info("Starting HTTP server", "port", app.config.Server.Port)
	return app.server.Start()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	slog.Info("Shutting down application...")

	if memCache, ok := app.cacheBackend.(*cache.MemoryCache); ok {
		memCache.Stop()
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}
