package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	app_service "chain-persona-engine/internal/application/service"
	domain_service "chain-persona-engine/internal/domain/service"
	"chain-persona-engine/internal/infrastructure/config"
	"chain-persona-engine/internal/infrastructure/explorer"
	"chain-persona-engine/internal/infrastructure/logger"
	"chain-persona-engine/internal/infrastructure/oracle"
	"chain-persona-engine/internal/server"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Create logger
	log, err := logger.NewLogger(cfg.App.LogLevel)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	// Create FX application
	app := fx.New(
		// Provide dependencies
		fx.Supply(cfg),
		fx.Supply(log),

		// Infrastructure and domain providers
		fx.Provide(
			domain_service.NewTransactionNormalizer,
			newInsightOracle,
			newAnalysisOracle,
			newProtocolResolver,
			newPersonaEngines,
		),

		// HTTP surface
		fx.Provide(
			newHandlers,
			server.NewRouter,
			newHTTPServer,
		),

		// Lifecycle hooks
		fx.Invoke(startServer),

		// Configure logging
		fx.WithLogger(func() fxevent.Logger {
			return fxevent.NopLogger
		}),
	)

	// Start the application
	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		log.Error("Failed to start application", zap.Error(err))
		os.Exit(1)
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down application...")

	// Stop the application
	stopCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := app.Stop(stopCtx); err != nil {
		log.Error("Failed to stop application gracefully", zap.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped successfully")
}

// newInsightOracle wires the primary Gemini client, or nothing when no API
// key is configured: the service then runs with the deterministic core only.
func newInsightOracle(cfg *config.Config, log *logger.Logger) domain_service.InsightOracle {
	if cfg.Gemini.APIKey == "" {
		log.Info("no gemini api key configured, ai insights disabled")
		return nil
	}
	return oracle.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.BaseURL, cfg.Gemini.Timeout, log)
}

// newAnalysisOracle wires the secondary client behind the detailed-analysis
// endpoint. Feature-flagged by its own key.
func newAnalysisOracle(cfg *config.Config, log *logger.Logger) domain_service.AnalysisOracle {
	if cfg.Gemini.AnalysisKey == "" {
		return nil
	}
	return oracle.NewGeminiClient(cfg.Gemini.AnalysisKey, cfg.Gemini.AnalysisModel, cfg.Gemini.BaseURL, cfg.Gemini.Timeout, log)
}

// newProtocolResolver gives the resolver its own oracle instance on the
// faster model; protocol identification is a lookup, not a narrative.
func newProtocolResolver(cfg *config.Config, log *logger.Logger) *domain_service.ProtocolResolverService {
	var protocolOracle domain_service.ProtocolOracle
	if cfg.Gemini.APIKey != "" {
		protocolOracle = oracle.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.AnalysisModel, cfg.Gemini.BaseURL, cfg.Gemini.Timeout, log)
	}
	return domain_service.NewProtocolResolverService(protocolOracle, log)
}

// newPersonaEngines builds one persona pipeline per configured chain.
func newPersonaEngines(
	cfg *config.Config,
	normalizer *domain_service.TransactionNormalizer,
	resolver *domain_service.ProtocolResolverService,
	insights domain_service.InsightOracle,
	log *logger.Logger,
) (map[string]domain_service.PersonaService, error) {
	engines := make(map[string]domain_service.PersonaService, len(cfg.Explorer.Chains))
	for _, chain := range cfg.Explorer.Chains {
		source, err := explorer.NewClient(chain, cfg.Explorer.APIKey(chain), cfg.Explorer.RequestTimeout, normalizer, log)
		if err != nil {
			return nil, fmt.Errorf("configure chain %s: %w", chain, err)
		}
		engines[chain] = app_service.NewPersonaApplicationService(source, normalizer, resolver, insights, cfg, log)
	}
	return engines, nil
}

func newHandlers(
	engines map[string]domain_service.PersonaService,
	analysis domain_service.AnalysisOracle,
	insights domain_service.InsightOracle,
	cfg *config.Config,
	log *logger.Logger,
) *server.Handlers {
	return server.NewHandlers(engines, analysis, cfg.Persona.ChatQuota, insights != nil, log)
}

func newHTTPServer(cfg *config.Config, router http.Handler, log *logger.Logger) *server.Server {
	return server.New(cfg.App.HTTPPort, router, log)
}

// startServer runs the HTTP server under the fx lifecycle.
func startServer(lifecycle fx.Lifecycle, srv *server.Server, log *logger.Logger) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.Start(); err != nil {
					log.Error("HTTP server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
