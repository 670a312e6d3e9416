package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	_ "ev_warranty/docs"
	"ev_warranty/internal/adapter/http/handlers"
	"ev_warranty/internal/adapter/persistence/repository"
	"ev_warranty/internal/adapter/remote"
	"ev_warranty/internal/config"
	"ev_warranty/internal/infrastructure/database"
	"ev_warranty/internal/infrastructure/logging"
	"ev_warranty/internal/infrastructure/metrics"
	"ev_warranty/internal/usecase"
	"ev_warranty/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the wired use cases the HTTP layer serves.
type Dependencies struct {
	Estimates usecase.IEstimateUseCase
	Recall    usecase.IRecallConstraintUseCase
	Claims    interfaces.IClaimSource
	Sessions  *usecase.SessionRegistry
	Registry  *prometheus.Registry
	Logger    *zap.Logger
}

// Build wires the use cases for cfg. Recall events and the part catalog always
// come from the remote authority; estimates and claims come from it too unless
// AUTHORITY_MODE=dynamodb selects the self-hosted store.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Dependencies, error) {
	logger = logging.OrNop(logger)
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(reg)

	client := remote.NewClient(cfg.AuthorityBaseURL, cfg.AuthorityToken, cfg.AuthorityTimeout, logger, m)

	var (
		authority interfaces.IEstimateAuthority
		claims    interfaces.IClaimSource
	)
	switch cfg.AuthorityMode {
	case config.AuthorityModeDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return Dependencies{}, err
		}
		claimRepo := repository.NewClaimDynamoRepository(ddb)
		estimateRepo := repository.NewEstimateVersionDynamoRepository(ddb, claimRepo)
		if os.Getenv("DYNAMODB_ENDPOINT") != "" {
			if err := database.EnsureTables(ctx, ddb, estimateRepo.TableName(), claimRepo.TableName(), logger); err != nil {
				return Dependencies{}, err
			}
		}
		authority, claims = estimateRepo, claimRepo
	default:
		authority = remote.NewEstimateAuthority(client)
		claims = remote.NewClaimSource(client)
	}
	logger.Info("[routes] authority wired", zap.String("mode", cfg.AuthorityMode), zap.String("base_url", cfg.AuthorityBaseURL))

	catalog := usecase.NewPartCatalogUseCase(remote.NewPartCatalogSource(client), cfg.CatalogTTL, logger, m)
	recall := usecase.NewRecallConstraintUseCase(remote.NewRecallEventSource(client), catalog, logger, m)
	estimates := usecase.NewEstimateUseCase(authority, claims, recall, catalog, logger, m)
	sessions := usecase.NewSessionRegistry(usecase.SessionDeps{
		Claims:      claims,
		Estimates:   estimates,
		Recall:      recall,
		LoadTimeout: cfg.SessionLoadTimeout,
		IdleTTL:     cfg.SessionIdleTTL,
		Logger:      logger,
		Metrics:     m,
	})

	return Dependencies{
		Estimates: estimates,
		Recall:    recall,
		Claims:    claims,
		Sessions:  sessions,
		Registry:  reg,
		Logger:    logger,
	}, nil
}

// NewRouter mounts every route on a fresh gin engine.
func NewRouter(deps Dependencies) *gin.Engine {
	logger := logging.OrNop(deps.Logger)

	router := gin.New()
	router.Use(ginLogger(logger))
	router.Use(ginRecovery(logger))
	router.Use(corsMiddleware())

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	estimateHandler := handlers.NewEstimateHandler(deps.Estimates, logger)
	recallHandler := handlers.NewRecallHandler(deps.Recall, deps.Claims, logger)
	sessionHandler := handlers.NewSessionHandler(deps.Sessions, logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, estimateHandler, recallHandler)
	addSessionRoutes(v1, sessionHandler)
	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	deps, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go deps.Sessions.RunSweeper(ctx, 0)

	errCh := make(chan error, 1)
	go func() {
		deps.Logger.Info("[routes] server listening", zap.String("address", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	deps.Logger.Info("[routes] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
