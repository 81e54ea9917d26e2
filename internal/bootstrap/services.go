package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quyennt2020/device-repair-management-system-sub005/config"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/adapters/slamonitor"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/data"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/observability/statsd"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/service"
)

const (
	// shutdownWaitTimeout is the maximum time to wait for services to stop gracefully.
	shutdownWaitTimeout = 15 * time.Second
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Customers      *service.CustomerService
	Cases          *service.CaseService
	Documents      *service.DocumentService
	SLADefinitions *service.SLADefinitionService
	Observability  ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	MetricsSink   *statsd.Client
	MetricsConfig config.ObservabilityMetricsConfig
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	DB                *sql.DB
	Redis             redis.UniversalClient
	CustomerRepo      *data.CustomerRepo
	CaseRepo          *data.CaseRepo
	DocumentRepo      *data.DocumentRepo
	SLADefinitionRepo *data.SLADefinitionRepo
	EscalationRepo    *data.EscalationRepo
	CacheRepo         *data.RedisCacheRepo
}

// buildObservability configures the metrics sink.
func buildObservability(logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	obsLogger := logger
	if obsLogger == nil {
		obsLogger = slog.Default()
	}

	var metricsSink *statsd.Client
	if cfg.Metrics.IsEnabled() {
		client, err := statsd.NewClient(statsd.Config{
			Enabled: true,
			Address: cfg.Metrics.StatsdAddress,
			Prefix:  cfg.Metrics.StatsdPrefix,
			Logger:  obsLogger,
		})
		if err != nil {
			obsLogger.Error("failed to initialise statsd client", "error", err)
		} else {
			metricsSink = client
		}
	}

	return ObservabilityContainer{
		MetricsSink:   metricsSink,
		MetricsConfig: cfg.Metrics,
	}
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, redisClient redis.UniversalClient) *serviceRepositories {
	repos := &serviceRepositories{
		DB:                db,
		Redis:             redisClient,
		CustomerRepo:      data.NewCustomerRepo(db),
		CaseRepo:          data.NewCaseRepo(db),
		DocumentRepo:      data.NewDocumentRepo(db),
		SLADefinitionRepo: data.NewSLADefinitionRepo(db),
		EscalationRepo:    data.NewEscalationRepo(db),
	}
	if redisClient != nil {
		repos.CacheRepo = data.NewRedisCacheRepo(redisClient)
	}
	return repos
}

// NewServices wires business services using repositories and observability adapters.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil {
		return ServiceContainer{}, errors.New("service deps are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := deps.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	observability := buildObservability(logger, appCfg.Observability)
	repos := buildRepositories(deps.DB, deps.RedisClient)

	customerSvc, err := service.NewCustomerService(service.CustomerServiceOptions{
		Repo:   repos.CustomerRepo,
		Logger: logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build customer service: %w", err)
	}

	caseSvc, err := service.NewCaseService(service.CaseServiceOptions{
		Repo:        repos.CaseRepo,
		Escalations: repos.EscalationRepo,
		Logger:      logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build case service: %w", err)
	}

	documentSvc, err := service.NewDocumentService(service.DocumentServiceOptions{
		Repo:   repos.DocumentRepo,
		Cases:  repos.CaseRepo,
		Logger: logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build document service: %w", err)
	}

	slaOpts := service.SLADefinitionServiceOptions{
		Repo:     repos.SLADefinitionRepo,
		CacheTTL: appCfg.Cache.DefaultTTL,
		Logger:   logger,
	}
	if repos.CacheRepo != nil {
		slaOpts.Cache = repos.CacheRepo
	}
	slaSvc, err := service.NewSLADefinitionService(slaOpts)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build sla definition service: %w", err)
	}

	return ServiceContainer{
		Customers:      customerSvc,
		Cases:          caseSvc,
		Documents:      documentSvc,
		SLADefinitions: slaSvc,
		Observability:  observability,
	}, nil
}

// ServiceOrchestrationConfig contains configuration for service orchestration.
type ServiceOrchestrationConfig struct {
	Config      *config.AppConfig
	Services    ServiceContainer
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceStartupDeps groups dependencies for service startup.
type serviceStartupDeps struct {
	ctx             context.Context
	cfg             *ServiceOrchestrationConfig
	logger          *slog.Logger
	enabledServices map[config.ServiceMode]bool
	errCh           chan error
}

// backgroundServiceHandle tracks a running background service.
type backgroundServiceHandle struct {
	name string
	done <-chan struct{}
}

// ServiceStartupResult holds the results of starting all services.
type ServiceStartupResult struct {
	HTTPServer *http.Server
	Background []backgroundServiceHandle
}

// buildMonitorRunner wires the SLA monitor runner when the sla-monitor service
// mode is enabled. Returns nil when disabled.
func buildMonitorRunner(deps *serviceStartupDeps) (*slamonitor.Runner, error) {
	if !deps.enabledServices[config.ServiceModeSLAMonitor] {
		return nil, nil
	}

	opts := slamonitor.RunnerOptions{
		DB:      deps.cfg.DB,
		Config:  deps.cfg.Config.SLAMonitor,
		Logger:  deps.logger,
		Metrics: deps.cfg.Services.Observability.MetricsSink,
	}
	if deps.cfg.RedisClient != nil {
		opts.Cache = data.NewRedisCacheRepo(deps.cfg.RedisClient)
	}

	runner, err := slamonitor.NewRunner(opts)
	if err != nil {
		return nil, fmt.Errorf("build sla monitor runner: %w", err)
	}
	return runner, nil
}

// launchMonitor starts the monitor runner in the background and reports its
// failure on the error channel.
func launchMonitor(deps *serviceStartupDeps, runner *slamonitor.Runner) backgroundServiceHandle {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := runner.Run(deps.ctx); err != nil {
			errMsg := fmt.Errorf("sla monitor failed: %w", err)
			select {
			case deps.errCh <- errMsg:
			case <-deps.ctx.Done():
			default:
				deps.logger.WarnContext(deps.ctx, "dropping background service error",
					"service", "sla monitor", "error", errMsg)
			}
		}
	}()

	deps.logger.InfoContext(deps.ctx, "background service started", "service", "sla monitor")
	return backgroundServiceHandle{name: "sla monitor", done: done}
}

// startServices starts all enabled services and returns their handles.
func startServices(deps *serviceStartupDeps) (ServiceStartupResult, error) {
	result := ServiceStartupResult{}

	runner, err := buildMonitorRunner(deps)
	if err != nil {
		return result, err
	}
	if runner != nil {
		result.Background = append(result.Background, launchMonitor(deps, runner))
	}

	if deps.enabledServices[config.ServiceModeHTTP] {
		httpCfg := &HTTPServerConfig{
			Config:   deps.cfg.Config,
			Services: deps.cfg.Services,
			Logger:   deps.logger,
		}
		// Expose the monitor admin surface only when the monitor runs here.
		if runner != nil {
			httpCfg.Monitor = runner.Monitor()
		}
		result.HTTPServer = StartHTTPServer(httpCfg)
	}

	return result, nil
}

// RunServicesWithShutdown starts all enabled services and manages their lifecycle.
// This function blocks until a shutdown signal is received or a service fails.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}

	serviceCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	enabledServices, err := cfg.Config.GetEnabledServices()
	if err != nil {
		return fmt.Errorf("determine enabled services: %w", err)
	}
	errCh := make(chan error, len(enabledServices)+1)

	result, err := startServices(&serviceStartupDeps{
		ctx:             serviceCtx,
		cfg:             cfg,
		logger:          logger,
		enabledServices: enabledServices,
		errCh:           errCh,
	})
	if err != nil {
		return err
	}

	return waitForShutdown(shutdownConfig{
		ctx:         serviceCtx,
		cancel:      cancel,
		errCh:       errCh,
		httpServer:  result.HTTPServer,
		logger:      logger,
		backgrounds: result.Background,
	})
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	ctx         context.Context
	cancel      context.CancelFunc
	errCh       <-chan error
	httpServer  *http.Server
	logger      *slog.Logger
	backgrounds []backgroundServiceHandle
}

// waitForShutdown waits for shutdown signal or service error.
func waitForShutdown(cfg shutdownConfig) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		cfg.logger.Info("shutting down services...")
		cfg.cancel() // Cancel service context before waiting
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("service error", "error", err)
		cfg.cancel() // Cancel service context before waiting
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop attempts to gracefully stop all services.
func gracefulStop(cfg shutdownConfig) error {
	if cfg.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWaitTimeout)
		defer cancel()

		if err := ShutdownHTTPServer(ShutdownConfig{
			Context: shutdownCtx,
			Server:  cfg.httpServer,
			Logger:  cfg.logger,
		}); err != nil {
			return err
		}
	}

	for _, svc := range cfg.backgrounds {
		waitForService(svc.done, svc.name, cfg.logger)
	}

	return nil
}

// waitForService waits for a service to finish with timeout.
func waitForService(done <-chan struct{}, name string, logger *slog.Logger) {
	if done == nil {
		return
	}
	select {
	case <-done:
		logger.Info(name + " stopped")
	case <-time.After(shutdownWaitTimeout):
		logger.Warn("timeout waiting for " + name + " to stop")
	}
}
