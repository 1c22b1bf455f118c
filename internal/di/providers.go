package di

import (
	"fmt"

	"AdsPull/internal/domain/models"
	domrepo "AdsPull/internal/domain/repository"
	"AdsPull/internal/handler/api"
	internalrepo "AdsPull/internal/repository"
	"AdsPull/internal/service/googleads"
	"AdsPull/internal/service/meta"
	"AdsPull/internal/service/shopify"
	"AdsPull/internal/usecase"
	"AdsPull/pkg/cache"
	"AdsPull/pkg/config"
	xhttp "AdsPull/pkg/http"
	pkgkafka "AdsPull/pkg/kafka"
	xlogger "AdsPull/pkg/logger"
	"AdsPull/pkg/metrics"
	"AdsPull/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	return xlogger.New(&xlogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideHTTPClient creates the HTTP client shared by vendor wrappers.
func ProvideHTTPClient() *xhttp.Client {
	return xhttp.NewClient()
}

// ProvideChannelFeeds builds one feed per known channel. Meta is required;
// Google is optional and gets a nil source (reported as absent) when its
// credentials are incomplete. Credential presence is decided here, never
// inside the aggregation core.
func ProvideChannelFeeds(cfg *config.Config, hc *xhttp.Client) []usecase.ChannelFeed {
	feeds := []usecase.ChannelFeed{
		{
			Name:     models.ChannelMeta,
			Source:   meta.New(cfg.Meta.AccessToken, cfg.Meta.AccountID, meta.WithHTTPClient(hc)),
			Rule:     usecase.MetaRule,
			Required: true,
		},
	}

	google := usecase.ChannelFeed{Name: models.ChannelGoogle, Rule: usecase.GoogleRule}
	if cfg.GoogleEnabled() {
		google.Source = googleads.New(
			cfg.Google.DeveloperToken,
			cfg.Google.AccessToken,
			cfg.Google.CustomerID,
			googleads.WithLoginCustomerID(cfg.Google.LoginCustomerID),
			googleads.WithHTTPClient(hc),
		)
	}
	feeds = append(feeds, google)
	return feeds
}

// ProvideOrderSource creates the Shopify orders client.
func ProvideOrderSource(cfg *config.Config, hc *xhttp.Client) domrepo.OrderSource {
	return shopify.New(cfg.Shopify.ShopDomain, cfg.Shopify.AccessToken, shopify.WithHTTPClient(hc))
}

// ProvideCacheService creates the cache backend: Redis when enabled,
// in-process otherwise.
func ProvideCacheService(cfg *config.Config) (cache.Service, error) {
	if cfg.Cache.Redis.Enabled {
		c, err := cache.NewRedisCache(
			cache.WithRedisHost(cfg.Cache.Redis.Host),
			cache.WithRedisPort(cfg.Cache.Redis.Port),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	}
	return cache.NewMemoryCache(cfg.Cache.MemoryMaxSize), nil
}

// ProvideReportCache wraps the cache backend with the report TTL.
func ProvideReportCache(svc cache.Service, cfg *config.Config) domrepo.ReportCache {
	return internalrepo.NewCacheReportCache(svc, cfg.Report.CacheTTL)
}

// ProvideReportPublisher creates the Kafka report publisher, or nil when
// export is disabled.
func ProvideReportPublisher(cfg *config.Config) (domrepo.ReportPublisher, error) {
	if !cfg.Export.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Export.Brokers),
		pkgkafka.WithRequiredAcks(cfg.Export.RequiredAcks),
		pkgkafka.WithCompression(cfg.Export.Compression),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaReportPublisher(producer, cfg.Export.Topic), nil
}

// ProvideReportUseCase creates the report orchestration use case.
func ProvideReportUseCase(
	feeds []usecase.ChannelFeed,
	orders domrepo.OrderSource,
	reportCache domrepo.ReportCache,
	pub domrepo.ReportPublisher,
	m domrepo.Metrics,
	logger *xlogger.Logger,
	cfg *config.Config,
) *usecase.ReportUseCase {
	return usecase.NewReportUseCase(feeds, orders, reportCache, pub, m, logger, cfg.Report.FetchTimeout)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(logger *xlogger.Logger, uc *usecase.ReportUseCase) xhttp.Handler {
	return api.NewReportHandler(logger, uc)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *xlogger.Logger,
	handler xhttp.Handler,
	cacheSvc cache.Service,
	pub domrepo.ReportPublisher,
) *server.App {
	return server.New(cfg, logger, handler, cacheSvc, pub)
}
