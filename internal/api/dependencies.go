package api

import (
	"time"

	"jamii-hub/mtaani/internal/auth"
	"jamii-hub/mtaani/internal/common"
	"jamii-hub/mtaani/internal/config"
	"jamii-hub/mtaani/internal/db"
	"jamii-hub/mtaani/internal/db/repositories"
	"jamii-hub/mtaani/internal/logging"
	"jamii-hub/mtaani/internal/metrics"
	"jamii-hub/mtaani/internal/services"
)

type Repositories struct {
	Store repositories.Store
	// Stats is nil when the server runs on the in-memory backend.
	Stats *repositories.StatsRepository
}

type Services struct {
	Cache         common.CacheInterface
	Registration  *services.RegistrationService
	Provisioning  *services.ProvisioningService
	Tickets       *services.TicketService
	Contributions *services.ContributionService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	Verifier auth.TokenVerifier
}

// InitDependencies wires the store backend, cache, token verifier and
// services selected by configuration.
func InitDependencies(cfg *config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{}

	if cfg.Store.Backend == "memory" {
		repos.Store = repositories.NewMemoryStore()
		logging.Info("Using in-memory store backend")
	} else {
		gormStore := repositories.NewGormStore(db.PgDB)
		if err := gormStore.Migrate(); err != nil {
			return nil, err
		}
		repos.Store = gormStore
		repos.Stats = repositories.NewStatsRepository(db.DB)
		logging.Info("Using relational store backend")
	}

	var cache common.CacheInterface
	if cfg.Redis.Host != "" {
		redisCache, err := common.NewRedisCacheService(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password)
		if err != nil {
			logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
			cache = common.NewCacheService(5*time.Minute, 10*time.Minute)
		} else {
			cache = redisCache
			logging.Info("Using Redis cache", "host", cfg.Redis.Host)
		}
	} else {
		cache = common.NewCacheService(5*time.Minute, 10*time.Minute)
	}

	svcs := &Services{
		Cache:         cache,
		Registration:  services.NewRegistrationService(repos.Store, metricsReg),
		Provisioning:  services.NewProvisioningService(repos.Store, metricsReg),
		Tickets:       services.NewTicketService(repos.Store, metricsReg),
		Contributions: services.NewContributionService(repos.Store, repos.Stats, cache, metricsReg),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
		Verifier: auth.NewJWTVerifier([]byte(cfg.Auth.TokenSecret)),
	}, nil
}
