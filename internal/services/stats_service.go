package services

import (
	"context"
	"time"

	"auto-pana/garaje/internal/common"
	"auto-pana/garaje/internal/db/repositories"
	"auto-pana/garaje/internal/metrics"
)

const statsCacheKey = "analytics:stats"

// Stats is the aggregate snapshot served by the analytics endpoint.
type Stats struct {
	TotalUsers         int64            `json:"totalUsers"`
	TotalVehicles      int64            `json:"totalVehicles"`
	VehiclesByFuelType map[string]int64 `json:"vehiclesByFuelType"`
	GeneratedAt        time.Time        `json:"generatedAt"`
}

// StatsService aggregates registration and vehicle counts behind a
// cache so the endpoint does not hammer the database.
type StatsService struct {
	users    *repositories.AppUserRepositoryGORM
	vehicles *repositories.UserVehicleRepositoryGORM
	cache    common.CacheInterface
	ttl      time.Duration
	metrics  *metrics.MetricsRegistry
}

func NewStatsService(
	users *repositories.AppUserRepositoryGORM,
	vehicles *repositories.UserVehicleRepositoryGORM,
	cache common.CacheInterface,
	ttl time.Duration,
	metricsReg *metrics.MetricsRegistry,
) *StatsService {
	return &StatsService{users: users, vehicles: vehicles, cache: cache, ttl: ttl, metrics: metricsReg}
}

// Get returns the stats snapshot, at most ttl stale.
func (s *StatsService) Get(ctx context.Context) (interface{}, error) {
	if val, found := s.cache.Get(statsCacheKey); found {
		s.metrics.CacheHitsTotal.WithLabelValues(statsCacheKey).Inc()
		return val, nil
	}
	s.metrics.CacheMissesTotal.WithLabelValues(statsCacheKey).Inc()

	return s.cache.GetOrSet(statsCacheKey, s.ttl, func() (any, error) {
		return s.compute(ctx)
	})
}

func (s *StatsService) compute(ctx context.Context) (*Stats, error) {
	start := time.Now()
	defer func() {
		s.metrics.DBQueryDuration.WithLabelValues("stats_aggregate").Observe(time.Since(start).Seconds())
		s.metrics.DBQueriesTotal.WithLabelValues("stats_aggregate").Inc()
	}()

	totalUsers, err := s.users.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	totalVehicles, err := s.vehicles.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	byFuel, err := s.vehicles.CountByFuelType(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalUsers:         totalUsers,
		TotalVehicles:      totalVehicles,
		VehiclesByFuelType: byFuel,
		GeneratedAt:        time.Now().UTC(),
	}, nil
}
