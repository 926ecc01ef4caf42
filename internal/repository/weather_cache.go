package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"holiday_planner/internal/domain"
	"holiday_planner/pkg/logger"
)

// WeatherCacheRepository short-circuits repeated weather lookups for the
// same city. A cache miss returns (nil, nil).
type WeatherCacheRepository interface {
	Get(ctx context.Context, city string) (*domain.WeatherReport, error)
	Set(ctx context.Context, report *domain.WeatherReport, ttl time.Duration) error
}

type weatherCacheRepository struct {
	redis *redis.Client
	log   logger.Logger
}

func NewWeatherCacheRepository(redis *redis.Client, log logger.Logger) WeatherCacheRepository {
	return &weatherCacheRepository{redis: redis, log: log}
}

func weatherKey(city string) string {
	return "weather:" + strings.ToLower(strings.TrimSpace(city))
}

func (r *weatherCacheRepository) Get(ctx context.Context, city string) (*domain.WeatherReport, error) {
	data, err := r.redis.Get(ctx, weatherKey(city)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to read weather cache", "error", err)
		return nil, err
	}

	report := &domain.WeatherReport{}
	if err := json.Unmarshal(data, report); err != nil {
		r.log.Warn("Dropping corrupt weather cache entry", "city", city, "error", err)
		return nil, nil
	}

	return report, nil
}

func (r *weatherCacheRepository) Set(ctx context.Context, report *domain.WeatherReport, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	if err := r.redis.Set(ctx, weatherKey(report.City), data, ttl).Err(); err != nil {
		r.log.Error("Failed to write weather cache", "error", err)
		return err
	}

	return nil
}
