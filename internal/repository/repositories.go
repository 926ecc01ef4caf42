package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"holiday_planner/pkg/logger"
)

type Repositories struct {
	User         UserRepository
	Holiday      HolidayRepository
	Activity     ActivityRepository
	Chat         ChatRepository
	Stats        StatsRepository
	RateLimit    RateLimitRepository
	WeatherCache WeatherCacheRepository
}

func NewRepositories(db *pgxpool.Pool, redis *redis.Client, log logger.Logger) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db, log),
		Holiday:      NewHolidayRepository(db, log),
		Activity:     NewActivityRepository(db, log),
		Chat:         NewChatRepository(db, log),
		Stats:        NewStatsRepository(db, log),
		RateLimit:    NewRateLimitRepository(redis, log),
		WeatherCache: NewWeatherCacheRepository(redis, log),
	}
}
