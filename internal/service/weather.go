package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"holiday_planner/internal/config"
	"holiday_planner/internal/domain"
	"holiday_planner/internal/repository"
	errs "holiday_planner/pkg/errors"
	"holiday_planner/pkg/logger"
)

// WeatherService enriches holidays and activities with a forecast for
// their city. Purely informational; never part of any access decision.
type WeatherService interface {
	GetForCity(ctx context.Context, city string) (*domain.WeatherReport, error)
}

type weatherService struct {
	cfg     config.WeatherConfig
	cache   repository.WeatherCacheRepository
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	log     logger.Logger
}

func NewWeatherService(cfg config.WeatherConfig, cache repository.WeatherCacheRepository, log logger.Logger) WeatherService {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weather",
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 2
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &weatherService{
		cfg:     cfg,
		cache:   cache,
		client:  &http.Client{Timeout: 10 * time.Second},
		breaker: breaker,
		log:     log,
	}
}

type weatherAPIResponse struct {
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

func (s *weatherService) GetForCity(ctx context.Context, city string) (*domain.WeatherReport, error) {
	if city == "" {
		return nil, errs.Validation("city is required")
	}

	cached, err := s.cache.Get(ctx, city)
	if err == nil && cached != nil {
		return cached, nil
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.fetch(ctx, city)
	})
	if err != nil {
		s.log.Error("Weather lookup failed", "city", city, "error", err)
		return nil, errs.NotFound("no weather data available for %s", city)
	}

	report := result.(*domain.WeatherReport)
	if err := s.cache.Set(ctx, report, s.cfg.CacheTTL); err != nil {
		s.log.Warn("Failed to cache weather report", "city", city, "error", err)
	}

	return report, nil
}

func (s *weatherService) fetch(ctx context.Context, city string) (*domain.WeatherReport, error) {
	endpoint := fmt.Sprintf("%s/weather?q=%s&units=metric&appid=%s",
		s.cfg.BaseURL, url.QueryEscape(city), s.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var payload weatherAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	report := &domain.WeatherReport{
		City:        city,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		report.Description = payload.Weather[0].Description
		report.Icon = payload.Weather[0].Icon
	}

	return report, nil
}
