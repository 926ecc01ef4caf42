package service

import (
	"holiday_planner/internal/config"
	"holiday_planner/internal/repository"
	"holiday_planner/pkg/logger"
)

type Services struct {
	Auth       AuthService
	User       UserService
	Holiday    HolidayService
	Invitation InvitationService
	Activity   ActivityService
	Chat       ChatService
	Stats      StatsService
	RateLimit  RateLimitService
	Weather    WeatherService
	Calendar   CalendarService
	Dispatcher *Dispatcher
	Hub        *ChatHub
}

func NewServices(repos *repository.Repositories, cfg *config.Config, log logger.Logger) *Services {
	dispatcher := NewDispatcher(NewSMTPNotifier(cfg.SMTP, log), log)
	hub := NewChatHub(log)

	return &Services{
		Auth:       NewAuthService(repos.User, cfg.JWT, log),
		User:       NewUserService(repos.User, log),
		Holiday:    NewHolidayService(repos.Holiday, log),
		Invitation: NewInvitationService(repos.Holiday, repos.User, dispatcher, log),
		Activity:   NewActivityService(repos.Activity, repos.Holiday, dispatcher, log),
		Chat:       NewChatService(repos.Chat, repos.Holiday, hub, log),
		Stats:      NewStatsService(repos.Stats, log),
		RateLimit:  NewRateLimitService(repos.RateLimit, log),
		Weather:    NewWeatherService(cfg.Weather, repos.WeatherCache, log),
		Calendar:   NewCalendarService(),
		Dispatcher: dispatcher,
		Hub:        hub,
	}
}
