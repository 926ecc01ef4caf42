package service

import (
	"context"
	"time"

	"gopkg.in/gomail.v2"

	"holiday_planner/internal/config"
	"holiday_planner/pkg/logger"
)

type Recipient struct {
	Name  string
	Email string
}

// Notifier delivers a message to a set of recipients. Implementations
// are best-effort collaborators; the caller decides whether to wait.
type Notifier interface {
	Send(ctx context.Context, to []Recipient, subject, body string) error
}

type smtpNotifier struct {
	cfg config.SMTPConfig
	log logger.Logger
}

func NewSMTPNotifier(cfg config.SMTPConfig, log logger.Logger) Notifier {
	return &smtpNotifier{cfg: cfg, log: log}
}

func (n *smtpNotifier) Send(ctx context.Context, to []Recipient, subject, body string) error {
	if len(to) == 0 {
		return nil
	}

	message := gomail.NewMessage()
	message.SetAddressHeader("From", n.cfg.From, n.cfg.FromName)

	addresses := make([]string, 0, len(to))
	for _, r := range to {
		addresses = append(addresses, message.FormatAddress(r.Email, r.Name))
	}
	message.SetHeader("To", addresses...)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	dialer := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)
	return dialer.DialAndSend(message)
}

// Dispatcher fans notifications out without blocking the caller. A failed
// send is logged and never affects the already-committed operation.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	log      logger.Logger
}

func NewDispatcher(notifier Notifier, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		timeout:  30 * time.Second,
		log:      log,
	}
}

// Dispatch sends in the background. The request context is deliberately
// not reused: the HTTP response must not wait for SMTP.
func (d *Dispatcher) Dispatch(to []Recipient, subject, body string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.notifier.Send(ctx, to, subject, body); err != nil {
			d.log.Error("Notification dispatch failed", "subject", subject, "recipients", len(to), "error", err)
		}
	}()
}

// DispatchSync sends inline, for callers that need the delivery result.
func (d *Dispatcher) DispatchSync(ctx context.Context, to []Recipient, subject, body string) error {
	return d.notifier.Send(ctx, to, subject, body)
}
