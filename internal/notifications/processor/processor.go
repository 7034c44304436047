package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"affiliate-server/internal/observability"
	"context"
	"fmt"
)

const (
	insertEventType         = "INSERT"
	adminNotificationsTable = "admin_notifications"
)

// AlertMailer sends plain-text alert emails
type AlertMailer interface {
	SendText(ctx context.Context, from, to, subject, body string) (string, error)
}

// AlertConfig holds where admin alerts are emailed. An empty recipient disables email.
type AlertConfig struct {
	From string
	To   string
}

// RowEvent is a database row-change notification
type RowEvent struct {
	Type   string            `json:"type"`
	Table  string            `json:"table"`
	Record AdminNotification `json:"record"`
}

// AdminNotification is a row of the admin alerts table
type AdminNotification struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type AlertProcessor struct {
	mailer AlertMailer
	config AlertConfig
	logger *observability.Logger
}

// New creates an alert processor. mailer may be nil when email delivery is not configured.
func New(mailer AlertMailer, config AlertConfig, logger *observability.Logger) AlertProcessor {
	return AlertProcessor{
		mailer: mailer,
		config: config,
		logger: logger,
	}
}

// HandleRowEvent logs new admin notifications and forwards them by email.
// It reports whether the event was an admin notification insert.
func (p *AlertProcessor) HandleRowEvent(ctx context.Context, event RowEvent) bool {
	if event.Type != insertEventType || event.Table != adminNotificationsTable {
		return false
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "notification_type", Value: event.Record.Type},
		observability.Field{Key: "notification_message", Value: event.Record.Message},
	)
	p.logger.Info(ctx, "admin notification received")

	if p.mailer == nil || p.config.To == "" {
		return true
	}

	subject := fmt.Sprintf("[Affiliate alert] %s", event.Record.Type)
	if _, err := p.mailer.SendText(ctx, p.config.From, p.config.To, subject, event.Record.Message); err != nil {
		p.logger.WarnWithError(ctx, "failed to email admin notification", err)
	}
	return true
}
