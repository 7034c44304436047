package mail

import (
	"affiliate-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resendlabs/resend-go"
)

// ErrMissingAPIKey is returned when the client is built without a Resend key
var ErrMissingAPIKey = errors.New("resend api key is empty")

// emailSender is the subset of the Resend emails service this client uses
type emailSender interface {
	Send(params *resend.SendEmailRequest) (resend.SendEmailResponse, error)
}

// ResendClient delivers plain-text notification emails through Resend
type ResendClient struct {
	emails emailSender
	logger *observability.Logger
}

func NewResendClient(apiKey string, logger *observability.Logger) (*ResendClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		emails: client.Emails,
		logger: logger,
	}, nil
}

// SendText sends a plain-text email and returns the provider message id
func (c *ResendClient) SendText(ctx context.Context, from, to, subject, body string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	if to == "" {
		return "", fmt.Errorf("no recipient for %q", subject)
	}

	res, err := c.emails.Send(&resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent")
	return res.Id, nil
}
