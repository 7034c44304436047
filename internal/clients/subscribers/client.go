package subscribers

import (
	"affiliate-server/internal/config"
	"affiliate-server/internal/observability"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrSubscriberNotFound is returned when the account system has no user for the email
var ErrSubscriberNotFound = errors.New("subscriber not found")

// Subscriber is the eligibility-relevant slice of an account in the external account system
type Subscriber struct {
	IsSubscribed        bool `json:"is_subscribed"`
	OnboardingCompleted bool `json:"onboarding_completed"`
}

// Active reports whether the account currently qualifies for attribution
func (s Subscriber) Active() bool {
	return s.IsSubscribed || s.OnboardingCompleted
}

// Client reads users from the external account system's REST interface
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a client from explicit configuration
func NewClient(cfg config.SubscribersConfig, logger *observability.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// GetSubscriberByEmail looks up a single account by email
func (c *Client) GetSubscriberByEmail(ctx context.Context, email string) (Subscriber, error) {
	query := url.Values{}
	query.Set("select", "is_subscribed,onboarding_completed")
	query.Set("email", "eq."+email)
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rest/v1/users?"+query.Encode(), nil)
	if err != nil {
		return Subscriber{}, fmt.Errorf("failed to build subscriber request: %w", err)
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to query subscriber", err)
		return Subscriber{}, fmt.Errorf("failed to query subscriber: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Subscriber{}, fmt.Errorf("failed to read subscriber response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("account system returned status %d", resp.StatusCode)
		ctx = observability.WithFields(ctx, observability.Field{Key: "response_body", Value: string(body)})
		c.logger.Error(ctx, "subscriber lookup failed", err)
		return Subscriber{}, err
	}

	var rows []Subscriber
	if err := json.Unmarshal(body, &rows); err != nil {
		return Subscriber{}, fmt.Errorf("failed to decode subscriber response: %w", err)
	}
	if len(rows) == 0 {
		return Subscriber{}, ErrSubscriberNotFound
	}
	return rows[0], nil
}
