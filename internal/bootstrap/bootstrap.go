package bootstrap

import (
	"affiliate-server/internal/config"
	"affiliate-server/internal/eligibility"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"
	"context"
	"fmt"
	"time"

	kafkaClient "affiliate-server/internal/clients/kafka"
	"affiliate-server/internal/clients/mail"
	redisClient "affiliate-server/internal/clients/redis"
	"affiliate-server/internal/clients/subscribers"
	conversionHandler "affiliate-server/internal/conversions/handler"
	conversionProcessor "affiliate-server/internal/conversions/processor"
	notificationHandler "affiliate-server/internal/notifications/handler"
	notificationProcessor "affiliate-server/internal/notifications/processor"
	referralHandler "affiliate-server/internal/referral/handler"
	referralProcessor "affiliate-server/internal/referral/processor"
	withdrawalHandler "affiliate-server/internal/withdrawals/handler"
	withdrawalProcessor "affiliate-server/internal/withdrawals/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	ReferralHandler     referralHandler.Handler
	ConversionHandler   conversionHandler.Handler
	WithdrawalHandler   withdrawalHandler.Handler
	NotificationHandler notificationHandler.Handler

	// Tracing provider shutdown
	ShutdownTracing func(context.Context) error

	// Clients (for cleanup)
	RedisClient   *redisClient.Client
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.ShutdownTracing, err = observability.InitTracing(ctx, cfg.Tracing)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	// Initialize database store
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := deps.Store.Ping(pingCtx); err != nil {
		return nil, err
	}

	// Link cache is optional
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	var linkCache referralProcessor.LinkCache
	if deps.RedisClient.IsEnabled() {
		linkCache = deps.RedisClient
	}

	// Conversion events are only published when brokers are configured
	var publisher conversionProcessor.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.ConversionTopic,
		}, logger)
		publisher = deps.KafkaProducer
	} else {
		logger.Info(ctx, "KAFKA_BROKERS not set, conversion events will not be published")
	}

	// Admin alerts are only emailed when Resend is configured
	var alertMailer notificationProcessor.AlertMailer
	if cfg.Mail.ResendAPIKey != "" {
		mailClient, err := mail.NewResendClient(cfg.Mail.ResendAPIKey, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create resend client: %w", err)
		}
		alertMailer = mailClient
	}

	// Initialize eligibility guard
	subscriberClient := subscribers.NewClient(cfg.Subscribers, logger)
	guard := eligibility.New(subscriberClient, logger)

	// Initialize referral processor and handler
	referralProc := referralProcessor.New(&deps.Store, linkCache, cfg.Redis.LinkTTL, cfg.Server.PublicBaseURL, logger)
	deps.ReferralHandler = referralHandler.New(referralProc, logger)

	// Initialize conversion processor and handler
	conversionProc := conversionProcessor.New(&deps.Store, &guard, publisher, logger)
	deps.ConversionHandler = conversionHandler.New(conversionProc, cfg.Payments, logger)

	// Initialize withdrawal processor and handler
	withdrawalProc := withdrawalProcessor.New(&deps.Store, logger)
	deps.WithdrawalHandler = withdrawalHandler.New(withdrawalProc, logger)

	// Initialize admin alert processor and handler
	alertProc := notificationProcessor.New(alertMailer, notificationProcessor.AlertConfig{
		From: cfg.Mail.DefaultEmailSender,
		To:   cfg.Mail.AdminAlertEmail,
	}, logger)
	deps.NotificationHandler = notificationHandler.New(alertProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.RedisClient.IsEnabled() {
		if err := d.RedisClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
	if d.ShutdownTracing != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := d.ShutdownTracing(shutdownCtx); err != nil {
			d.Logger.Error(ctx, "failed to flush traces", err)
		}
	}
}
