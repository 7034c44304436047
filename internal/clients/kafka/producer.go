package kafka

import (
	"affiliate-server/internal/observability"
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// EventTypeConversionCredited is published after a conversion row is created
const EventTypeConversionCredited = "conversion.credited"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes conversion events to Kafka
type Producer struct {
	writer messageWriter
	topic  string
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Topic:    config.Topic,
		Balancer: &kafka.Hash{},
		Async:    false,
		// Conversions are rare; flush each one instead of waiting on a batch
		BatchSize:    1,
		Compression:  kafka.Snappy,
		RequiredAcks: kafka.RequireAll,
	}

	return &Producer{
		writer: writer,
		topic:  config.Topic,
		logger: logger,
	}
}

// ConversionEvent is the payload of a conversion.credited message
type ConversionEvent struct {
	ID                string          `json:"id"`
	Type              string          `json:"type"`
	ConversionID      string          `json:"conversion_id"`
	AffiliateLinkID   string          `json:"affiliate_link_id"`
	AffiliateID       string          `json:"affiliate_id"`
	ProductID         string          `json:"product_id"`
	EndUserIdentifier string          `json:"end_user_identifier"`
	PayoutAmount      decimal.Decimal `json:"payout_amount"`
	Provider          string          `json:"provider"`
	Timestamp         string          `json:"timestamp"`
}

// PublishConversion publishes a conversion event keyed by affiliate link so a link's events stay ordered
func (p *Producer) PublishConversion(ctx context.Context, event ConversionEvent) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "topic", Value: p.topic},
	)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal event", err)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.AffiliateLinkID),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "affiliate_id", Value: []byte(event.AffiliateID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to write message to kafka", err)
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	p.logger.Info(ctx, fmt.Sprintf("published event %s to kafka", event.Type))
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
