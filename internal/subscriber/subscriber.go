package subscriber

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/openpago/payments-core/config"
	"github.com/openpago/payments-core/internal/models"
	"github.com/openpago/payments-core/internal/publisher"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// KafkaConsumer reads the topics external collaborators drive the core with
// (expiry requests from the scheduler). Messages that keep failing after the
// retry budget land on the DLQ.
type KafkaConsumer struct {
	Readers      []*kafka.Reader
	DLQPublisher *publisher.KafkaPublisher
	RetryConfig  config.RetryConfig
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	publisher *publisher.KafkaPublisher,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]*kafka.Reader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: publisher,
		RetryConfig:  retryConfig,
	}
}

// messageReader is the slice of kafka.Reader the consume loop needs.
type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

func (c *KafkaConsumer) Listen(ctx context.Context, handler func(topic string, value []byte) error) {
	for _, reader := range c.Readers {
		go c.consume(ctx, reader, handler)
	}
}

func (c *KafkaConsumer) consume(ctx context.Context, r messageReader, handler func(topic string, value []byte) error) {
	for {
		msg, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logrus.Info("kafka reader stopped")
				return
			}
			logrus.WithError(err).Error("kafka read error")
			continue
		}
		c.processMessage(ctx, msg, handler)
	}
}

func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler func(topic string, value []byte) error) {
	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		err := handler(msg.Topic, msg.Value)
		if err == nil {
			return
		}

		backoff := c.calculateBackoff(attempt)
		logrus.WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"max":     c.RetryConfig.MaxAttempts,
			"backoff": backoff,
		}).Warnf("handler error: %v", err)
		time.Sleep(backoff)
	}

	logrus.WithFields(logrus.Fields{
		"topic": msg.Topic,
		"key":   string(msg.Key),
	}).Error("message failed after retries, sending to DLQ")

	if c.DLQPublisher != nil {
		dlqMessage := models.DLQMessage{
			OriginalTopic: msg.Topic,
			Key:           string(msg.Key),
			Value:         string(msg.Value),
			Timestamp:     time.Now().UTC(),
			Attempts:      c.RetryConfig.MaxAttempts,
		}
		if err := c.DLQPublisher.Publish(ctx, models.PaymentsDLQTopic, dlqMessage); err != nil {
			logrus.WithError(err).Error("failed to send message to DLQ")
		}
	}
}

func (c *KafkaConsumer) calculateBackoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * c.RetryConfig.BaseDelay

	if delay > c.RetryConfig.MaxDelay {
		delay = c.RetryConfig.MaxDelay
	}

	if c.RetryConfig.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}
