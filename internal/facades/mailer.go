package facades

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-identity/internal/logger"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=mailer.go -destination=mocks.go -package=facades

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaMailDispatcher hands verification links to the mailer service through
// a Kafka topic. Delivery is acknowledged synchronously.
type KafkaMailDispatcher struct {
	writer KafkaWriter
}

func NewKafkaMailDispatcher(writer KafkaWriter) *KafkaMailDispatcher {
	return &KafkaMailDispatcher{writer: writer}
}

// SendVerificationLink publishes the link addressed to email, keyed by email.
func (d *KafkaMailDispatcher) SendVerificationLink(ctx context.Context, email, link string) error {
	data, err := json.Marshal(models.VerificationMail{Email: email, Link: link})
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(email),
		Value: data,
	}

	if err := d.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish verification mail", "email", email, "error", err)
		return err
	}

	logger.Log.Infow("verification mail published", "email", email)
	return nil
}

// Close closes the underlying writer.
func (d *KafkaMailDispatcher) Close() error {
	return d.writer.Close()
}
