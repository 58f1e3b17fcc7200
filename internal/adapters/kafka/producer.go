package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"

	"travel_console/internal/adapters/observability"
	"travel_console/internal/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// PackageCreated is the payload published after a package is stored.
type PackageCreated struct {
	EventID     string    `json:"event_id"`
	PackageID   int64     `json:"package_id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// batchTimeout bounds how long a create waits for its event to be flushed.
const batchTimeout = 10 * time.Millisecond

type Producer struct {
	w     messageWriter
	topic string
	now   func() time.Time
}

func NewProducer(brokers []string, topic string) *Producer {
	return newProducerWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           batchTimeout,
		AllowAutoTopicCreation: true,
	}, topic)
}

func newProducerWithWriter(w messageWriter, topic string) *Producer {
	return &Producer{w: w, topic: topic, now: time.Now}
}

// PackageCreated publishes one event keyed by package id.
func (p *Producer) PackageCreated(ctx context.Context, pkg domain.Package) error {
	ev := PackageCreated{
		EventID:     uuid.NewString(),
		PackageID:   pkg.ID,
		Name:        pkg.Name,
		Destination: pkg.Destination,
		Status:      pkg.Status,
		OccurredAt:  p.now().UTC(),
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "encode package.created")
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(strconv.FormatInt(pkg.ID, 10)),
		Value: value,
	})
	observability.ObservePublish(p.topic, err)
	return errors.Wrap(err, "kafka publish")
}

func (p *Producer) Close() error {
	if c, ok := p.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
