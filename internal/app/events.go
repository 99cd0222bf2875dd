package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/catalog-backend/internal/adapter/events"
	"github.com/heartmarshall/catalog-backend/internal/adapter/events/amqp"
	"github.com/heartmarshall/catalog-backend/internal/adapter/events/kafka"
	"github.com/heartmarshall/catalog-backend/internal/config"
)

// eventSource delivers stock-change events to a handler until ctx ends.
type eventSource interface {
	Run(ctx context.Context, h events.Handler) error
}

// noEventSource is used when no transport is configured. Cached stock then
// only expires through its TTL.
type noEventSource struct{}

func (noEventSource) Run(context.Context, events.Handler) error { return nil }

// newEventSource builds the configured transport. The returned func
// releases broker connections and is safe to call once Run has returned.
func newEventSource(cfg config.EventsConfig, logger *slog.Logger) (eventSource, func(), error) {
	switch cfg.Transport {
	case config.EventsTransportKafka:
		logger.Info("consuming stock events from kafka",
			slog.String("topic", cfg.Kafka.Topic),
			slog.String("group_id", cfg.Kafka.GroupID),
		)
		return kafka.NewConsumer(cfg.Kafka, logger), func() {}, nil

	case config.EventsTransportAMQP:
		conn, err := amqp.Dial(cfg.AMQP.URL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("consuming stock events from amqp",
			slog.String("exchange", cfg.AMQP.Exchange),
			slog.String("queue", cfg.AMQP.Queue),
		)
		closeConn := func() {
			if err := conn.Close(); err != nil {
				logger.Warn("amqp close", slog.String("error", err.Error()))
			}
		}
		return amqp.NewSubscriber(conn, cfg.AMQP, logger), closeConn, nil

	case config.EventsTransportNone, "":
		logger.Info("stock events disabled")
		return noEventSource{}, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("events: unknown transport %q", cfg.Transport)
	}
}
