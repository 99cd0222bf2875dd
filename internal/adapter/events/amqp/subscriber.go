// Package amqp consumes stock-change events from a RabbitMQ topic exchange.
package amqp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/heartmarshall/catalog-backend/internal/adapter/events"
	"github.com/heartmarshall/catalog-backend/internal/config"
)

const exchangeType = "topic"

// channel is the part of *amqp.Channel the subscriber uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// Subscriber binds a durable queue to the inventory exchange and hands
// each delivery to a Handler. Deliveries are acknowledged after handling.
// A failed delivery is requeued once and dropped if it fails again.
type Subscriber struct {
	ch  channel
	cfg config.AMQPConfig
	log *slog.Logger
}

// Connection is an open broker connection with its channel.
type Connection struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Dial opens a connection and a channel to url.
func Dial(url string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp: connect: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp: open channel: %w", err)
	}
	return &Connection{conn: conn, ch: ch}, nil
}

// Close closes the channel and the connection.
func (c *Connection) Close() error {
	return errors.Join(c.ch.Close(), c.conn.Close())
}

// NewSubscriber creates a Subscriber on an open connection.
func NewSubscriber(c *Connection, cfg config.AMQPConfig, logger *slog.Logger) *Subscriber {
	return newSubscriber(c.ch, cfg, logger)
}

func newSubscriber(ch channel, cfg config.AMQPConfig, logger *slog.Logger) *Subscriber {
	return &Subscriber{ch: ch, cfg: cfg, log: logger.With("adapter", "amqp")}
}

// Run declares the topology and consumes until ctx is cancelled or the
// delivery channel closes.
func (s *Subscriber) Run(ctx context.Context, h events.Handler) error {
	msgs, err := s.setup()
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("amqp: delivery channel closed")
			}
			s.handle(ctx, h, d)
		}
	}
}

func (s *Subscriber) setup() (<-chan amqp.Delivery, error) {
	if err := s.ch.ExchangeDeclare(s.cfg.Exchange, exchangeType, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("amqp: declare exchange: %w", err)
	}

	q, err := s.ch.QueueDeclare(s.cfg.Queue, true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("amqp: declare queue: %w", err)
	}

	if err := s.ch.QueueBind(q.Name, s.cfg.RoutingKey, s.cfg.Exchange, false, nil); err != nil {
		return nil, fmt.Errorf("amqp: bind queue: %w", err)
	}

	if s.cfg.Prefetch > 0 {
		if err := s.ch.Qos(s.cfg.Prefetch, 0, false); err != nil {
			return nil, fmt.Errorf("amqp: qos: %w", err)
		}
	}

	msgs, err := s.ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("amqp: consume: %w", err)
	}
	return msgs, nil
}

func (s *Subscriber) handle(ctx context.Context, h events.Handler, d amqp.Delivery) {
	err := events.Dispatch(ctx, h, d.Body)
	if err == nil {
		if ackErr := d.Ack(false); ackErr != nil {
			s.log.ErrorContext(ctx, "ack delivery", slog.String("error", ackErr.Error()))
		}
		return
	}

	requeue := !d.Redelivered
	s.log.ErrorContext(ctx, "stock event not processed",
		slog.String("routing_key", d.RoutingKey),
		slog.Bool("requeue", requeue),
		slog.String("error", err.Error()),
	)
	if nackErr := d.Nack(false, requeue); nackErr != nil {
		s.log.ErrorContext(ctx, "nack delivery", slog.String("error", nackErr.Error()))
	}
}
