// Package kafka consumes stock-change events from a Kafka topic.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/heartmarshall/catalog-backend/internal/adapter/events"
	"github.com/heartmarshall/catalog-backend/internal/config"
)

// reader is the part of *kafkago.Reader the consumer uses.
type reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Consumer reads a topic as part of a consumer group.
//
// Each partition is handled by exactly one worker, in offset order. A
// handler failure is retried with exponential backoff until it succeeds or
// ctx ends, so an offset is committed only once its message and every
// earlier message of the partition were handled. On shutdown the unhandled
// message stays uncommitted and is delivered again after a restart or
// rebalance. A failing partition holds back the dispatcher once its lane
// is full.
type Consumer struct {
	r          reader
	workers    int
	newBackOff func() backoff.BackOff
	log        *slog.Logger
}

// Retry bounds for a failing handler.
const (
	retryInitialInterval = 200 * time.Millisecond
	retryMaxInterval     = 10 * time.Second
	laneBuffer           = 16
)

// NewConsumer creates a consumer for cfg.
func NewConsumer(cfg config.KafkaConfig, logger *slog.Logger) *Consumer {
	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.BrokerList(),
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0,
	})
	return newConsumer(r, cfg.Workers, logger)
}

func newConsumer(r reader, workers int, logger *slog.Logger) *Consumer {
	if workers <= 0 {
		workers = 1
	}
	return &Consumer{
		r:          r,
		workers:    workers,
		newBackOff: defaultBackOff,
		log:        logger.With("adapter", "kafka"),
	}
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInitialInterval
	b.MaxInterval = retryMaxInterval
	b.MaxElapsedTime = 0
	return b
}

// Run dispatches messages to h until ctx is cancelled. It returns nil on
// cancellation and the read error otherwise.
func (c *Consumer) Run(ctx context.Context, h events.Handler) error {
	defer c.r.Close()

	lanes := make([]chan kafkago.Message, c.workers)
	var wg sync.WaitGroup

	for i := range lanes {
		lane := make(chan kafkago.Message, laneBuffer)
		lanes[i] = lane
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range lane {
				if !c.handle(ctx, h, m) {
					// ctx ended mid-retry; later messages of this lane must
					// not be committed past the unhandled one.
					for range lane {
					}
					return
				}
			}
		}()
	}

	err := c.dispatch(ctx, lanes)
	for _, lane := range lanes {
		close(lane)
	}
	wg.Wait()
	return err
}

func (c *Consumer) dispatch(ctx context.Context, lanes []chan kafkago.Message) error {
	for {
		m, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("kafka: fetch: %w", err)
		}

		select {
		case lanes[m.Partition%len(lanes)] <- m:
		case <-ctx.Done():
			return nil
		}
	}
}

// handle processes m until it succeeds and commits its offset. It reports
// false when ctx ended before m was handled.
func (c *Consumer) handle(ctx context.Context, h events.Handler, m kafkago.Message) bool {
	attempt := func() error { return events.Dispatch(ctx, h, m.Value) }
	notify := func(err error, wait time.Duration) {
		c.log.WarnContext(ctx, "stock event failed, retrying",
			slog.String("topic", m.Topic),
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()),
		)
	}

	if err := backoff.RetryNotify(attempt, backoff.WithContext(c.newBackOff(), ctx), notify); err != nil {
		c.log.InfoContext(ctx, "stock event left uncommitted",
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
			slog.String("error", err.Error()),
		)
		return false
	}

	if err := c.r.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
		c.log.ErrorContext(ctx, "commit offset",
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
			slog.String("error", err.Error()),
		)
	}
	return true
}
