package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Inventory.validate(); err != nil {
		return fmt.Errorf("inventory: %w", err)
	}

	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 when the cache is enabled (got %v)", c.Cache.TTL)
	}

	if err := c.Events.validate(); err != nil {
		return fmt.Errorf("events: %w", err)
	}

	if c.Seed.BatchSize <= 0 {
		return fmt.Errorf("seed.batch_size must be > 0 (got %d)", c.Seed.BatchSize)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit.rps and rate_limit.burst must be > 0 when enabled")
	}

	return nil
}

func (c *InventoryConfig) validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("addr is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative (got %v)", c.Timeout)
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultInventoryTimeout
	}
	if c.MaxConcurrency <= 0 {
		return fmt.Errorf("max_concurrency must be > 0 (got %d)", c.MaxConcurrency)
	}
	return nil
}

func (c *EventsConfig) validate() error {
	if c.Transport == "" {
		c.Transport = EventsTransportNone
	}

	transports := []string{EventsTransportNone, EventsTransportKafka, EventsTransportAMQP}
	if !slices.Contains(transports, c.Transport) {
		return fmt.Errorf("transport must be one of %v (got %q)", transports, c.Transport)
	}

	switch c.Transport {
	case EventsTransportKafka:
		if len(c.Kafka.BrokerList()) == 0 {
			return fmt.Errorf("kafka.brokers is required")
		}
		if c.Kafka.Topic == "" || c.Kafka.GroupID == "" {
			return fmt.Errorf("kafka.topic and kafka.group_id are required")
		}
		if c.Kafka.Workers <= 0 {
			return fmt.Errorf("kafka.workers must be > 0 (got %d)", c.Kafka.Workers)
		}
	case EventsTransportAMQP:
		if c.AMQP.URL == "" || c.AMQP.Exchange == "" || c.AMQP.Queue == "" {
			return fmt.Errorf("amqp.url, amqp.exchange and amqp.queue are required")
		}
	}

	return nil
}
