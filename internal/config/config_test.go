package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("INVENTORY_ADDR", "localhost:50051")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func validConfig() *Config {
	return &Config{
		Server:    ServerConfig{Port: 8080},
		Database:  DatabaseConfig{DSN: "postgres://u:p@localhost:5432/testdb"},
		Inventory: InventoryConfig{Addr: "localhost:50051", Timeout: 300 * time.Millisecond, MaxConcurrency: 8},
		Cache:     CacheConfig{TTL: 30 * time.Second},
		Events:    EventsConfig{Transport: EventsTransportNone},
		Seed:      SeedConfig{BatchSize: 100},
		RateLimit: RateLimitConfig{Enabled: true, RPS: 10, Burst: 20},
	}
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

inventory:
  addr: "inventory:50051"
  timeout: "250ms"
  max_concurrency: 4

cache:
  enabled: true
  addr: "redis:6379"
  ttl: "1m"

events:
  transport: "kafka"
  kafka:
    brokers: "kafka-1:9092, kafka-2:9092"
    topic: "stock"
    group_id: "catalog-test"
    workers: 2

seed:
  categories_path: "/seed/categories.json"
  products_path: "/seed/products.json"
  batch_size: 50

graphql:
  playground_enabled: true
  complexity_limit: 200

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	// Database
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}
	if !cfg.Database.MigrateOnStart {
		t.Error("database.migrate_on_start should default to true")
	}
	if cfg.Database.ApplicationName != "catalog-backend" {
		t.Errorf("database.application_name = %q, want catalog-backend (default)", cfg.Database.ApplicationName)
	}
	if cfg.Database.StatementTimeout != 5*time.Second {
		t.Errorf("database.statement_timeout = %v, want 5s (default)", cfg.Database.StatementTimeout)
	}

	// Inventory
	if cfg.Inventory.Addr != "inventory:50051" {
		t.Errorf("inventory.addr = %q", cfg.Inventory.Addr)
	}
	if cfg.Inventory.Timeout != 250*time.Millisecond {
		t.Errorf("inventory.timeout = %v, want 250ms", cfg.Inventory.Timeout)
	}
	if cfg.Inventory.MaxConcurrency != 4 {
		t.Errorf("inventory.max_concurrency = %d, want 4", cfg.Inventory.MaxConcurrency)
	}

	// Cache
	if !cfg.Cache.Enabled || cfg.Cache.TTL != time.Minute {
		t.Errorf("cache = %+v, want enabled with 1m ttl", cfg.Cache)
	}

	// Events
	if cfg.Events.Transport != EventsTransportKafka {
		t.Errorf("events.transport = %q, want kafka", cfg.Events.Transport)
	}
	brokers := cfg.Events.Kafka.BrokerList()
	if len(brokers) != 2 || brokers[1] != "kafka-2:9092" {
		t.Errorf("events.kafka.brokers = %v", brokers)
	}

	// Seed
	if cfg.Seed.BatchSize != 50 {
		t.Errorf("seed.batch_size = %d, want 50", cfg.Seed.BatchSize)
	}
	if !cfg.Seed.Enabled {
		t.Error("seed.enabled should default to true")
	}

	// GraphQL
	if !cfg.GraphQL.PlaygroundEnabled {
		t.Error("graphql.playground_enabled should be true")
	}
	if cfg.GraphQL.LoaderMaxBatch != 100 || cfg.GraphQL.LoaderWait != 2*time.Millisecond {
		t.Errorf("graphql loader = %d/%v, want 100/2ms (default)", cfg.GraphQL.LoaderMaxBatch, cfg.GraphQL.LoaderWait)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("INVENTORY_TIMEOUT", "1s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Inventory.Timeout != time.Second {
		t.Errorf("inventory.timeout = %v, want 1s (ENV override)", cfg.Inventory.Timeout)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)

	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Inventory.Timeout != DefaultInventoryTimeout {
		t.Errorf("inventory.timeout = %v, want %v (default)", cfg.Inventory.Timeout, DefaultInventoryTimeout)
	}
	if cfg.Events.Transport != EventsTransportNone {
		t.Errorf("events.transport = %q, want none (default)", cfg.Events.Transport)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InventoryAddrEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Inventory.Addr = " "

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty inventory address")
	}
}

func TestValidate_InventoryTimeoutZeroFallsBack(t *testing.T) {
	cfg := validConfig()
	cfg.Inventory.Timeout = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Inventory.Timeout != DefaultInventoryTimeout {
		t.Errorf("inventory.timeout = %v, want %v", cfg.Inventory.Timeout, DefaultInventoryTimeout)
	}
}

func TestValidate_InventoryTimeoutNegative(t *testing.T) {
	cfg := validConfig()
	cfg.Inventory.Timeout = -time.Second

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative inventory timeout")
	}
}

func TestValidate_InventoryMaxConcurrencyZero(t *testing.T) {
	cfg := validConfig()
	cfg.Inventory.MaxConcurrency = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for MaxConcurrency = 0")
	}
}

func TestValidate_CacheTTLZeroWhenEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.TTL = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero cache TTL")
	}
}

func TestValidate_UnknownTransport(t *testing.T) {
	cfg := validConfig()
	cfg.Events.Transport = "nats"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown events transport")
	}
}

func TestValidate_KafkaWithoutBrokers(t *testing.T) {
	cfg := validConfig()
	cfg.Events.Transport = EventsTransportKafka
	cfg.Events.Kafka = KafkaConfig{Brokers: " , ", Topic: "t", GroupID: "g", Workers: 1}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for kafka transport without brokers")
	}
}

func TestValidate_AMQPRequiresQueue(t *testing.T) {
	cfg := validConfig()
	cfg.Events.Transport = EventsTransportAMQP
	cfg.Events.AMQP = AMQPConfig{URL: "amqp://localhost", Exchange: "inventory"}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for amqp transport without queue")
	}
}

func TestValidate_SeedBatchSizeZero(t *testing.T) {
	cfg := validConfig()
	cfg.Seed.BatchSize = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for seed batch size 0")
	}
}

func TestValidate_RateLimitBurstZero(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.Burst = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero burst when rate limiting is enabled")
	}
}
