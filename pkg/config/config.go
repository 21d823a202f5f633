package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/masonhargrave/MedExchange/pkg/postgres"
	"github.com/masonhargrave/MedExchange/pkg/redis"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
func Load[T any](cfg T) error {
	_ = godotenv.Load() // .env file is optional

	return env.Parse(cfg)
}

// Config holds the configuration for the matching engine.
type Config struct {
	Pair string `env:"PAIR" envDefault:"MEDX-USD"` // Instrument handled by this process

	OrderKafka KafkaConfig     `envPrefix:"ORDER_KAFKA_"`
	TradeKafka KafkaConfig     `envPrefix:"TRADE_KAFKA_"`
	Redis      redis.Config    `envPrefix:"REDIS_"`
	Postgres   postgres.Config `envPrefix:"POSTGRES_"`
	Snapshot   SnapshotConfig  `envPrefix:"SNAPSHOT_"`
}

// KafkaConfig holds the configuration for a Kafka consumer or producer.
type KafkaConfig struct {
	Brokers []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC,required"`
	GroupID string   `env:"GROUP_ID" envDefault:"matching-engine"`
}

// SnapshotConfig controls how often the book snapshot is written.
type SnapshotConfig struct {
	Interval    time.Duration `env:"INTERVAL" envDefault:"30s"`
	OffsetDelta int64         `env:"OFFSET_DELTA" envDefault:"1000"`
}
