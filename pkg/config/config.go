package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"4"`
	Session          Session
	Upload           Upload
	Kafka            Kafka
}

type Session struct {
	Secret       string        `env:"SESSION_SECRET" envDefault:"dashboard-dev-secret"`
	LoginLatency time.Duration `env:"LOGIN_LATENCY"  envDefault:"1s"`
}

type Upload struct {
	Latency                 time.Duration `env:"UPLOAD_LATENCY"             envDefault:"2s"`
	BlobTTL                 time.Duration `env:"BLOB_TTL"                   envDefault:"30m"`
	JobReleaseBlobsInterval time.Duration `env:"JOB_RELEASE_BLOBS_INTERVAL" envDefault:"5m"`
}

type Kafka struct {
	Brokers         []string `env:"KAFKA_BROKERS" envSeparator:","`
	FileEventsTopic string   `env:"KAFKA_FILE_EVENTS_TOPIC" envDefault:"dashboard.files"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
