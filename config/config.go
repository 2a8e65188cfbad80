package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Simulator
	Payments
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type Kafka struct {
	Brokers               string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PaymentsConsumerGroup string `env:"KAFKA_PAYMENTS_GROUP_ID" envDefault:"payments-core"`
	PublishTopics         string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"payments.created,payments.status_updated,payments.method_selected,refunds.status_updated,payments.dlq"`
	SubscriberTopics      string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"payments.expire.requested"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Simulator struct {
	Interval        time.Duration `env:"BANK_SIM_INTERVAL" envDefault:"5s"`
	DwellWindow     time.Duration `env:"BANK_SIM_DWELL_WINDOW" envDefault:"1m"`
	ApprovalPercent int           `env:"BANK_SIM_APPROVAL_PERCENT" envDefault:"90"`
}

type Payments struct {
	// CancelApprovedPolicy selects what happens to captured funds when an
	// approved payment is cancelled: retain_funds or release_funds.
	CancelApprovedPolicy string `env:"CANCEL_APPROVED_POLICY" envDefault:"retain_funds"`
	CardBINAllowlist     string `env:"CARD_BIN_ALLOWLIST" envDefault:"4,51,52,53,54,55,34,37"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
