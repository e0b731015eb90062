package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Logger   Logger
	Postgres Postgres
	Kafka    Kafka
	Redis    Redis
	Billing  Billing
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Postgres is optional: with an empty DSN the store lives in memory only.
type Postgres struct {
	DSN     string `env:"POSTGRES_DSN" envDefault:""`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers               []string `env:"KAFKA_BROKERS" envDefault:""`
	ConsumerGroup         string   `env:"KAFKA_CONSUMER_GROUP" envDefault:"billing"`
	BillIssuedTopic       string   `env:"KAFKA_BILL_ISSUED_TOPIC" envDefault:"bill.issued"`
	PaymentConfirmedTopic string   `env:"KAFKA_PAYMENT_CONFIRMED_TOPIC" envDefault:"payment.confirmed"`
	BillPaidTopic         string   `env:"KAFKA_BILL_PAID_TOPIC" envDefault:"bill.paid"`
	PaymentCreatedTopic   string   `env:"KAFKA_PAYMENT_CREATED_TOPIC" envDefault:"payment.created"`
	BillOverdueTopic      string   `env:"KAFKA_BILL_OVERDUE_TOPIC" envDefault:"bill.overdue"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Billing struct {
	Timezone                 string        `env:"BILLING_TIMEZONE" envDefault:"UTC"`
	DefaultPaySystemID       int64         `env:"BILLING_DEFAULT_PAYSYSTEM_ID" envDefault:"1"`
	OverdueCheckInterval     time.Duration `env:"BILLING_OVERDUE_CHECK_INTERVAL" envDefault:"1h"`
	ReferenceRefreshInterval time.Duration `env:"BILLING_REFERENCE_REFRESH_INTERVAL" envDefault:"15m"`
	SeedDemoData             bool          `env:"BILLING_SEED_DEMO_DATA" envDefault:"false"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (b Billing) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}
