package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	StorageRedis    = "redis"
	StoragePostgres = "postgres"

	NotifierRabbitMQ = "rabbitmq"
	NotifierLocal    = "local"
)

type Config struct {
	IsDebug bool `env:"DEBUG" envDefault:"false"`
	Port    int  `env:"PORT" envDefault:"9090"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"redis"`
	StorageKey     string `env:"STORAGE_KEY" envDefault:"@medicamentos"`
	RedisURL       string `env:"REDIS_URL,required"`
	PostgresqlURL  string `env:"POSTGRESQL_URL"`

	Notifier                     string `env:"NOTIFIER" envDefault:"local"`
	NotificationsAllowed         bool   `env:"NOTIFICATIONS_ALLOWED" envDefault:"true"`
	RabbitmqURL                  string `env:"RABBITMQ_URL"`
	RabbitmqDelayedExchange      string `env:"RABBITMQ_DELAYED_EXCHANGE" envDefault:"medreminder-delayed"`
	RabbitmqNotificationDueQueue string `env:"RABBITMQ_NOTIFICATION_DUE_QUEUE" envDefault:"notification-due"`

	AllowedOrigins     []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	RateLimitPerMinute uint16   `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`

	TelegramBaseURL        url.URL       `env:"TELEGRAM_BASE_URL" envDefault:"https://api.telegram.org"`
	TelegramBotToken       string        `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID         int64         `env:"TELEGRAM_CHAT_ID"`
	TelegramRequestTimeout time.Duration `env:"TELEGRAM_REQUEST_TIMEOUT" envDefault:"5s"`

	AwsRegion         string `env:"AWS_REGION"`
	AwsAccessKey      string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey      string `env:"AWS_SECRET_KEY"`
	AwsEmailSender    string `env:"AWS_EMAIL_SENDER"`
	AwsEmailRecipient string `env:"AWS_EMAIL_RECIPIENT"`
}

func Load() (*Config, error) {
	return load(env.Options{})
}

func load(opts env.Options) (*Config, error) {
	config := &Config{}
	if err := env.Parse(config, opts); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.StorageBackend {
	case StorageRedis:
	case StoragePostgres:
		if c.PostgresqlURL == "" {
			errs = append(errs, errors.New("POSTGRESQL_URL must be set for postgres storage"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend))
	}
	if c.StorageKey == "" {
		errs = append(errs, errors.New("STORAGE_KEY must not be empty"))
	}

	switch c.Notifier {
	case NotifierLocal:
	case NotifierRabbitMQ:
		if c.RabbitmqURL == "" {
			errs = append(errs, errors.New("RABBITMQ_URL must be set for rabbitmq notifier"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown NOTIFIER %q", c.Notifier))
	}

	if c.RateLimitPerMinute == 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must be positive"))
	}
	if c.TelegramEnabled() && c.TelegramChatID == 0 {
		errs = append(errs, errors.New("TELEGRAM_CHAT_ID must be set when TELEGRAM_BOT_TOKEN is set"))
	}
	if c.EmailEnabled() && (c.AwsRegion == "" || c.AwsEmailRecipient == "") {
		errs = append(errs, errors.New("AWS_REGION and AWS_EMAIL_RECIPIENT must be set when AWS_EMAIL_SENDER is set"))
	}

	return errors.Join(errs...)
}

func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != ""
}

func (c *Config) EmailEnabled() bool {
	return c.AwsEmailSender != ""
}
