package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

const (
	defaultHTTPPort       = "8080"
	defaultTimezone       = "UTC"
	defaultCartSessionTTL = 24 * time.Hour
	defaultOrderTopic     = "orders.status_changed"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	EarningsPerOrder       int64
	Timezone               string
	TransitionMaxRetries   int
	CartSessionTTL         time.Duration
	LogLevel               slog.Level
}

// ConfigFromEnv reads the configuration through getenv. Unset optional
// variables fall back to their defaults; malformed values are errors.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:               withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:                 getenv("DB_HOST"),
		DBPort:                 getenv("DB_PORT"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              withDefault(getenv("DB_SSLMODE"), "disable"),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: withDefault(getenv("KAFKA_ORDER_CHANGED_TOPIC"), defaultOrderTopic),
		Timezone:               withDefault(getenv("TIMEZONE"), defaultTimezone),
	}

	var err error
	var parseErrs []error

	if cfg.EarningsPerOrder, err = parseInt64(getenv("EARNINGS_PER_ORDER"), services.DefaultEarningsPerOrder); err != nil {
		parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("EARNINGS_PER_ORDER", err))
	}
	if cfg.TransitionMaxRetries, err = parseInt(getenv("TRANSITION_MAX_RETRIES"), commands.DefaultTransitionMaxRetries); err != nil {
		parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("TRANSITION_MAX_RETRIES", err))
	}
	if cfg.CartSessionTTL, err = parseDuration(getenv("CART_SESSION_TTL"), defaultCartSessionTTL); err != nil {
		parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("CART_SESSION_TTL", err))
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(withDefault(getenv("LOG_LEVEL"), "INFO"))); err != nil {
		parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
	}
	if _, err = cfg.Location(); err != nil {
		parseErrs = append(parseErrs, err)
	}
	if cfg.TransitionMaxRetries < 0 {
		parseErrs = append(parseErrs, errs.NewValueIsOutOfRangeError("TRANSITION_MAX_RETRIES", cfg.TransitionMaxRetries, 0, "unbounded"))
	}

	if err = errors.Join(parseErrs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Location is the time zone every day boundary is computed in.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("TIMEZONE", err)
	}
	return loc, nil
}

// KafkaBrokers splits KAFKA_HOST on commas. Empty means publishing is disabled.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, host := range strings.Split(c.KafkaHost, ",") {
		if host = strings.TrimSpace(host); host != "" {
			brokers = append(brokers, host)
		}
	}
	return brokers
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func parseInt64(value string, fallback int64) (int64, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
}

func parseInt(value string, fallback int) (int, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	return strconv.Atoi(strings.TrimSpace(value))
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	return time.ParseDuration(strings.TrimSpace(value))
}
