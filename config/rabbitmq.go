package config

import (
	"context"
	"fmt"
	"github.com/cenkalti/backoff/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"net/url"
	"strconv"
	"time"
)

// URL is the amqp:// address of the broker with credentials escaped.
func (r *RabbitMQ) URL() string {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(r.User, r.Pass),
		Host:   r.Host + ":" + strconv.Itoa(r.Port),
		Path:   "/",
	}
	return u.String()
}

// NewRabbitMQConn dials the broker with exponential backoff and closes the
// connection once ctx is cancelled.
func NewRabbitMQConn(ctx context.Context, cfg *RabbitMQ) (*amqp.Connection, error) {
	if cfg == nil || cfg.Host == "" {
		return nil, fmt.Errorf("rabbitmq host is not configured")
	}
	logger := zerolog.Ctx(ctx).With().Str("host", cfg.Host).Int("port", cfg.Port).Logger()

	dial := func() (*amqp.Connection, error) {
		conn, err := amqp.DialConfig(cfg.URL(), amqp.Config{
			Heartbeat:  10 * time.Second,
			Properties: amqp.Table{"connection_name": "job-dashboard"},
		})
		if err != nil {
			logger.Warn().Err(err).Msg("rabbitmq dial failed, retrying")
			return nil, err
		}
		return conn, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = 10 * time.Second
	conn, err := backoff.Retry(ctx, dial, backoff.WithBackOff(bo), backoff.WithMaxTries(5))
	if err != nil {
		logger.Error().Err(err).Msg("giving up on rabbitmq")
		return nil, err
	}

	logger.Info().Msg("connected to rabbitmq")
	go func() {
		<-ctx.Done()
		if err := conn.Close(); err != nil && !conn.IsClosed() {
			logger.Error().Err(err).Msg("failed to close rabbitmq connection")
			return
		}
		logger.Info().Msg("rabbitmq connection closed")
	}()

	return conn, nil
}
