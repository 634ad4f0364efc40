package nats

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redtestlab/portal/internal/pkg/logger"
)

// Producer handles publishing JSON events to NATS subjects
type Producer struct {
	conn   *nats.Conn
	logger *logger.ZapLogger
}

// NewProducer connects to the NATS server at address
func NewProducer(address string, log *logger.ZapLogger) (*Producer, error) {
	conn, err := nats.Connect(address,
		nats.Name("redlab-portal"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("NATS disconnected", logger.Err(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("NATS reconnected", logger.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return NewProducerFromConn(conn, log), nil
}

// NewProducerFromConn wraps an existing connection
func NewProducerFromConn(conn *nats.Conn, log *logger.ZapLogger) *Producer {
	return &Producer{conn: conn, logger: log}
}

// Publish marshals message as JSON and sends it to subject
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.conn.Publish(subject, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Debug("Published message", logger.String("subject", subject))
	return nil
}

// IsConnected reports the connection state for the readiness probe
func (p *Producer) IsConnected() bool {
	return p.conn != nil && p.conn.IsConnected()
}

// Stop flushes pending messages and closes the connection
func (p *Producer) Stop() {
	if p.conn == nil {
		return
	}
	_ = p.conn.Drain()
}
