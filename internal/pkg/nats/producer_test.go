package nats

import (
	"testing"

	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestNewProducer(t *testing.T) {
	t.Run("invalid address", func(t *testing.T) {
		producer, err := NewProducer("invalid://address", logger.NewNopLogger())
		assert.Error(t, err)
		assert.Nil(t, producer)
		assert.Contains(t, err.Error(), "failed to connect to NATS server")
	})

	t.Run("nothing listening", func(t *testing.T) {
		producer, err := NewProducer("nats://127.0.0.1:1", logger.NewNopLogger())
		assert.Error(t, err)
		assert.Nil(t, producer)
	})
}

func TestProducer_Disconnected(t *testing.T) {
	producer := NewProducerFromConn(nil, logger.NewNopLogger())

	assert.False(t, producer.IsConnected())
	producer.Stop()
}

func TestProducer_PublishUnmarshalable(t *testing.T) {
	producer := NewProducerFromConn(nil, logger.NewNopLogger())

	err := producer.Publish("collection.status.completed", make(chan int))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal message")
}
