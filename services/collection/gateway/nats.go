package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/redtestlab/portal/internal/pkg/constants"
	"github.com/redtestlab/portal/internal/pkg/models"
)

// Publisher is satisfied by the NATS producer
type Publisher interface {
	Publish(subject string, message interface{}) error
}

// NATSGateway publishes collection events
type NATSGateway struct {
	publisher Publisher
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(publisher Publisher) *NATSGateway {
	return &NATSGateway{publisher: publisher}
}

// PublishStatusChanged emits collection.status.<new status>
func (g *NATSGateway) PublishStatusChanged(ctx context.Context, event *models.CollectionStatusEvent) error {
	subject := fmt.Sprintf(constants.SubjectCollectionStatus, strings.ToLower(string(event.To)))
	if err := g.publisher.Publish(subject, event); err != nil {
		return fmt.Errorf("failed to publish collection status: %w", err)
	}
	return nil
}
