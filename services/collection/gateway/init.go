package gateway

import (
	"context"

	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/services/collection"
)

// CollectionGW combines the lab API and NATS gateways
type CollectionGW struct {
	httpGateway *HTTPGateway
	natsGateway *NATSGateway
}

// NewCollectionGW creates a new gateway instance
func NewCollectionGW(client *httpclient.Client, publisher Publisher) collection.CollectionGW {
	return &CollectionGW{
		httpGateway: NewHTTPGateway(client),
		natsGateway: NewNATSGateway(publisher),
	}
}

func (g *CollectionGW) FetchAssignedBookings(ctx context.Context) ([]*models.Booking, error) {
	return g.httpGateway.FetchAssignedBookings(ctx)
}

func (g *CollectionGW) SendOTP(ctx context.Context, req *models.SendOTPRequest) error {
	return g.httpGateway.SendOTP(ctx, req)
}

func (g *CollectionGW) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) error {
	return g.httpGateway.VerifyOTP(ctx, req)
}

func (g *CollectionGW) PublishStatusChanged(ctx context.Context, event *models.CollectionStatusEvent) error {
	return g.natsGateway.PublishStatusChanged(ctx, event)
}
