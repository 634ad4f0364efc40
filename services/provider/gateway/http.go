package gateway

import (
	"context"
	"fmt"
	"net/url"

	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/services/provider"
)

const (
	pathProfile               = "/auth/service/%s"
	pathProviderPrescriptions = "/prescriptions/provider/%s"
	pathPrescriptionStatus    = "/prescriptions/%s/status"
	pathPayouts               = "/payouts"
)

// HTTPGateway calls the lab portal endpoints of the lab API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewProviderGW creates the provider gateway
func NewProviderGW(client *httpclient.Client) provider.ProviderGW {
	return &HTTPGateway{client: client}
}

func (g *HTTPGateway) GetProfile(ctx context.Context, providerID string) (*models.ServiceProvider, error) {
	var profile models.ServiceProvider
	if err := g.client.Get(ctx, fmt.Sprintf(pathProfile, url.PathEscape(providerID)), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (g *HTTPGateway) UpdateProfile(ctx context.Context, providerID string, update *models.ProfileUpdate) (*models.ServiceProvider, error) {
	var profile models.ServiceProvider
	if err := g.client.Put(ctx, fmt.Sprintf(pathProfile, url.PathEscape(providerID)), update, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (g *HTTPGateway) ListPrescriptions(ctx context.Context, providerID string) ([]*models.Prescription, error) {
	var prescriptions []*models.Prescription
	if err := g.client.Get(ctx, fmt.Sprintf(pathProviderPrescriptions, url.PathEscape(providerID)), nil, &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (g *HTTPGateway) UpdatePrescriptionStatus(ctx context.Context, prescriptionID string, update *models.PrescriptionStatusUpdate) (*models.Prescription, error) {
	var prescription models.Prescription
	if err := g.client.Put(ctx, fmt.Sprintf(pathPrescriptionStatus, url.PathEscape(prescriptionID)), update, &prescription); err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (g *HTTPGateway) ListPayouts(ctx context.Context, providerID string) ([]*models.Payout, error) {
	var payouts []*models.Payout
	query := url.Values{"providerId": []string{providerID}}
	if err := g.client.Get(ctx, pathPayouts, query, &payouts); err != nil {
		return nil, err
	}
	return payouts, nil
}

// CreatePayout submits a payout request; it is never retried
func (g *HTTPGateway) CreatePayout(ctx context.Context, req *models.PayoutRequest) (*models.Payout, error) {
	var payout models.Payout
	if err := g.client.Post(ctx, pathPayouts, req, &payout); err != nil {
		return nil, err
	}
	return &payout, nil
}
