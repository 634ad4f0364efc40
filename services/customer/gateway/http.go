package gateway

import (
	"context"
	"fmt"
	"net/http"

	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/services/customer"
)

const (
	pathUserBookings = "/bookings/user"
	pathDoctor       = "/doctor"
	pathEnquiries    = "/enquiries/%s"
)

// HTTPGateway calls the customer endpoints of the lab API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewCustomerGW creates the customer gateway
func NewCustomerGW(client *httpclient.Client) customer.CustomerGW {
	return &HTTPGateway{client: client}
}

// ListUserBookings fetches the bookings of the logged-in customer
func (g *HTTPGateway) ListUserBookings(ctx context.Context) ([]*models.CustomerBooking, error) {
	var bookings []*models.CustomerBooking
	if err := g.client.Get(ctx, pathUserBookings, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookConsultation submits the public doctor booking form
func (g *HTTPGateway) BookConsultation(ctx context.Context, req *models.DoctorConsultation) error {
	return g.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   pathDoctor,
		Body:   req,
		Public: true,
	}, nil)
}

// SubmitEnquiry submits the public doctor or hospital partnership form
func (g *HTTPGateway) SubmitEnquiry(ctx context.Context, enquiry *models.Enquiry) error {
	return g.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf(pathEnquiries, enquiry.Kind),
		Body:   enquiry,
		Public: true,
	}, nil)
}
