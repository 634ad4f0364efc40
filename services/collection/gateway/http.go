package gateway

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/internal/pkg/models"
)

const (
	pathAssignedBookings = "/bcb/bookings"
	pathSendOTP          = "/bcb/send-otp"
	pathVerifyOTP        = "/bcb/verify-otp"
)

// HTTPGateway calls the delivery endpoints of the lab API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a new lab API gateway
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

// bookingDTO is a booking as the lab API serialises it
type bookingDTO struct {
	ID               string                  `json:"_id"`
	AltID            string                  `json:"id"`
	CollectionStatus models.CollectionStatus `json:"collectionStatus"`
	Member           models.Member           `json:"member"`
	Address          string                  `json:"address"`
	CollectionDate   string                  `json:"collectionDate"`
	CollectionTime   string                  `json:"collectionTime"`
	Notes            string                  `json:"notes"`
	AssignedTo       string                  `json:"assignedTo"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

func (d *bookingDTO) toModel() *models.Booking {
	id := d.ID
	if id == "" {
		id = d.AltID
	}
	status := d.CollectionStatus
	if status == "" {
		status = models.CollectionScheduled
	}
	return &models.Booking{
		ID:               id,
		CollectionStatus: status,
		Member:           d.Member,
		Address:          d.Address,
		CollectionDate:   d.CollectionDate,
		CollectionTime:   d.CollectionTime,
		Notes:            d.Notes,
		AgentID:          d.AssignedTo,
		UpdatedAt:        d.UpdatedAt,
	}
}

// FetchAssignedBookings lists the bookings assigned to the calling agent
func (g *HTTPGateway) FetchAssignedBookings(ctx context.Context) ([]*models.Booking, error) {
	var dtos []bookingDTO
	if err := g.client.Get(ctx, pathAssignedBookings, nil, &dtos); err != nil {
		return nil, fmt.Errorf("failed to fetch assigned bookings: %w", err)
	}

	bookings := make([]*models.Booking, 0, len(dtos))
	for i := range dtos {
		booking := dtos[i].toModel()
		if booking.ID == "" {
			continue
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

// SendOTP asks the lab API to text an OTP to the member
func (g *HTTPGateway) SendOTP(ctx context.Context, req *models.SendOTPRequest) error {
	if err := g.client.Post(ctx, pathSendOTP, req, nil); err != nil {
		return fmt.Errorf("failed to send otp: %w", err)
	}
	return nil
}

// VerifyOTP submits the code the member read out
func (g *HTTPGateway) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) error {
	if err := g.client.Post(ctx, pathVerifyOTP, req, nil); err != nil {
		return fmt.Errorf("failed to verify otp: %w", err)
	}
	return nil
}
