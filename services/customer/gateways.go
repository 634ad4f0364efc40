package customer

import (
	"context"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/redtestlab/portal/services/customer CustomerGW

// CustomerGW defines the lab API calls of the customer portal
type CustomerGW interface {
	ListUserBookings(ctx context.Context) ([]*models.CustomerBooking, error)
	BookConsultation(ctx context.Context, req *models.DoctorConsultation) error
	SubmitEnquiry(ctx context.Context, enquiry *models.Enquiry) error
}
