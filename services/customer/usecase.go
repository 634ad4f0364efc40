package customer

import (
	"context"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/redtestlab/portal/services/customer CustomerUC

// CustomerUC defines the interface for the customer portal and public forms
type CustomerUC interface {
	ListBookings(ctx context.Context) ([]*models.CustomerBooking, error)
	ListReports(ctx context.Context) ([]*models.CustomerBooking, error)
	BookConsultation(ctx context.Context, req *models.DoctorConsultation) error
	SubmitEnquiry(ctx context.Context, enquiry *models.Enquiry) error
}
