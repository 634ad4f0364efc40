package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/redtestlab/portal/internal/pkg/apperrors"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/utils"
)

// ListBookings returns the customer's bookings, most recent first
func (uc *CustomerUC) ListBookings(ctx context.Context) ([]*models.CustomerBooking, error) {
	bookings, err := uc.customerGW.ListUserBookings(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].ScheduledAt.After(bookings[j].ScheduledAt)
	})
	return bookings, nil
}

// ListReports returns the bookings that already carry a lab report
func (uc *CustomerUC) ListReports(ctx context.Context) ([]*models.CustomerBooking, error) {
	bookings, err := uc.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]*models.CustomerBooking, 0, len(bookings))
	for _, booking := range bookings {
		if booking.HasReport() {
			reports = append(reports, booking)
		}
	}
	return reports, nil
}

// BookConsultation validates and forwards a doctor booking
func (uc *CustomerUC) BookConsultation(ctx context.Context, req *models.DoctorConsultation) error {
	req.Name = utils.SanitizeString(req.Name)
	if req.Name == "" {
		return apperrors.Validation("Name is required")
	}

	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return err
	}
	req.Phone = phone

	if err := optionalEmail(&req.Email); err != nil {
		return err
	}
	req.Message = utils.SanitizeString(req.Message)

	if err := uc.customerGW.BookConsultation(ctx, req); err != nil {
		return err
	}

	uc.logger.Info("Doctor consultation booked",
		logger.Phone("phone", req.Phone),
		logger.String("speciality", req.Speciality))
	return nil
}

// SubmitEnquiry validates and forwards a doctor or hospital enquiry
func (uc *CustomerUC) SubmitEnquiry(ctx context.Context, enquiry *models.Enquiry) error {
	switch enquiry.Kind {
	case models.EnquiryDoctor, models.EnquiryHospital:
	default:
		return apperrors.NotFound("Unknown enquiry type %q", enquiry.Kind)
	}

	enquiry.Name = utils.SanitizeString(enquiry.Name)
	enquiry.Organisation = utils.SanitizeString(enquiry.Organisation)
	enquiry.Message = utils.SanitizeString(enquiry.Message)

	if enquiry.Name == "" {
		return apperrors.Validation("Name is required")
	}
	if enquiry.Kind == models.EnquiryHospital && enquiry.Organisation == "" {
		return apperrors.Validation("Hospital name is required")
	}

	phone, err := normalizePhone(enquiry.Phone)
	if err != nil {
		return err
	}
	enquiry.Phone = phone

	enquiry.Email = strings.ToLower(strings.TrimSpace(enquiry.Email))
	if !utils.IsValidEmail(enquiry.Email) {
		return apperrors.Validation("Please enter a valid email address")
	}

	if err := uc.customerGW.SubmitEnquiry(ctx, enquiry); err != nil {
		return err
	}

	uc.logger.Info("Enquiry submitted", logger.String("kind", string(enquiry.Kind)))
	return nil
}

func normalizePhone(phone string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", apperrors.Validation("Phone is required")
	}
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPhone) {
			return "", apperrors.Validation("Please enter a valid 10 digit mobile number")
		}
		return "", err
	}
	return normalized, nil
}

func optionalEmail(email *string) error {
	*email = strings.ToLower(strings.TrimSpace(*email))
	if *email != "" && !utils.IsValidEmail(*email) {
		return apperrors.Validation("Please enter a valid email address")
	}
	return nil
}
