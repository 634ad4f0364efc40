package usecase

import (
	"context"
	"strings"

	"github.com/redtestlab/portal/internal/pkg/apperrors"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/utils"
)

// ListPrescriptions returns the prescriptions assigned to the lab,
// optionally only those in status
func (uc *ProviderUC) ListPrescriptions(ctx context.Context, providerID string, status models.PrescriptionStatus) ([]*models.Prescription, error) {
	prescriptions, err := uc.providerGW.ListPrescriptions(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return prescriptions, nil
	}

	filtered := make([]*models.Prescription, 0, len(prescriptions))
	for _, rx := range prescriptions {
		if rx.Status == status {
			filtered = append(filtered, rx)
		}
	}
	return filtered, nil
}

// UpdatePrescriptionStatus moves an assigned prescription along its
// lifecycle. Moves the lifecycle does not allow never reach the lab API.
func (uc *ProviderUC) UpdatePrescriptionStatus(ctx context.Context, providerID, prescriptionID string, update *models.PrescriptionStatusUpdate) (*models.Prescription, error) {
	update.Status = models.PrescriptionStatus(strings.ToUpper(strings.TrimSpace(string(update.Status))))
	update.Notes = utils.SanitizeString(update.Notes)
	update.ReportURL = strings.TrimSpace(update.ReportURL)

	if update.Status == models.PrescriptionReturnedToAdmin && update.ReportURL == "" {
		return nil, apperrors.Validation("Upload the report before returning the prescription")
	}

	prescriptions, err := uc.providerGW.ListPrescriptions(ctx, providerID)
	if err != nil {
		return nil, err
	}

	var current *models.Prescription
	for _, rx := range prescriptions {
		if rx.ID == prescriptionID {
			current = rx
			break
		}
	}
	if current == nil {
		return nil, apperrors.NotFound("Prescription %s is not assigned to you", prescriptionID)
	}

	if !current.Status.CanMoveTo(update.Status) {
		return nil, apperrors.Conflict("%s: cannot move from %s to %s",
			models.ErrIllegalPrescriptionTransition.Error(), current.Status, update.Status)
	}

	updated, err := uc.providerGW.UpdatePrescriptionStatus(ctx, prescriptionID, update)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Prescription status updated",
		logger.String("prescription_id", prescriptionID),
		logger.String("provider_id", providerID),
		logger.String("from", string(current.Status)),
		logger.String("to", string(update.Status)))
	return updated, nil
}
