package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redtestlab/portal/internal/pkg/apperrors"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/pkg/requestcontext"
	"github.com/redtestlab/portal/internal/utils"
	"github.com/redtestlab/portal/services/collection"
)

// ListAssigned fetches the agent's bookings and replaces the cache with them
func (uc *CollectionUC) ListAssigned(ctx context.Context, agentID string, status models.CollectionStatus) ([]*models.Booking, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.Validation("unknown collection status %q", status)
	}

	bookings, err := uc.refresh(ctx, agentID)
	if err != nil {
		return nil, err
	}

	if status == "" {
		return bookings, nil
	}

	filtered := make([]*models.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if booking.CollectionStatus == status {
			filtered = append(filtered, booking)
		}
	}
	return filtered, nil
}

// GetBooking returns a booking from the agent cache, refreshing it on a miss
func (uc *CollectionUC) GetBooking(ctx context.Context, agentID, bookingID string) (*models.Booking, error) {
	booking, err := uc.collectionRepo.GetAgentBooking(ctx, agentID, bookingID)
	if err == nil {
		return booking, nil
	}
	if !errors.Is(err, collection.ErrBookingNotCached) {
		uc.logger.Warn("Booking cache unavailable, reading through",
			logger.String("agent_id", agentID),
			logger.Err(err))
	}

	bookings, err := uc.refresh(ctx, agentID)
	if err != nil {
		return nil, err
	}
	for _, booking := range bookings {
		if booking.ID == bookingID {
			return booking, nil
		}
	}
	return nil, apperrors.NotFound("Booking %s is not assigned to you", bookingID)
}

// SendOTP texts the member an OTP and moves the booking to IN_PROGRESS
func (uc *CollectionUC) SendOTP(ctx context.Context, agentID, bookingID string) (*models.CollectionResult, error) {
	var result *models.CollectionResult
	err := uc.exclusive(ctx, bookingID, func(ctx context.Context) error {
		booking, err := uc.GetBooking(ctx, agentID, bookingID)
		if err != nil {
			return err
		}

		next, err := booking.CollectionStatus.Next(models.ActionSendOTP)
		if err != nil {
			return apperrors.Conflict("Cannot send an OTP for a %s booking", booking.CollectionStatus)
		}

		phone, err := utils.NormalizePhone(booking.Member.Phone)
		if err != nil {
			return apperrors.Validation("Member phone number %q is not a valid mobile number", booking.Member.Phone)
		}

		if !uc.throttle.Allow(bookingID, uc.now()) {
			return apperrors.New(apperrors.ErrRateLimited, "Please wait before requesting another OTP")
		}

		if err := uc.collectionGW.SendOTP(ctx, &models.SendOTPRequest{BookingID: bookingID, Phone: phone}); err != nil {
			uc.logger.Warn("OTP send rejected",
				logger.String("booking_id", bookingID),
				logger.Phone("phone", phone),
				logger.Err(err))
			uc.throttle.Refund(bookingID)
			return err
		}

		uc.transition(ctx, agentID, booking, models.ActionSendOTP, next)
		result = &models.CollectionResult{Booking: booking, OTPSent: booking.OTPSent(), Message: "OTP sent to " + maskPhone(phone)}
		return nil
	})
	return result, err
}

// ResendOTP sends a fresh OTP for a booking already IN_PROGRESS
func (uc *CollectionUC) ResendOTP(ctx context.Context, agentID, bookingID string) (*models.CollectionResult, error) {
	var result *models.CollectionResult
	err := uc.exclusive(ctx, bookingID, func(ctx context.Context) error {
		booking, err := uc.GetBooking(ctx, agentID, bookingID)
		if err != nil {
			return err
		}

		if _, err := booking.CollectionStatus.Next(models.ActionResendOTP); err != nil {
			return apperrors.Conflict("Cannot resend an OTP for a %s booking", booking.CollectionStatus)
		}

		phone, err := utils.NormalizePhone(booking.Member.Phone)
		if err != nil {
			return apperrors.Validation("Member phone number %q is not a valid mobile number", booking.Member.Phone)
		}

		if !uc.throttle.Allow(bookingID, uc.now()) {
			return apperrors.New(apperrors.ErrRateLimited, "Please wait before requesting another OTP")
		}

		if err := uc.collectionGW.SendOTP(ctx, &models.SendOTPRequest{BookingID: bookingID, Phone: phone}); err != nil {
			uc.throttle.Refund(bookingID)
			return err
		}

		result = &models.CollectionResult{Booking: booking, OTPSent: true, Message: "OTP resent to " + maskPhone(phone)}
		return nil
	})
	return result, err
}

// VerifyOTP checks the member's code and completes the collection.
// Malformed codes are rejected before any lock or network call.
func (uc *CollectionUC) VerifyOTP(ctx context.Context, agentID, bookingID, otp string) (*models.CollectionResult, error) {
	if err := utils.ValidateOTPCode(otp); err != nil {
		return nil, err
	}

	var result *models.CollectionResult
	err := uc.exclusive(ctx, bookingID, func(ctx context.Context) error {
		booking, err := uc.GetBooking(ctx, agentID, bookingID)
		if err != nil {
			return err
		}

		next, err := booking.CollectionStatus.Next(models.ActionVerifyOTP)
		if err != nil {
			if booking.CollectionStatus == models.CollectionScheduled {
				return apperrors.Conflict("Send an OTP before verifying")
			}
			return apperrors.Conflict("Cannot verify an OTP for a %s booking", booking.CollectionStatus)
		}

		phone, err := utils.NormalizePhone(booking.Member.Phone)
		if err != nil {
			return apperrors.Validation("Member phone number %q is not a valid mobile number", booking.Member.Phone)
		}

		req := &models.VerifyOTPRequest{BookingID: bookingID, Phone: phone, OTP: otp}
		if err := uc.collectionGW.VerifyOTP(ctx, req); err != nil {
			uc.logger.Warn("OTP verification rejected",
				logger.String("booking_id", bookingID),
				logger.Err(err))
			return err
		}

		uc.transition(ctx, agentID, booking, models.ActionVerifyOTP, next)
		uc.throttle.Forget(bookingID)
		result = &models.CollectionResult{Booking: booking, OTPSent: booking.OTPSent(), Message: "Sample collection completed"}
		return nil
	})
	return result, err
}

func (uc *CollectionUC) refresh(ctx context.Context, agentID string) ([]*models.Booking, error) {
	bookings, err := uc.collectionGW.FetchAssignedBookings(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.collectionRepo.ReplaceAgentBookings(ctx, agentID, bookings); err != nil {
		uc.logger.Warn("Failed to cache assigned bookings",
			logger.String("agent_id", agentID),
			logger.Err(err))
	}
	return bookings, nil
}

// exclusive runs fn while holding the booking's in-flight lock. fn gets a
// context that expires with the lock, so no lab API call outlives it.
func (uc *CollectionUC) exclusive(ctx context.Context, bookingID string, fn func(ctx context.Context) error) error {
	if uc.lockTTL > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.lockTTL)
		defer cancel()
	}

	owner := requestcontext.GetRequestID(ctx)
	if owner == "" {
		owner = uuid.NewString()
	}

	acquired, err := uc.collectionRepo.AcquireActionLock(ctx, bookingID, owner)
	if err != nil {
		return fmt.Errorf("collection lock: %w", err)
	}
	if !acquired {
		return apperrors.Conflict("Another OTP request for this booking is in progress")
	}

	defer func() {
		if err := uc.collectionRepo.ReleaseActionLock(context.WithoutCancel(ctx), bookingID, owner); err != nil {
			uc.logger.Warn("Failed to release collection lock",
				logger.String("booking_id", bookingID),
				logger.Err(err))
		}
	}()

	return fn(ctx)
}

// transition applies an upstream-confirmed status change to the cache and
// announces it. The lab API stays authoritative, so neither step fails the request.
func (uc *CollectionUC) transition(ctx context.Context, agentID string, booking *models.Booking, action models.CollectionAction, next models.CollectionStatus) {
	from := booking.CollectionStatus
	booking.CollectionStatus = next
	booking.UpdatedAt = uc.now()

	if err := uc.collectionRepo.SaveAgentBooking(ctx, agentID, booking); err != nil {
		uc.logger.Warn("Failed to update cached booking",
			logger.String("booking_id", booking.ID),
			logger.Err(err))
	}

	event := &models.CollectionStatusEvent{
		BookingID:  booking.ID,
		AgentID:    agentID,
		Action:     action,
		From:       from,
		To:         next,
		OccurredAt: booking.UpdatedAt,
	}
	if err := uc.collectionGW.PublishStatusChanged(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish collection status",
			logger.String("booking_id", booking.ID),
			logger.Err(err))
	}

	uc.logger.Info("Collection status changed",
		logger.String("booking_id", booking.ID),
		logger.String("agent_id", agentID),
		logger.String("from", string(from)),
		logger.String("to", string(next)))
}

func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	return "******" + phone[len(phone)-4:]
}
