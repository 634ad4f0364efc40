package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/redtestlab/portal/internal/pkg/apperrors"
	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/pkg/requestcontext"
	"github.com/redtestlab/portal/internal/utils"
	"github.com/redtestlab/portal/services/collection"
	"github.com/redtestlab/portal/services/collection/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	agentID   = "agent-1"
	bookingID = "b1"

	collectionLockTTL = 90 * time.Second
)

type fixture struct {
	uc   *CollectionUC
	repo *mocks.MockCollectionRepo
	gw   *mocks.MockCollectionGW
	now  time.Time
}

func setup(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCollectionRepo(ctrl)
	gw := mocks.NewMockCollectionGW(ctrl)
	cfg := &models.Config{
		Collection: models.CollectionConfig{OTPSendInterval: 30 * time.Second},
		Locks:      models.LockConfig{CollectionTTL: collectionLockTTL},
	}

	f := &fixture{
		uc:   NewCollectionUC(cfg, repo, gw, logger.NewNopLogger()),
		repo: repo,
		gw:   gw,
		now:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	f.uc.now = func() time.Time { return f.now }
	return f
}

func ctx() context.Context {
	return requestcontext.WithRequestID(context.Background(), "req-1")
}

func scheduled() *models.Booking {
	return &models.Booking{
		ID:               bookingID,
		CollectionStatus: models.CollectionScheduled,
		Member:           models.Member{Name: "Asha", Phone: "98765 43210"},
	}
}

func (f *fixture) expectLock() {
	f.repo.EXPECT().AcquireActionLock(gomock.Any(), bookingID, "req-1").Return(true, nil)
	f.repo.EXPECT().ReleaseActionLock(gomock.Any(), bookingID, "req-1").Return(nil)
}

func TestSendOTP_Success(t *testing.T) {
	f := setup(t)
	f.expectLock()
	f.repo.EXPECT().GetAgentBooking(gomock.Any(), agentID, bookingID).Return(scheduled(), nil)
	f.gw.EXPECT().SendOTP(gomock.Any(), &models.SendOTPRequest{BookingID: bookingID, Phone: "+919876543210"}).Return(nil)
	f.repo.EXPECT().SaveAgentBooking(gomock.Any(), agentID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, b *models.Booking) error {
			assert.Equal(t, models.CollectionInProgress, b.CollectionStatus)
			return nil
		})
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.CollectionStatusEvent) error {
			assert.Equal(t, models.CollectionScheduled, e.From)
			assert.Equal(t, models.CollectionInProgress, e.To)
			assert.Equal(t, models.ActionSendOTP, e.Action)
			assert.Equal(t, agentID, e.AgentID)
			return nil
		})

	result, err := f.uc.SendOTP(ctx(), agentID, bookingID)

	require.NoError(t, err)
	assert.Equal(t, models.CollectionInProgress, result.Booking.CollectionStatus)
	assert.True(t, result.OTPSent)
	assert.Contains(t, result.Message, "3210")
}

func TestSendOTP_UpstreamFailureKeepsScheduled(t *testing.T) {
	f := setup(t)
	f.expectLock()
	f.repo.EXPECT().GetAgentBooking(gomock.Any(), agentID, bookingID).Return(scheduled(), nil)
	upstreamErr := &httpclient.UpstreamError{StatusCode: 400, Message: "SMS gateway rejected number"}
	f.gw.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(upstreamErr)

	result, err := f.uc.SendOTP(ctx(), agentID, bookingID)

	assert.Nil(t, result)
	got, ok := httpclient.AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, "SMS gateway rejected number", got.Message)
}

func TestSendOTP_FailedSendDoesNotThrottleRetry(t *testing.T) {
	f := setup(t)
	f.repo.EXPECT().AcquireActionLock(gomock.Any(), bookingID, "req-1").Return(true, nil).Times(2)
	f.repo.EXPECT().ReleaseActionLock(gomock.Any(), bookingID, "req-1").Return(nil).Times(2)
	f.repo.EXPECT().GetAgentBooking(gomock.Any(), agentID, bookingID).Return(scheduled(), nil).Times(2)
	gomock.InOrder(
		f.gw.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(&httpclient.UpstreamError{StatusCode: 503, Message: "SMS down"}),
		f.gw.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(nil),
	)
	f.repo.EXPECT().SaveAgentBooking(gomock.Any(), agentID, gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.uc.SendOTP(ctx(), agentID, bookingID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrRateLimited)

	// same instant, the agent retries right away
	result, err := f.uc.SendOTP(ctx(), agentID, bookingID)
	require.NoError(t, err)
	assert.Equal(t, models.CollectionInProgress, result.Booking.CollectionStatus)

	// the successful send is what starts the interval
	assert.False(t, f.uc.throttle.Allow(bookingID, f.now))
}

func TestSendOTP_LabAPICallsEndBeforeLockExpires(t *testing.T) {
	f := setup(t)
	start := time.Now()

	f.repo.EXPECT().AcquireActionLock(gomock.Any(), bookingID, "req-1").Return(true, nil)
	f.repo.EXPECT().ReleaseActionLock(gomock.Any(), bookingID, "req-1").
		DoAndReturn(func(c context.Context, _, _ string) error {
			_, ok := c.Deadline()
			assert.False(t, ok)
			return nil
		})
	f.repo.EXPECT().GetAgentBooking(gomock.Any(), agentID, bookingID).Return(nil, collection.ErrBookingNotCached)
	f.gw.EXPECT().FetchAssignedBookings(gomock.Any()).
		DoAndReturn(func(c context.Context) ([]*models.Booking, error) {
			deadline, ok := c.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, start.Add(collectionLockTTL), deadline, 5*time.Second)
			return []*models.Booking{scheduled()}, nil
		})
	f.repo.EXPECT().ReplaceAgentBookings(gomock.Any(), agentID, gomock.Any()).Return(nil)
	f.gw.EXPECT().SendOTP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(c context.Context, _ *models.SendOTPRequest) error {
			deadline, ok := c.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, start.Add(collectionLockTTL), deadline, 5*time.Second)
			return c.Err()
		})
	f.repo.EXPECT().SaveAgentBooking(gomock.Any(), agentID, gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.uc.SendOTP(ctx(), agentID, bookingID)
	require.NoError(t, err)
}

func TestSendOTP_WrongStatus(t *testing.T) {
	for _, status := range []models.CollectionStatus{models.CollectionInProgress, models.CollectionCompleted, models.CollectionCancelled} {
		t.Run(string(status), func(t *testing.T) {
			f := setup(t)
			f.expectLock()
			b := scheduled()
			b.CollectionStatus = status
			f.repo.EXPECT().GetAgentBooking(gomock.Any(), agentID, bookingID).Return(b, nil)

			_, err := f.uc.SendOTP(ctx(), agentID, bookingID)
			assert.ErrorIs(t, err, apperrors.ErrConflict)
		})
	}
}

func TestSendOTP_InvalidPhone(t *testing.T) {
	f := setup(t)
	f.expectLock()
	b := scheduled()
	b.Member.Phone = "12345"
	f.repo.EXPECT().GetAgentBooking(gomock.Any(), agentID, bookingID).Return(b, nil)

	_, err := f.uc.SendOTP(ctx(), agentID, bookingID)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSendOTP_ConcurrentActionRejected(t *testing.T) {
	f := setup(t)
	f.repo.EXPECT().AcquireActionLock(gomock.Any(), bookingID, "req-1").Return(false, nil)

	_, err := f.uc.SendOTP(ctx(), agentID, bookingID)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "in progress")
}

func TestSendOTP_LockUnavailable(t *testing.T) {
	f := setup(t)
	f.repo.EXPECT().AcquireActionLock(gomock.Any(), bookingID, "req-1").Return(false, errors.New("redis down"))

	_, err := f.uc.SendOTP(ctx(), agentID, bookingID)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrConflict)
}

func TestSendOTP_CacheMissRefreshes(t *testing.T) {
	f := setup(t)
	f.expectLock()
	f.repo.EXPECT().GetAgentBooking(gomock.Any(), agentID, bookingID).Return(nil, collection.ErrBookingNotCached)
	f.gw.EXPECT().FetchAssignedBookings(gomock.Any()).Return([]*models.Booking{scheduled()}, nil)
	f.repo.EXPECT().ReplaceAgentBookings(gomock.Any(), agentID, gomock.Len(1)).Return(nil)
	f.gw.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().SaveAgentBooking(gomock.Any(), agentID, gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	result, err := f.uc.SendOTP(ctx(), agentID, bookingID)

	require.NoError(t, err)
	assert.Equal(t, models.CollectionInProgress, result.Booking.CollectionStatus)
}

func TestSendOTP_NotAssigned(t *testing.T) {
	f := setup(t)
	f.expectLock()
	f.repo.EXPECT().GetAgentBooking(gomock.Any(), agentID, bookingID).Return(nil, collection.ErrBookingNotCached)
	f.gw.EXPECT().FetchAssignedBookings(gomock.Any()).Return([]*models.Booking{}, nil)
	f.repo.EXPECT().ReplaceAgentBookings(gomock.Any(), agentID, gomock.Any()).Return(nil)

	_, err := f.uc.SendOTP(ctx(), agentID, bookingID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestResendOTP_Throttled(t *testing.T) {
	f := setup(t)
	inProgress := scheduled()
	inProgress.CollectionStatus = models.CollectionInProgress

	f.repo.EXPECT().AcquireActionLock(gomock.Any(), bookingID, "req-1").Return(true, nil).Times(3)
	f.repo.EXPECT().ReleaseActionLock(gomock.Any(), bookingID, "req-1").Return(nil).Times(3)
	f.repo.EXPECT().GetAgentBooking(gomock.Any(), agentID, bookingID).Return(inProgress, nil).Times(3)
	f.gw.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	result, err := f.uc.ResendOTP(ctx(), agentID, bookingID)
	require.NoError(t, err)
	assert.Equal(t, models.CollectionInProgress, result.Booking.CollectionStatus)
	assert.True(t, result.OTPSent)

	_, err = f.uc.ResendOTP(ctx(), agentID, bookingID)
	assert.ErrorIs(t, err, apperrors.ErrRateLimited)

	f.now = f.now.Add(31 * time.Second)
	_, err = f.uc.ResendOTP(ctx(), agentID, bookingID)
	assert.NoError(t, err)
}

func TestResendOTP_FailedSendDoesNotThrottleRetry(t *testing.T) {
	f := setup(t)
	inProgress := scheduled()
	inProgress.CollectionStatus = models.CollectionInProgress

	f.repo.EXPECT().AcquireActionLock(gomock.Any(), bookingID, "req-1").Return(true, nil).Times(2)
	f.repo.EXPECT().ReleaseActionLock(gomock.Any(), bookingID, "req-1").Return(nil).Times(2)
	f.repo.EXPECT().GetAgentBooking(gomock.Any(), agentID, bookingID).Return(inProgress, nil).Times(2)
	gomock.InOrder(
		f.gw.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(httpclient.ErrUpstreamUnavailable),
		f.gw.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(nil),
	)

	_, err := f.uc.ResendOTP(ctx(), agentID, bookingID)
	assert.ErrorIs(t, err, httpclient.ErrUpstreamUnavailable)

	result, err := f.uc.ResendOTP(ctx(), agentID, bookingID)
	require.NoError(t, err)
	assert.True(t, result.OTPSent)
}

func TestResendOTP_RequiresInProgress(t *testing.T) {
	f := setup(t)
	f.expectLock()
	f.repo.EXPECT().GetAgentBooking(gomock.Any(), agentID, bookingID).Return(scheduled(), nil)

	_, err := f.uc.ResendOTP(ctx(), agentID, bookingID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestVerifyOTP_RejectsMalformedCodeLocally(t *testing.T) {
	for _, code := range []string{"", "123", "12a4", "1234567"} {
		t.Run(code, func(t *testing.T) {
			f := setup(t)

			_, err := f.uc.VerifyOTP(ctx(), agentID, bookingID, code)
			assert.ErrorIs(t, err, utils.ErrInvalidOTP)
		})
	}
}

func TestVerifyOTP_Success(t *testing.T) {
	f := setup(t)
	f.expectLock()
	b := scheduled()
	b.CollectionStatus = models.CollectionInProgress
	f.repo.EXPECT().GetAgentBooking(gomock.Any(), agentID, bookingID).Return(b, nil)
	f.gw.EXPECT().VerifyOTP(gomock.Any(), &models.VerifyOTPRequest{BookingID: bookingID, Phone: "+919876543210", OTP: "4821"}).Return(nil)
	f.repo.EXPECT().SaveAgentBooking(gomock.Any(), agentID, gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.uc.VerifyOTP(ctx(), agentID, bookingID, "4821")

	require.NoError(t, err)
	assert.Equal(t, models.CollectionCompleted, result.Booking.CollectionStatus)
	assert.False(t, result.OTPSent)
	assert.Equal(t, f.now, result.Booking.UpdatedAt)
}

func TestVerifyOTP_FailureStaysInProgress(t *testing.T) {
	f := setup(t)
	f.expectLock()
	b := scheduled()
	b.CollectionStatus = models.CollectionInProgress
	f.repo.EXPECT().GetAgentBooking(gomock.Any(), agentID, bookingID).Return(b, nil)
	f.gw.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).Return(&httpclient.UpstreamError{StatusCode: 400, Message: "Invalid OTP"})

	result, err := f.uc.VerifyOTP(ctx(), agentID, bookingID, "0000")

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Equal(t, models.CollectionInProgress, b.CollectionStatus)
}

func TestVerifyOTP_BeforeSend(t *testing.T) {
	f := setup(t)
	f.expectLock()
	f.repo.EXPECT().GetAgentBooking(gomock.Any(), agentID, bookingID).Return(scheduled(), nil)

	_, err := f.uc.VerifyOTP(ctx(), agentID, bookingID, "1234")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "Send an OTP")
}

func TestListAssigned(t *testing.T) {
	f := setup(t)
	b2 := scheduled()
	b2.ID = "b2"
	b2.CollectionStatus = models.CollectionCompleted
	all := []*models.Booking{scheduled(), b2}

	f.gw.EXPECT().FetchAssignedBookings(gomock.Any()).Return(all, nil).Times(2)
	f.repo.EXPECT().ReplaceAgentBookings(gomock.Any(), agentID, all).Return(nil)
	f.repo.EXPECT().ReplaceAgentBookings(gomock.Any(), agentID, all).Return(errors.New("redis down"))

	got, err := f.uc.ListAssigned(ctx(), agentID, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// cache failure does not hide the bookings
	got, err = f.uc.ListAssigned(ctx(), agentID, models.CollectionCompleted)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b2", got[0].ID)
}

func TestListAssigned_InvalidStatus(t *testing.T) {
	f := setup(t)

	_, err := f.uc.ListAssigned(ctx(), agentID, "DONE")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListAssigned_UpstreamUnavailable(t *testing.T) {
	f := setup(t)
	f.gw.EXPECT().FetchAssignedBookings(gomock.Any()).Return(nil, httpclient.ErrUpstreamUnavailable)

	_, err := f.uc.ListAssigned(ctx(), agentID, "")
	assert.ErrorIs(t, err, httpclient.ErrUpstreamUnavailable)
}
