package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/redtestlab/portal/internal/pkg/apperrors"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/pkg/requestcontext"
	"github.com/redtestlab/portal/services/provider/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payoutLockTTL = 90 * time.Second

type fixture struct {
	uc   *ProviderUC
	repo *mocks.MockProviderRepo
	gw   *mocks.MockProviderGW
}

func setup(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		repo: mocks.NewMockProviderRepo(ctrl),
		gw:   mocks.NewMockProviderGW(ctrl),
	}
	cfg := &models.Config{Locks: models.LockConfig{PayoutTTL: payoutLockTTL}}
	f.uc = NewProviderUC(cfg, f.repo, f.gw, logger.NewNopLogger())
	return f
}

func ctx() context.Context {
	return requestcontext.WithRequestID(context.Background(), "req-1")
}

func TestGetProfile_OnlyOwn(t *testing.T) {
	f := setup(t)

	f.gw.EXPECT().GetProfile(gomock.Any(), "lab-7").Return(&models.ServiceProvider{ID: "lab-7"}, nil).Times(2)

	_, err := f.uc.GetProfile(ctx(), "lab-7", "")
	require.NoError(t, err)
	_, err = f.uc.GetProfile(ctx(), "lab-7", "lab-7")
	require.NoError(t, err)

	_, err = f.uc.GetProfile(ctx(), "lab-7", "lab-8")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestUpdateProfile(t *testing.T) {
	f := setup(t)

	f.gw.EXPECT().UpdateProfile(gomock.Any(), "lab-7", &models.ProfileUpdate{
		Name:        "Apex Labs",
		Phone:       "+919876543210",
		BankDetails: models.BankDetails{IFSC: "HDFC0001"},
	}).Return(&models.ServiceProvider{ID: "lab-7", Name: "Apex Labs"}, nil)

	_, err := f.uc.UpdateProfile(ctx(), "lab-7", "", &models.ProfileUpdate{
		Name:        " Apex Labs",
		Phone:       "9876543210",
		BankDetails: models.BankDetails{IFSC: " hdfc0001 "},
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateProfile(ctx(), "lab-7", "", &models.ProfileUpdate{Phone: "555"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdatePrescriptionStatus_Lifecycle(t *testing.T) {
	tests := []struct {
		name    string
		from    models.PrescriptionStatus
		to      models.PrescriptionStatus
		allowed bool
	}{
		{"start work", models.PrescriptionAssigned, models.PrescriptionInProgress, true},
		{"reject assigned", models.PrescriptionAssigned, models.PrescriptionRejected, true},
		{"return finished", models.PrescriptionInProgress, models.PrescriptionReturnedToAdmin, true},
		{"reject in progress", models.PrescriptionInProgress, models.PrescriptionRejected, true},
		{"skip work", models.PrescriptionAssigned, models.PrescriptionReturnedToAdmin, false},
		{"reopen rejected", models.PrescriptionRejected, models.PrescriptionInProgress, false},
		{"back to assigned", models.PrescriptionInProgress, models.PrescriptionAssigned, false},
		{"returned is final", models.PrescriptionReturnedToAdmin, models.PrescriptionRejected, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			update := &models.PrescriptionStatusUpdate{Status: tt.to, ReportURL: "https://cdn/report.pdf"}

			f.gw.EXPECT().ListPrescriptions(gomock.Any(), "lab-7").
				Return([]*models.Prescription{{ID: "rx-1", Status: tt.from, ProviderID: "lab-7"}}, nil)
			if tt.allowed {
				f.gw.EXPECT().UpdatePrescriptionStatus(gomock.Any(), "rx-1", update).
					Return(&models.Prescription{ID: "rx-1", Status: tt.to}, nil)
			}

			rx, err := f.uc.UpdatePrescriptionStatus(ctx(), "lab-7", "rx-1", update)

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, rx.Status)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrConflict)
			}
		})
	}
}

func TestUpdatePrescriptionStatus_Guards(t *testing.T) {
	f := setup(t)

	_, err := f.uc.UpdatePrescriptionStatus(ctx(), "lab-7", "rx-1",
		&models.PrescriptionStatusUpdate{Status: models.PrescriptionReturnedToAdmin})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	f.gw.EXPECT().ListPrescriptions(gomock.Any(), "lab-7").Return([]*models.Prescription{}, nil)
	_, err = f.uc.UpdatePrescriptionStatus(ctx(), "lab-7", "rx-9",
		&models.PrescriptionStatusUpdate{Status: "in_progress"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListPrescriptions_FilterByStatus(t *testing.T) {
	f := setup(t)

	f.gw.EXPECT().ListPrescriptions(gomock.Any(), "lab-7").Return([]*models.Prescription{
		{ID: "rx-1", Status: models.PrescriptionAssigned},
		{ID: "rx-2", Status: models.PrescriptionInProgress},
	}, nil)

	list, err := f.uc.ListPrescriptions(ctx(), "lab-7", models.PrescriptionInProgress)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "rx-2", list[0].ID)
}

func TestRequestPayout_Success(t *testing.T) {
	f := setup(t)

	gomock.InOrder(
		f.repo.EXPECT().AcquirePayoutLock(gomock.Any(), "lab-7", "req-1").Return(true, nil),
		f.gw.EXPECT().GetProfile(gomock.Any(), "lab-7").Return(&models.ServiceProvider{ID: "lab-7", CoinBalance: 1000}, nil),
		f.gw.EXPECT().CreatePayout(gomock.Any(), &models.PayoutRequest{ProviderID: "lab-7", Coins: 1000, Note: "April"}).
			Return(&models.Payout{ID: "po-1", Coins: 1000, Status: "PENDING"}, nil),
		f.repo.EXPECT().ReleasePayoutLock(gomock.Any(), "lab-7", "req-1").Return(nil),
	)

	payout, err := f.uc.RequestPayout(ctx(), "lab-7", &models.PayoutRequest{ProviderID: "someone-else", Coins: 1000, Note: " April "})

	require.NoError(t, err)
	assert.Equal(t, "po-1", payout.ID)
}

func TestRequestPayout_LabAPICallsEndBeforeLockExpires(t *testing.T) {
	f := setup(t)
	start := time.Now()

	assertBounded := func(c context.Context) {
		deadline, ok := c.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, start.Add(payoutLockTTL), deadline, 5*time.Second)
	}

	f.repo.EXPECT().AcquirePayoutLock(gomock.Any(), "lab-7", "req-1").Return(true, nil)
	f.gw.EXPECT().GetProfile(gomock.Any(), "lab-7").
		DoAndReturn(func(c context.Context, _ string) (*models.ServiceProvider, error) {
			assertBounded(c)
			return &models.ServiceProvider{ID: "lab-7", CoinBalance: 50}, nil
		})
	f.gw.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(c context.Context, _ *models.PayoutRequest) (*models.Payout, error) {
			assertBounded(c)
			return &models.Payout{ID: "po-2"}, nil
		})
	f.repo.EXPECT().ReleasePayoutLock(gomock.Any(), "lab-7", "req-1").
		DoAndReturn(func(c context.Context, _, _ string) error {
			// the release still runs once the bounded context is done
			_, ok := c.Deadline()
			assert.False(t, ok)
			return nil
		})

	_, err := f.uc.RequestPayout(ctx(), "lab-7", &models.PayoutRequest{Coins: 50})
	require.NoError(t, err)
}

func TestRequestPayout_AboveBalance(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().AcquirePayoutLock(gomock.Any(), "lab-7", "req-1").Return(true, nil)
	f.gw.EXPECT().GetProfile(gomock.Any(), "lab-7").Return(&models.ServiceProvider{ID: "lab-7", CoinBalance: 300}, nil)
	f.repo.EXPECT().ReleasePayoutLock(gomock.Any(), "lab-7", "req-1").Return(nil)

	_, err := f.uc.RequestPayout(ctx(), "lab-7", &models.PayoutRequest{Coins: 301})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "300")
}

func TestRequestPayout_NonPositive(t *testing.T) {
	f := setup(t)

	_, err := f.uc.RequestPayout(ctx(), "lab-7", &models.PayoutRequest{Coins: 0})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.uc.RequestPayout(ctx(), "lab-7", &models.PayoutRequest{Coins: -5})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRequestPayout_DoubleSubmit(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().AcquirePayoutLock(gomock.Any(), "lab-7", "req-1").Return(false, nil)

	_, err := f.uc.RequestPayout(ctx(), "lab-7", &models.PayoutRequest{Coins: 10})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRequestPayout_LockStoreDown(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().AcquirePayoutLock(gomock.Any(), "lab-7", "req-1").Return(false, errors.New("dial tcp: refused"))

	_, err := f.uc.RequestPayout(ctx(), "lab-7", &models.PayoutRequest{Coins: 10})
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrConflict)
}
