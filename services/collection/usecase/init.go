package usecase

import (
	"time"

	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/services/collection"
)

// CollectionUC implements the collection use case interface
type CollectionUC struct {
	collectionRepo collection.CollectionRepo
	collectionGW   collection.CollectionGW
	throttle       *otpThrottle
	lockTTL        time.Duration
	logger         *logger.ZapLogger
	now            func() time.Time
}

// NewCollectionUC creates a new collection use case
func NewCollectionUC(
	cfg *models.Config,
	collectionRepo collection.CollectionRepo,
	collectionGW collection.CollectionGW,
	log *logger.ZapLogger,
) *CollectionUC {
	return &CollectionUC{
		collectionRepo: collectionRepo,
		collectionGW:   collectionGW,
		throttle:       newOTPThrottle(cfg.Collection.OTPSendInterval),
		lockTTL:        cfg.Locks.CollectionTTL,
		logger:         log,
		now:            time.Now,
	}
}
