package usecase

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/services/site"
)

// SiteUC implements the site use case interface
type SiteUC struct {
	siteGW site.SiteGW
	policy *bluemonday.Policy
	logger *logger.ZapLogger
}

// NewSiteUC creates a new site use case
func NewSiteUC(siteGW site.SiteGW, log *logger.ZapLogger) *SiteUC {
	return &SiteUC{
		siteGW: siteGW,
		policy: bluemonday.UGCPolicy(),
		logger: log,
	}
}
