package usecase

import (
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/services/customer"
)

// CustomerUC implements the customer use case interface
type CustomerUC struct {
	customerGW customer.CustomerGW
	logger     *logger.ZapLogger
}

// NewCustomerUC creates a new customer use case
func NewCustomerUC(customerGW customer.CustomerGW, log *logger.ZapLogger) *CustomerUC {
	return &CustomerUC{
		customerGW: customerGW,
		logger:     log,
	}
}
