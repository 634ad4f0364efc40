package gateway

import (
	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/services/auth"
)

// NewAuthGW creates the login gateway
func NewAuthGW(client *httpclient.Client) auth.AuthGW {
	return NewHTTPGateway(client)
}
