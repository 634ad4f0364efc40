package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/internal/pkg/models"
)

// loginPaths maps each portal to its lab API login endpoint
var loginPaths = map[models.Role]string{
	models.RoleAdmin:    "/auth/admin/login",
	models.RoleDelivery: "/bcb/login",
	models.RoleUser:     "/auth/login",
	models.RoleService:  "/auth/service/login",
}

// HTTPGateway calls the lab API login endpoints
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a new login gateway
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

type accountDTO struct {
	ID    string `json:"_id"`
	AltID string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// loginDTO covers the account key each portal login answers with
type loginDTO struct {
	Token       string      `json:"token"`
	AccessToken string      `json:"accessToken"`
	User        *accountDTO `json:"user"`
	Admin       *accountDTO `json:"admin"`
	BCB         *accountDTO `json:"bcb"`
	Service     *accountDTO `json:"service"`
	ServiceID   string      `json:"serviceId"`
}

func (d *loginDTO) toModel() *models.UpstreamLoginResponse {
	resp := &models.UpstreamLoginResponse{Token: d.Token}
	if resp.Token == "" {
		resp.Token = d.AccessToken
	}

	for _, account := range []*accountDTO{d.User, d.Admin, d.BCB, d.Service} {
		if account == nil {
			continue
		}
		resp.User.ID = account.ID
		if resp.User.ID == "" {
			resp.User.ID = account.AltID
		}
		resp.User.Name = account.Name
		resp.User.Email = account.Email
		break
	}
	if resp.User.ID == "" {
		resp.User.ID = d.ServiceID
	}
	return resp
}

// Login exchanges credentials for a lab API bearer token
func (g *HTTPGateway) Login(ctx context.Context, role models.Role, req *models.LoginRequest) (*models.UpstreamLoginResponse, error) {
	path, ok := loginPaths[role]
	if !ok {
		return nil, fmt.Errorf("no login endpoint for role %q", role)
	}

	var dto loginDTO
	err := g.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   req,
		Public: true,
	}, &dto)
	if err != nil {
		return nil, err
	}

	resp := dto.toModel()
	if strings.TrimSpace(resp.Token) == "" || resp.User.ID == "" {
		return nil, fmt.Errorf("login response for role %s carries no token or account id: %w", role, httpclient.ErrUpstreamUnavailable)
	}
	return resp, nil
}
