package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, handler http.HandlerFunc) *HTTPGateway {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := httpclient.NewClient(httpclient.Config{BaseURL: server.URL, Timeout: time.Second}, logger.NewNopLogger())
	return NewHTTPGateway(client)
}

func TestHTTPGateway_LoginPerRole(t *testing.T) {
	tests := []struct {
		role     models.Role
		path     string
		response string
		wantID   string
	}{
		{models.RoleAdmin, "/auth/admin/login", `{"token":"a-tok","admin":{"_id":"adm-1","name":"Root"}}`, "adm-1"},
		{models.RoleDelivery, "/bcb/login", `{"token":"d-tok","bcb":{"id":"agent-1"}}`, "agent-1"},
		{models.RoleUser, "/auth/login", `{"success":true,"data":{"token":"u-tok","user":{"_id":"u-1","email":"a@b.in"}}}`, "u-1"},
		{models.RoleService, "/auth/service/login", `{"accessToken":"s-tok","serviceId":"lab-7"}`, "lab-7"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				assert.Empty(t, r.Header.Get("Authorization"))

				var body models.LoginRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "secret", body.Password)

				_, _ = w.Write([]byte(tt.response))
			})

			resp, err := gw.Login(context.Background(), tt.role, &models.LoginRequest{Email: "a@b.in", Password: "secret"})

			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, tt.wantID, resp.User.ID)
		})
	}
}

func TestHTTPGateway_LoginRejected(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	})

	_, err := gw.Login(context.Background(), models.RoleUser, &models.LoginRequest{Email: "a@b.in", Password: "bad"})

	upstreamErr, ok := httpclient.AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.StatusCode)
	assert.Equal(t, "Invalid credentials", upstreamErr.Message)
}

func TestHTTPGateway_LoginWithoutToken(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"_id":"u-1"}}`))
	})

	_, err := gw.Login(context.Background(), models.RoleUser, &models.LoginRequest{Password: "x"})
	assert.ErrorIs(t, err, httpclient.ErrUpstreamUnavailable)
}

func TestHTTPGateway_UnknownRole(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := gw.Login(context.Background(), models.Role("root"), &models.LoginRequest{})
	assert.Error(t, err)
}
