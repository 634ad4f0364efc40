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
	"github.com/redtestlab/portal/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, handler http.HandlerFunc) *HTTPGateway {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := httpclient.NewClient(httpclient.Config{BaseURL: server.URL, Timeout: time.Second}, logger.NewNopLogger())
	return &HTTPGateway{client: client}
}

func TestHTTPGateway_ListUserBookings(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/user", r.URL.Path)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":[{"_id":"o1","status":"REPORT_READY","reportUrl":"https://cdn/r.pdf"},{"_id":"o2","status":"BOOKED"}]}`))
	})

	ctx := requestcontext.WithUpstreamToken(context.Background(), "user-token")
	bookings, err := gw.ListUserBookings(ctx)

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.True(t, bookings[0].HasReport())
	assert.False(t, bookings[1].HasReport())
}

func TestHTTPGateway_ListUserBookingsNeedsSession(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := gw.ListUserBookings(context.Background())
	assert.ErrorIs(t, err, httpclient.ErrMissingToken)
}

func TestHTTPGateway_SubmitEnquiry(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/enquiries/hospital", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "City Care", body["organisation"])
		assert.NotContains(t, body, "Kind")

		w.WriteHeader(http.StatusCreated)
	})

	err := gw.SubmitEnquiry(context.Background(), &models.Enquiry{
		Kind:         models.EnquiryHospital,
		Name:         "Dr Rao",
		Phone:        "+919876543210",
		Email:        "rao@citycare.in",
		Organisation: "City Care",
	})
	require.NoError(t, err)
}

func TestHTTPGateway_BookConsultation(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/doctor", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	err := gw.BookConsultation(context.Background(), &models.DoctorConsultation{Name: "Asha", Phone: "+919876543210"})
	require.NoError(t, err)
}
