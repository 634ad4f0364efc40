package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/internal/pkg/apperrors"
	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/services/customer/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCustomerHandler_SubmitEnquiryUsesPathKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockCustomerUC(ctrl)
	h := NewCustomerHandler(uc)

	uc.EXPECT().SubmitEnquiry(gomock.Any(), &models.Enquiry{
		Kind:  models.EnquiryDoctor,
		Name:  "Dr Rao",
		Phone: "9876543210",
		Email: "rao@care.in",
	}).Return(nil)

	c, rec := newContext(http.MethodPost, "/public/enquiries/Doctor", `{"name":"Dr Rao","phone":"9876543210","email":"rao@care.in"}`)
	c.SetParamNames("kind")
	c.SetParamValues("Doctor")

	require.NoError(t, h.SubmitEnquiry(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCustomerHandler_BookConsultationInvalidPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockCustomerUC(ctrl)
	h := NewCustomerHandler(uc)

	uc.EXPECT().BookConsultation(gomock.Any(), gomock.Any()).
		Return(apperrors.Validation("Please enter a valid 10 digit mobile number"))

	c, rec := newContext(http.MethodPost, "/public/doctor", `{"name":"Asha","phone":"123"}`)

	require.NoError(t, h.BookConsultation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "10 digit")
}

func TestCustomerHandler_ListBookingsSessionExpiredUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockCustomerUC(ctrl)
	h := NewCustomerHandler(uc)

	uc.EXPECT().ListBookings(gomock.Any()).
		Return(nil, &httpclient.UpstreamError{StatusCode: http.StatusUnauthorized, Message: "jwt expired"})

	c, rec := newContext(http.MethodGet, "/customer/bookings", "")

	require.NoError(t, h.ListBookings(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "jwt expired")
}
