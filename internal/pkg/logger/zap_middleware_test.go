package logger

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &ZapLogger{Logger: zap.New(core)}, logs
}

func TestZapEchoMiddleware_TagsSession(t *testing.T) {
	zl, logs := observedLogger()
	e := echo.New()

	handler := ZapEchoMiddleware(zl)(func(c echo.Context) error {
		session := &models.Session{ID: "s1", Role: models.RoleDelivery, SubjectID: "agent-1"}
		c.SetRequest(c.Request().WithContext(requestcontext.WithSession(c.Request().Context(), session)))
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/delivery/bookings?status=SCHEDULED", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Request served", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "/delivery/bookings?status=SCHEDULED", fields["path"])
	assert.Equal(t, "delivery", fields["role"])
	assert.Equal(t, "agent-1", fields["subject_id"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestZapEchoMiddleware_ErrorStatus(t *testing.T) {
	zl, logs := observedLogger()
	e := echo.New()

	handler := ZapEchoMiddleware(zl)(func(c echo.Context) error {
		return errors.New("boom")
	})

	req := httptest.NewRequest(http.MethodPost, "/public/doctor", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	_, tagged := entries[0].ContextMap()["subject_id"]
	assert.False(t, tagged)
}
