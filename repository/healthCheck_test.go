package repository_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/John2013/phone-book/api"
	"github.com/John2013/phone-book/model"
)

// runs against the live container the suite's TestMain starts
func TestHealthStoreConnected(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, api.Health(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	status := model.HealthStatus{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "ok", status.Status)
	assert.True(t, status.StoreConnected)
	assert.False(t, status.Timestamp.IsZero())
}
