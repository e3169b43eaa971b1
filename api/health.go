package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/John2013/phone-book/model"
	"github.com/John2013/phone-book/store"
)

// Health reports service status including store connectivity.
func Health(c echo.Context) error {
	status := model.HealthStatus{
		Status:         "ok",
		StoreConnected: true,
		Timestamp:      time.Now().UTC(),
	}
	if err := store.Ping(c.Request().Context()); err != nil {
		status.Status = "unavailable"
		status.StoreConnected = false
		return c.JSON(http.StatusServiceUnavailable, status)
	}
	return c.JSON(http.StatusOK, status)
}
