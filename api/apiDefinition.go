package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/John2013/phone-book/repository"
	"github.com/John2013/phone-book/services"
	"github.com/John2013/phone-book/store"
)

type PayloadError struct {
	Errors interface{} `json:"message"`
}

// errorResponse maps domain errors onto HTTP statuses:
// validation 400, missing record 404, duplicate phone 409, store down 503.
func errorResponse(c echo.Context, err error) error {
	var validationError *services.ValidationError
	switch {
	case errors.As(err, &validationError):
		payload := &PayloadError{
			Errors: validationError.Fields,
		}
		return c.JSON(http.StatusBadRequest, payload)
	case errors.Is(err, repository.ErrNotFound):
		payload := &PayloadError{
			Errors: "Record not found",
		}
		return c.JSON(http.StatusNotFound, payload)
	case errors.Is(err, repository.ErrConflict):
		payload := &PayloadError{
			Errors: "The phone must be unique!",
		}
		return c.JSON(http.StatusConflict, payload)
	case errors.Is(err, store.ErrUnavailable):
		payload := &PayloadError{
			Errors: "Store unavailable, please retry",
		}
		return c.JSON(http.StatusServiceUnavailable, payload)
	}
	return err
}
