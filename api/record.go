package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/John2013/phone-book/model"
	"github.com/John2013/phone-book/services"
)

type RecordHandler struct {
	svc *services.RecordService
}

func NewRecordHandler(svc *services.RecordService) *RecordHandler {
	return &RecordHandler{svc: svc}
}

func (h *RecordHandler) CreateRecord(c echo.Context) error {
	request := model.CreateRecordRequest{}
	if err := c.Bind(&request); err != nil {
		payload := &PayloadError{
			Errors: "Invalid request body",
		}
		return c.JSON(http.StatusBadRequest, payload)
	}

	record, err := h.svc.Create(c.Request().Context(), request)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, record)
}

func (h *RecordHandler) DetailRecord(c echo.Context) error {
	phone := c.Param("phone")

	record, err := h.svc.Get(c.Request().Context(), phone)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

func (h *RecordHandler) UpdateRecord(c echo.Context) error {
	phone := c.Param("phone")

	request := model.UpdateAddressRequest{}
	if err := c.Bind(&request); err != nil {
		payload := &PayloadError{
			Errors: "Invalid request body",
		}
		return c.JSON(http.StatusBadRequest, payload)
	}

	record, err := h.svc.Update(c.Request().Context(), phone, request)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

func (h *RecordHandler) DeleteRecord(c echo.Context) error {
	phone := c.Param("phone")

	if err := h.svc.Delete(c.Request().Context(), phone); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RecordHandler) ListRecord(c echo.Context) error {
	cursor := c.QueryParam("cursor")

	limit := 0
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			payload := &PayloadError{
				Errors: url.Values{"limit": []string{"The limit must be a number!"}},
			}
			return c.JSON(http.StatusBadRequest, payload)
		}
		limit = parsed
	}

	page, err := h.svc.List(c.Request().Context(), cursor, limit)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, page)
}
