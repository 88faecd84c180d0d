package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medivane/hospital-core/internal/auth"
	"github.com/medivane/hospital-core/internal/service"
)

func (h *Handler) SetScheduleTemplate(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req service.SetTemplateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.DoctorID = doctorID

	tpl, err := h.schedules.SetTemplate(c.Request().Context(), tenant, req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, tpl)
}

func (h *Handler) ListScheduleTemplates(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	tpls, err := h.schedules.ListTemplates(c.Request().Context(), tenant, doctorID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, tpls)
}

func (h *Handler) DeleteScheduleTemplate(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.schedules.DeleteTemplate(c.Request().Context(), tenant, doctorID, c.Param("weekday")); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetAvailability answers "which slots does this doctor have on this date, and
// which are taken". A weekday without a template is a normal response with
// available=false, not an error; a malformed date is a 400.
func (h *Handler) GetAvailability(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date query parameter is required")
	}

	day, err := h.availability.Resolve(c.Request().Context(), tenant, doctorID, date)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, day)
}
