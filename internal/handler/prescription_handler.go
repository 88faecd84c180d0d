package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medivane/hospital-core/internal/auth"
	"github.com/medivane/hospital-core/internal/service"
)

func (h *Handler) SavePrescription(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	actor, err := auth.ActorID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req service.SavePrescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.AppointmentID = appointmentID

	p, err := h.prescriptions.Save(c.Request().Context(), tenant, &actor, req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) GetPrescription(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := h.prescriptions.Get(c.Request().Context(), tenant, appointmentID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, p)
}
