package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medivane/hospital-core/internal/auth"
	"github.com/medivane/hospital-core/internal/paging"
	"github.com/medivane/hospital-core/internal/service"
)

func (h *Handler) CreatePatient(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var in service.PatientInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	patient, err := h.patients.Create(c.Request().Context(), tenant, in)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, patient)
}

func (h *Handler) GetPatient(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	patient, err := h.patients.Get(c.Request().Context(), tenant, id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, patient)
}

func (h *Handler) ListPatients(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	pg := paging.FromQuery(c.QueryParam("page"), c.QueryParam("page_size"))
	limit, offset := pg.LimitOffset()
	patients, total, err := h.patients.List(c.Request().Context(), tenant, c.QueryParam("search"), limit, offset)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, paging.NewResponse(patients, total, pg))
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var in service.PatientInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	patient, err := h.patients.Update(c.Request().Context(), tenant, id, in)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, patient)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.patients.Delete(c.Request().Context(), tenant, id); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
