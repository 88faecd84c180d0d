package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medivane/hospital-core/internal/auth"
	"github.com/medivane/hospital-core/internal/paging"
	"github.com/medivane/hospital-core/internal/service"
)

func (h *Handler) CreateDoctor(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var in service.DoctorInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	doctor, err := h.doctors.Create(c.Request().Context(), tenant, in)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, doctor)
}

func (h *Handler) GetDoctor(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	doctor, err := h.doctors.Get(c.Request().Context(), tenant, id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, doctor)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	pg := paging.FromQuery(c.QueryParam("page"), c.QueryParam("page_size"))
	limit, offset := pg.LimitOffset()
	doctors, total, err := h.doctors.List(c.Request().Context(), tenant, c.QueryParam("search"), limit, offset)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, paging.NewResponse(doctors, total, pg))
}

func (h *Handler) UpdateDoctor(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var in service.DoctorInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	doctor, err := h.doctors.Update(c.Request().Context(), tenant, id, in)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, doctor)
}

func (h *Handler) DeleteDoctor(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.doctors.Delete(c.Request().Context(), tenant, id); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) SetDoctorCredentials(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.identity.SetDoctorCredentials(c.Request().Context(), tenant, id, req.Username, req.Password); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
