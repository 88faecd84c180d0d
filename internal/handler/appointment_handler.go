package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medivane/hospital-core/internal/auth"
	"github.com/medivane/hospital-core/internal/model"
	"github.com/medivane/hospital-core/internal/paging"
	"github.com/medivane/hospital-core/internal/repository"
	"github.com/medivane/hospital-core/internal/service"
)

func (h *Handler) ScheduleAppointment(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req service.ScheduleAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.PatientID == uuid.Nil || req.DoctorID == uuid.Nil || req.Date == "" || req.TimeSlot == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id, doctor_id, date and time_slot are required")
	}

	appt, err := h.bookings.Schedule(c.Request().Context(), tenant, req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, appt)
}

func (h *Handler) GetAppointment(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	appt, err := h.bookings.Get(c.Request().Context(), tenant, id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, appt)
}

// ListAppointments serves both dashboards: admins see the whole hospital,
// doctors only their own agenda.
func (h *Handler) ListAppointments(c echo.Context) error {
	claims := auth.GetClaims(c)
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	f := repository.AppointmentFilter{
		Date:          c.QueryParam("date"),
		Status:        c.QueryParam("status"),
		PatientSearch: c.QueryParam("search"),
	}
	if doctorParam := c.QueryParam("doctor_id"); doctorParam != "" {
		doctorID, err := uuid.Parse(doctorParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor_id")
		}
		f.DoctorID = doctorID
	}
	if claims.Role == auth.RoleDoctor {
		actor, err := auth.ActorID(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		f.DoctorID = actor
	}

	pg := paging.FromQuery(c.QueryParam("page"), c.QueryParam("page_size"))
	limit, offset := pg.LimitOffset()
	appts, total, err := h.bookings.List(c.Request().Context(), tenant, f, limit, offset)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, paging.NewResponse(appts, total, pg))
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateAppointmentStatus(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	actor, err := auth.ActorID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Doctors can only touch their own appointments.
	if err := h.bookings.UpdateStatus(c.Request().Context(), tenant, &actor, id, model.AppointmentStatus(req.Status)); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListEvents serves the hospital's audit trail.
func (h *Handler) ListEvents(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	pg := paging.FromQuery(c.QueryParam("page"), c.QueryParam("page_size"))
	limit, offset := pg.LimitOffset()
	events, total, err := h.bookings.Events(c.Request().Context(), tenant, limit, offset)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, paging.NewResponse(events, total, pg))
}

func (h *Handler) DeleteAppointment(c echo.Context) error {
	tenant, err := auth.TenantID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.bookings.Delete(c.Request().Context(), tenant, id); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
