// Package handler exposes the hospital core as a JSON API. Handlers stay
// thin: bind, resolve the tenant from the token, call a service and map its
// error to a status code.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/medivane/hospital-core/internal/auth"
	"github.com/medivane/hospital-core/internal/service"
	"github.com/medivane/hospital-core/internal/slot"
)

type Handler struct {
	identity      *service.IdentityService
	doctors       *service.DoctorService
	patients      *service.PatientService
	schedules     *service.ScheduleService
	availability  *service.AvailabilityService
	bookings      *service.BookingService
	prescriptions *service.PrescriptionService
}

func New(
	identity *service.IdentityService,
	doctors *service.DoctorService,
	patients *service.PatientService,
	schedules *service.ScheduleService,
	availability *service.AvailabilityService,
	bookings *service.BookingService,
	prescriptions *service.PrescriptionService,
) *Handler {
	return &Handler{
		identity:      identity,
		doctors:       doctors,
		patients:      patients,
		schedules:     schedules,
		availability:  availability,
		bookings:      bookings,
		prescriptions: prescriptions,
	}
}

// RegisterRoutes wires all endpoints. Everything except the auth endpoints
// requires a valid token; admin-only writes are additionally role-guarded.
func (h *Handler) RegisterRoutes(e *echo.Echo, tokens *auth.Manager) {
	e.POST("/auth/register", h.RegisterHospital)
	e.POST("/auth/login", h.LoginAdmin)
	e.POST("/auth/doctor/login", h.LoginDoctor)

	api := e.Group("/api", auth.Middleware(tokens))

	admin := api.Group("", auth.RequireRole(auth.RoleAdmin))
	admin.POST("/doctors", h.CreateDoctor)
	admin.PUT("/doctors/:id", h.UpdateDoctor)
	admin.DELETE("/doctors/:id", h.DeleteDoctor)
	admin.PUT("/doctors/:id/credentials", h.SetDoctorCredentials)
	admin.PUT("/doctors/:id/schedule", h.SetScheduleTemplate)
	admin.DELETE("/doctors/:id/schedule/:weekday", h.DeleteScheduleTemplate)
	admin.POST("/patients", h.CreatePatient)
	admin.PUT("/patients/:id", h.UpdatePatient)
	admin.DELETE("/patients/:id", h.DeletePatient)
	admin.POST("/appointments", h.ScheduleAppointment)
	admin.DELETE("/appointments/:id", h.DeleteAppointment)
	admin.GET("/events", h.ListEvents)

	staff := api.Group("", auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor))
	staff.GET("/doctors", h.ListDoctors)
	staff.GET("/doctors/:id", h.GetDoctor)
	staff.GET("/doctors/:id/schedule", h.ListScheduleTemplates)
	staff.GET("/doctors/:id/availability", h.GetAvailability)
	staff.GET("/patients", h.ListPatients)
	staff.GET("/patients/:id", h.GetPatient)
	staff.GET("/appointments", h.ListAppointments)
	staff.GET("/appointments/:id", h.GetAppointment)
	staff.GET("/appointments/:id/prescription", h.GetPrescription)

	doctor := api.Group("", auth.RequireRole(auth.RoleDoctor))
	doctor.PUT("/appointments/:id/status", h.UpdateAppointmentStatus)
	doctor.PUT("/appointments/:id/prescription", h.SavePrescription)
}

// mapError converts service and storage errors into HTTP errors following the
// taxonomy: validation 400, auth 401, not found 404, conflicts 409, rest 500.
func mapError(err error) error {
	switch {
	case errors.Is(err, slot.ErrInvalidDate),
		errors.Is(err, slot.ErrInvalidClock),
		errors.Is(err, slot.ErrInvalidWindow),
		errors.Is(err, slot.ErrInvalidBreak),
		errors.Is(err, service.ErrUnknownSlot),
		errors.Is(err, service.ErrStatusRequired),
		errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrDiagnosisRequired):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrSlotTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrUsernameTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
