package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	HospitalName string `json:"hospital_name"`
	AdminName    string `json:"admin_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

func (h *Handler) RegisterHospital(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.HospitalName == "" || req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "hospital_name, email and password are required")
	}

	hosp, err := h.identity.RegisterHospital(c.Request().Context(), req.HospitalName, req.AdminName, req.Email, req.Password)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"id":   hosp.ID.String(),
		"name": hosp.Name,
	})
}

func (h *Handler) LoginAdmin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, hosp, err := h.identity.LoginAdmin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token, Role: "admin", Name: hosp.AdminName})
}

func (h *Handler) LoginDoctor(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, doctor, err := h.identity.LoginDoctor(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token, Role: "doctor", Name: doctor.Name})
}
