package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/medivane/hospital-core/internal/auth"
	"github.com/medivane/hospital-core/internal/config"
	"github.com/medivane/hospital-core/internal/db"
	"github.com/medivane/hospital-core/internal/handler"
	"github.com/medivane/hospital-core/internal/model"
	"github.com/medivane/hospital-core/internal/repository"
	"github.com/medivane/hospital-core/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	gormDB, err := db.NewGormDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init db")
	}

	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("auto migrate")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("sql DB")
	}
	defer sqlDB.Close()

	tokens, err := auth.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("init token manager")
	}

	// Repositories (GORM implementations).
	hospitalRepo := repository.NewGormHospitalRepository(gormDB)
	doctorRepo := repository.NewGormDoctorRepository(gormDB)
	patientRepo := repository.NewGormPatientRepository(gormDB)
	templateRepo := repository.NewGormScheduleTemplateRepository(gormDB)
	appointmentRepo := repository.NewGormAppointmentRepository(gormDB)
	prescriptionRepo := repository.NewGormPrescriptionRepository(gormDB)
	eventRepo := repository.NewGormEventRepository(gormDB)

	// Services.
	identitySvc := service.NewIdentityService(hospitalRepo, doctorRepo, tokens)
	doctorSvc := service.NewDoctorService(doctorRepo)
	patientSvc := service.NewPatientService(patientRepo)
	scheduleSvc := service.NewScheduleService(templateRepo, doctorRepo)
	availabilitySvc := service.NewAvailabilityService(templateRepo, appointmentRepo, cfg.SlotInterval)
	bookingSvc := service.NewBookingService(appointmentRepo, patientRepo, availabilitySvc, eventRepo)
	prescriptionSvc := service.NewPrescriptionService(prescriptionRepo, appointmentRepo, eventRepo)

	h := handler.New(identitySvc, doctorSvc, patientSvc, scheduleSvc, availabilitySvc, bookingSvc, prescriptionSvc)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))

	h.RegisterRoutes(e, tokens)

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("hospital core listening")
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http serve")
		}
	}()

	// Graceful shutdown on signal.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down http server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
