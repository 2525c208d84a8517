package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicalkz/config"
	"medicalkz/database"
	appointmentRepoPkg "medicalkz/database/repository/appointment"
	userRepoPkg "medicalkz/database/repository/user"
	"medicalkz/handlers"
	"medicalkz/middleware"
	"medicalkz/routes"
	"medicalkz/services/appointment"
	"medicalkz/services/scheduling"
	"medicalkz/services/user"
	"medicalkz/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	conflictDetector := &scheduling.ConflictDetector{
		Appointments: apptRepo,
	}
	schedulingEngine := scheduling.NewEngine(userRepo, conflictDetector)

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:     apptRepo,
		Users:    userRepo,
		Conflict: conflictDetector,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		Auth:         handlers.NewAuthHandler(userService),
		Doctors:      handlers.NewDoctorHandler(userService),
		Appointments: handlers.NewAppointmentHandler(appointmentService),
		Availability: handlers.NewAvailabilityHandler(schedulingEngine),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
