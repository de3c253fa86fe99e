package routes

import (
	"clinic-admin/internal/config"
	"clinic-admin/internal/handlers"
	"clinic-admin/internal/middleware"
	"clinic-admin/internal/repository"
	"clinic-admin/internal/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Setup wires the session store, templates, repositories, handlers, and the
// full route table onto the router.
func Setup(router *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	store := cookie.NewStore([]byte(cfg.SecretKey))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   7 * 24 * 60 * 60,
		Secure:   cfg.IsProduction(),
	})
	router.Use(sessions.Sessions("clinic_session", store))
	router.SetHTMLTemplate(web.Templates())

	admins := repository.NewAdminRepository(db)
	patients := repository.NewPatientRepository(db)
	doctors := repository.NewDoctorRepository(db)
	appointments := repository.NewAppointmentRepository(db)
	stats := repository.NewStatsRepository(db)

	authHandler := handlers.NewAuthHandler(admins, log)
	dashboardHandler := handlers.NewDashboardHandler(stats, log)
	patientHandler := handlers.NewPatientHandler(patients, log)
	doctorHandler := handlers.NewDoctorHandler(doctors, log)
	appointmentHandler := handlers.NewAppointmentHandler(appointments, patients, doctors, log)

	router.GET("/", authHandler.Root)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)

	admin := router.Group("/admin")
	admin.Use(middleware.RequireAdmin(admins))
	{
		admin.GET("", dashboardHandler.Show)

		admin.GET("/patients", patientHandler.List)
		admin.GET("/patients/add", patientHandler.New)
		admin.POST("/patients/add", patientHandler.Create)
		admin.GET("/patients/edit/:id", patientHandler.Edit)
		admin.POST("/patients/edit/:id", patientHandler.Update)
		admin.POST("/patients/delete/:id", patientHandler.Delete)

		admin.GET("/doctors", doctorHandler.List)
		admin.GET("/doctors/add", doctorHandler.New)
		admin.POST("/doctors/add", doctorHandler.Create)
		admin.GET("/doctors/edit/:id", doctorHandler.Edit)
		admin.POST("/doctors/edit/:id", doctorHandler.Update)
		admin.POST("/doctors/delete/:id", doctorHandler.Delete)

		admin.GET("/appointments", appointmentHandler.List)
		admin.GET("/appointments/add", appointmentHandler.New)
		admin.POST("/appointments/add", appointmentHandler.Create)
		admin.GET("/appointments/edit/:id", appointmentHandler.Edit)
		admin.POST("/appointments/edit/:id", appointmentHandler.Update)
		admin.POST("/appointments/delete/:id", appointmentHandler.Delete)
	}

	// Logout also requires a session; an anonymous caller is just redirected
	// to the login page by the same gate.
	router.GET("/logout", middleware.RequireAdmin(admins), authHandler.Logout)
}
