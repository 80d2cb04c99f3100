package routes

import (
	"github.com/Alexeya-png/fitness-tracker/config"
	"github.com/Alexeya-png/fitness-tracker/controllers"
	"github.com/Alexeya-png/fitness-tracker/middlewares"
	"github.com/Alexeya-png/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	store := services.NewGormStore(config.DB)
	streakSvc := services.NewStreakService(store, store, config.Logger)
	statsSvc := services.NewStatsService(config.DB)
	analysisSvc := services.NewAnalysisService(config.Logger)

	hub := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, hub)

	entryCtl := controllers.NewEntryController(streakSvc, statsSvc)
	analysisCtl := controllers.NewAnalysisController(analysisSvc)
	statsCtl := controllers.NewStatsController(statsSvc)
	devCtl := controllers.NewDevController(streakSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	nutrition := r.Group("/nutrition")
	nutrition.Use(middlewares.AuthMiddleware())
	{
		nutrition.POST("/calculate", controllers.Calculate)
		nutrition.GET("/target", controllers.GetTarget)
	}

	entries := r.Group("/entries")
	entries.Use(middlewares.AuthMiddleware())
	{
		entries.POST("", entryCtl.Create)
		entries.GET("", entryCtl.List)
		entries.GET("/day", entryCtl.DayStatus)
		entries.DELETE("/:id", entryCtl.Delete)
	}

	analysis := r.Group("/analysis")
	analysis.Use(middlewares.AuthMiddleware())
	{
		analysis.POST("", analysisCtl.Analyze)
		analysis.GET("", analysisCtl.List)
	}

	stats := r.Group("/stats")
	stats.Use(middlewares.AuthMiddleware())
	{
		stats.GET("/summary", statsCtl.Summary)
	}

	alerts := r.Group("/alerts")
	alerts.Use(middlewares.AuthMiddleware())
	{
		alerts.GET("", controllers.ListAlerts)
	}

	dev := r.Group("/dev")
	dev.Use(middlewares.AuthMiddleware())
	{
		dev.POST("/advance-day", devCtl.AdvanceDay)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/events", rtCtl.EventsWS)
	}

	return r
}
