package routes

import (
	"github.com/gin-gonic/gin"

	"examgen_client/config"
	"examgen_client/gateway"
	"examgen_client/handlers"
	"examgen_client/middleware"
	"examgen_client/session"
	"examgen_client/templates"
)

// SetupRoutes configures all the routes for the application.
func SetupRoutes(r *gin.Engine, gw *gateway.Client, store *session.Store, cfg *config.Config) {
	r.SetHTMLTemplate(templates.Load())
	r.Use(middleware.LoadSession(store, cfg.SessionCookie))

	rootHandler := handlers.NewRootHandler()
	authHandler := handlers.NewAuthHandler(gw, store, cfg.SessionCookie, int(cfg.SessionTTL.Seconds()))
	landingHandler := handlers.NewLandingHandler(gw)
	generatorHandler := handlers.NewGeneratorHandler(gw)
	historyHandler := handlers.NewHistoryHandler(gw)
	statisticsHandler := handlers.NewStatisticsHandler(gw)
	reviewsHandler := handlers.NewReviewsHandler(gw)
	paymentHandler := handlers.NewPaymentHandler(gw)

	// Public routes
	r.GET("/", rootHandler.Home)
	r.GET("/landing", landingHandler.Show)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)

	// Stripe redirect targets; one-shot, reachable signed in or out
	r.GET("/payment/success", paymentHandler.Success)
	r.GET("/payment/cancel", paymentHandler.Cancel)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.RequireAuth())
	{
		// Generator routes
		protected.GET("/generator", generatorHandler.Show)
		protected.POST("/generator", generatorHandler.Generate)

		// History routes
		protected.GET("/history", historyHandler.Show)
		protected.GET("/history/tasks/:id/delete", historyHandler.ConfirmDelete)
		protected.POST("/history/tasks/:id/delete", historyHandler.Delete)
		protected.POST("/history/bulk-delete", historyHandler.ConfirmBulkDelete)
		protected.POST("/history/bulk-delete/confirmed", historyHandler.BulkDelete)
		protected.GET("/history/tasks/:id/pdf", historyHandler.ExportPDF)

		// Statistics route
		protected.GET("/statistics", statisticsHandler.Show)

		// Review routes
		protected.GET("/reviews", reviewsHandler.Show)
		protected.POST("/reviews", reviewsHandler.Save)
		protected.GET("/reviews/delete", reviewsHandler.ConfirmDeleteMine)
		protected.POST("/reviews/delete", reviewsHandler.DeleteMine)
		protected.GET("/reviews/:id/delete", reviewsHandler.ConfirmDelete)
		protected.POST("/reviews/:id/delete", reviewsHandler.Delete)

		// Premium routes
		protected.GET("/premium", paymentHandler.ShowPremium)
		protected.POST("/premium/checkout", paymentHandler.Checkout)

		// Logout route
		protected.POST("/logout", authHandler.Logout)
	}
}
