package routes

import (
	"food-rescue-api/handlers"
	"food-rescue-api/middleware"
	"food-rescue-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// ── Auth ───────────────────────────────────────────────────────
	auth := api.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.GET("/me", middleware.AuthRequired(), handlers.GetMe)
		auth.PUT("/me", middleware.AuthRequired(), handlers.UpdateMe)
	}

	// ── Food items ─────────────────────────────────────────────────
	foods := api.Group("/foods")
	{
		foods.GET("", handlers.ListFoods)
		foods.GET("/featured", handlers.FeaturedFoods)
		foods.GET("/:id", handlers.GetFood)

		restaurantOnly := foods.Group("", middleware.AuthRequired(),
			middleware.RoleRequired(models.RoleRestaurant, models.RoleAdmin))
		restaurantOnly.POST("", handlers.CreateFood)
		restaurantOnly.PUT("/:id", handlers.UpdateFood)
		restaurantOnly.DELETE("/:id", handlers.DeleteFood)
	}

	// ── Restaurants ────────────────────────────────────────────────
	restaurants := api.Group("/restaurants")
	{
		restaurants.GET("", handlers.ListRestaurants)
		restaurants.GET("/featured", handlers.FeaturedRestaurants)
		restaurants.GET("/:id", handlers.GetRestaurant)
		restaurants.GET("/:id/foods", handlers.GetRestaurantFoods)

		restaurants.POST("", middleware.AuthRequired(),
			middleware.RoleRequired(models.RoleAdmin), handlers.CreateRestaurant)
		restaurants.PUT("/:id", middleware.AuthRequired(),
			middleware.RoleRequired(models.RoleRestaurant, models.RoleAdmin), handlers.UpdateRestaurant)
	}

	// ── NGOs ───────────────────────────────────────────────────────
	ngos := api.Group("/ngos")
	{
		ngos.GET("", handlers.ListNGOs)
		ngos.GET("/:id", handlers.GetNGO)

		ngoOnly := ngos.Group("/profile", middleware.AuthRequired(),
			middleware.RoleRequired(models.RoleNGO))
		ngoOnly.GET("/me", handlers.GetMyNGOProfile)
		ngoOnly.PUT("/me", handlers.UpdateMyNGOProfile)

		ngos.PUT("/:id/verify", middleware.AuthRequired(),
			middleware.RoleRequired(models.RoleAdmin), handlers.VerifyNGO)
	}

	// ── Orders ─────────────────────────────────────────────────────
	orders := api.Group("/orders", middleware.AuthRequired())
	{
		orders.POST("", middleware.RoleRequired(models.RoleNGO), handlers.CreateOrder)
		orders.GET("/myorders", handlers.GetMyOrders)
		orders.GET("/:id", handlers.GetOrder)
		orders.GET("", middleware.RoleRequired(models.RoleAdmin), handlers.ListOrders)
		orders.PUT("/:id/status", middleware.RoleRequired(models.RoleAdmin), handlers.UpdateOrderStatus)
	}

	// ── Notifications ──────────────────────────────────────────────
	notifications := api.Group("/notifications", middleware.AuthRequired())
	{
		notifications.GET("", handlers.ListNotifications)
		notifications.POST("", middleware.RoleRequired(models.RoleAdmin), handlers.CreateNotification)
		notifications.PUT("/:id/read", handlers.MarkNotificationRead)
		notifications.PUT("/read-all", handlers.MarkAllNotificationsRead)
	}

	// ── Contact messages ───────────────────────────────────────────
	contact := api.Group("/contact")
	{
		contact.POST("", handlers.CreateMessage)

		adminOnly := contact.Group("", middleware.AuthRequired(),
			middleware.RoleRequired(models.RoleAdmin))
		adminOnly.GET("", handlers.ListMessages)
		adminOnly.GET("/:id", handlers.GetMessage)
		adminOnly.DELETE("/:id", handlers.DeleteMessage)
	}

	// ── FAQs ───────────────────────────────────────────────────────
	faqs := api.Group("/faqs")
	{
		faqs.GET("", handlers.ListFAQs)

		adminOnly := faqs.Group("", middleware.AuthRequired(),
			middleware.RoleRequired(models.RoleAdmin))
		adminOnly.POST("", handlers.CreateFAQ)
		adminOnly.PUT("/:id", handlers.UpdateFAQ)
		adminOnly.DELETE("/:id", handlers.DeleteFAQ)
	}
}
