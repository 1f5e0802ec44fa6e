package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samparc/medical-api/internal/metrics"
	"github.com/samparc/medical-api/internal/middleware"
	"github.com/samparc/medical-api/internal/utils"
)

// RegisterRoutes mounts the public site API and the role-protected /api tree.
// The limiter guards the unauthenticated form endpoints.
func (h *Handler) RegisterRoutes(r *gin.Engine, limiter *middleware.RateLimiter) {
	RegisterValidators()

	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	authRoutes := r.Group("/auth")
	authRoutes.Use(limiter.Middleware())
	{
		authRoutes.POST("/admin/login", h.AdminLogin)
		authRoutes.POST("/customers/register", h.RegisterCustomer)
		authRoutes.POST("/customers/login", h.CustomerLogin)
		authRoutes.POST("/sellers/register", h.RegisterSeller)
		authRoutes.POST("/sellers/login", h.SellerLogin)
	}

	// Public site
	r.GET("/medicines", h.ListMedicines)
	r.GET("/medicines/available", h.GetAvailableMedicines)
	r.GET("/medicines/search", h.SearchMedicines)
	r.GET("/medicines/category/:category", h.GetMedicinesByCategory)
	r.GET("/medicines/:id", h.GetMedicine)
	r.GET("/content", h.GetAllContent)
	r.GET("/content/:section", h.GetContent)
	r.POST("/appointments", limiter.Middleware(), h.SubmitAppointment)
	r.POST("/chat", limiter.Middleware(), h.HandleChat)

	apiRoutes := r.Group("/api")
	apiRoutes.Use(middleware.AuthMiddleware()) // Protect all /api routes

	adminRoutes := apiRoutes.Group("")
	adminRoutes.Use(middleware.RequireRole(utils.RoleAdmin))
	{
		adminRoutes.GET("/admin/overview", h.GetOverview)

		adminRoutes.POST("/medicines", h.AddMedicine)
		adminRoutes.PUT("/medicines/:id", h.EditMedicine)
		adminRoutes.DELETE("/medicines/:id", h.DeleteMedicine)

		adminRoutes.GET("/seller-medicines", h.ListAllSellerMedicines)
		adminRoutes.DELETE("/seller-medicines/:id", h.AdminDeleteSellerMedicine)

		adminRoutes.GET("/sellers", h.ListSellers)
		adminRoutes.GET("/sellers/:id", h.GetSeller)
		adminRoutes.PATCH("/sellers/:id/status", h.UpdateSellerStatus)
		adminRoutes.DELETE("/sellers/:id", h.DeleteSeller)

		adminRoutes.GET("/customers", h.ListCustomers)
		adminRoutes.GET("/customers/:id", h.GetCustomer)
		adminRoutes.DELETE("/customers/:id", h.DeleteCustomer)

		adminRoutes.GET("/appointments", h.ListAppointments)
		adminRoutes.GET("/appointments/report.pdf", h.AppointmentsReport)
		adminRoutes.GET("/appointments/:id", h.GetAppointment)
		adminRoutes.PATCH("/appointments/:id/status", h.UpdateAppointmentStatus)
		adminRoutes.DELETE("/appointments/:id", h.DeleteAppointment)

		adminRoutes.PUT("/content/:section", h.UpdateContent)
	}

	sellerRoutes := apiRoutes.Group("/seller")
	sellerRoutes.Use(middleware.RequireRole(utils.RoleSeller))
	{
		sellerRoutes.GET("/me", h.GetCurrentSeller)
		sellerRoutes.GET("/medicines", h.ListOwnSellerMedicines)
		sellerRoutes.POST("/medicines", h.AddSellerMedicine)
		sellerRoutes.PUT("/medicines/:id", h.EditSellerMedicine)
		sellerRoutes.DELETE("/medicines/:id", h.DeleteSellerMedicine)
	}

	customerRoutes := apiRoutes.Group("/customer")
	customerRoutes.Use(middleware.RequireRole(utils.RoleCustomer))
	{
		customerRoutes.GET("/me", h.GetCurrentCustomer)
	}
}

// Health reports whether the store answers a ping.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
