package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
	"github.com/richmill123/rice_mill_backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidations()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations. Every route is scoped under an explicit
// clientID path parameter; there is no ambient session.
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1/clients/:clientID")

	registerOrderRoutes(v1, services.Order)
	registerWageRoutes(v1, services.Wage)
	registerSaleRoutes(v1, services.Sale)
	registerExpenseRoutes(v1, services.Expense)
	registerIncomeRoutes(v1, services.Income)
	registerStockRoutes(v1, services.Stock)
	registerEmployeeRoutes(v1, services.Employee)
	registerDashboardRoutes(v1, services.Dashboard)
	registerReportRoutes(v1, services.Report)
}
