package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers    = "/customers"
	PathVehicles     = "/vehicles"
	PathTechnicians  = "/technicians"
	PathParts        = "/parts"
	PathWorkServices = "/work-services"
)

// addCatalogRoutes mounts the reference resources behind the order composer:
// customers, their vehicles, technicians, the parts inventory and the labor
// catalog. The /select endpoints return dropdown-shaped projections.
func addCatalogRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	vehicleHandler *handlers.VehicleHandler,
	technicianHandler *handlers.TechnicianHandler,
	partHandler *handlers.PartHandler,
	workServiceHandler *handlers.WorkServiceHandler,
) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.Create)
		customers.GET("", customerHandler.List)
		customers.GET("/select", customerHandler.ListOptions)
		customers.GET("/:id", customerHandler.GetByID)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
	}

	vehicles := rg.Group(PathVehicles)
	{
		// GET accepts ?customerId= to narrow both listings.
		vehicles.POST("", vehicleHandler.Create)
		vehicles.GET("", vehicleHandler.List)
		vehicles.GET("/select", vehicleHandler.ListOptions)
		vehicles.GET("/:id", vehicleHandler.GetByID)
		vehicles.PUT("/:id", vehicleHandler.Update)
		vehicles.DELETE("/:id", vehicleHandler.Delete)
	}

	technicians := rg.Group(PathTechnicians)
	{
		technicians.POST("", technicianHandler.Create)
		technicians.GET("", technicianHandler.List)
		technicians.GET("/:id", technicianHandler.GetByID)
		technicians.PUT("/:id", technicianHandler.Update)
		technicians.DELETE("/:id", technicianHandler.Delete)
	}

	parts := rg.Group(PathParts)
	{
		parts.POST("", partHandler.Create)
		parts.GET("", partHandler.List)
		parts.GET("/:id", partHandler.GetByID)
		parts.PUT("/:id", partHandler.Update)
		parts.DELETE("/:id", partHandler.Delete)
	}

	workServices := rg.Group(PathWorkServices)
	{
		workServices.POST("", workServiceHandler.Create)
		workServices.GET("", workServiceHandler.List)
		workServices.GET("/:id", workServiceHandler.GetByID)
		workServices.PUT("/:id", workServiceHandler.Update)
		workServices.DELETE("/:id", workServiceHandler.Delete)
	}
}
