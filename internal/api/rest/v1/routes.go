package v1

import (
	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/vehicles"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	rideCommandService rides.CommandService,
	rideQueryService rides.QueryService,
	vehicleCommandService vehicles.CommandService,
	vehicleQueryService vehicles.QueryService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Rides Routes
	rideHandler := NewRideHandler(rideCommandService, rideQueryService)
	v1.GET("/rides/:id", rideHandler.GetByID)
	v1.POST("/rides/request", rideHandler.Request)
	v1.PUT("/rides/:id/schedule", rideHandler.Schedule)
	v1.PUT("/rides/:id/pickup", rideHandler.ConfirmPickup)
	v1.PUT("/rides/:id/dropoff", rideHandler.EndRide)
	v1.DELETE("/rides/:id", rideHandler.Cancel)

	// Vehicles Routes
	vehicleHandler := NewVehicleHandler(vehicleCommandService, vehicleQueryService)
	v1.GET("/vehicles/mine", vehicleHandler.ListMine)
	v1.GET("/vehicles/available", vehicleHandler.ListAvailable)
	v1.GET("/vehicles/:vin", vehicleHandler.GetByVin)
	v1.POST("/vehicles/mine", vehicleHandler.Add)
	v1.PUT("/vehicles/mine/:vin/availability", vehicleHandler.MakeAvailable)
	v1.DELETE("/vehicles/mine/:vin/availability", vehicleHandler.RequestReturn)
	v1.DELETE("/vehicles/mine/:vin", vehicleHandler.Remove)
	v1.PUT("/vehicles/available/:vin/occupancy", vehicleHandler.MarkOccupied)
	v1.DELETE("/vehicles/available/:vin/occupancy", vehicleHandler.MarkUnoccupied)
	v1.DELETE("/vehicles/available/:vin", vehicleHandler.ConfirmReturn)
}
