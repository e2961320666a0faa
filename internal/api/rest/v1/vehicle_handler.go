package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/dclimber/autonomo/internal/domain/vehicles"

	"github.com/gin-gonic/gin"
)

// VehicleHandler defines the interface for handling vehicle-related operations
type VehicleHandler interface {
	GetByVin(ctx *gin.Context)
	ListMine(ctx *gin.Context)
	ListAvailable(ctx *gin.Context)
	Add(ctx *gin.Context)
	MakeAvailable(ctx *gin.Context)
	RequestReturn(ctx *gin.Context)
	Remove(ctx *gin.Context)
	MarkOccupied(ctx *gin.Context)
	MarkUnoccupied(ctx *gin.Context)
	ConfirmReturn(ctx *gin.Context)
}

// vehicleHandler struct holds the services
type vehicleHandler struct {
	commandService vehicles.CommandService
	queryService   vehicles.QueryService
}

// NewVehicleHandler creates a new VehicleHandler
func NewVehicleHandler(commandService vehicles.CommandService, queryService vehicles.QueryService) VehicleHandler {
	return &vehicleHandler{
		commandService: commandService,
		queryService:   queryService,
	}
}

// GetByVin handles the GET request to fetch a vehicle's current state
// @Summary Get a vehicle by VIN
// @Description Fetch the current read-model state of a vehicle.
// @Tags Vehicle
// @Produce json
// @Param vin path string true "Vehicle Identification Number"
// @Success 200 {object} VehicleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /vehicles/{vin} [get]
func (handler *vehicleHandler) GetByVin(ctx *gin.Context) {
	vin, err := value.NewVin(ctx.Param("vin"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	vehicle, err := handler.queryService.GetByVin(ctx, vin)
	if err != nil {
		if errors.Is(err, vehicles.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("no vehicle with VIN: %s", vin)})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, NewVehicleResponse(vehicle))
}

// ListMine handles the GET request to list an owner's vehicles
// @Summary List my vehicles
// @Description Fetch all vehicles contributed by an owner.
// @Tags Vehicle
// @Produce json
// @Param owner query string true "Owner User ID"
// @Success 200 {array} VehicleResponse
// @Failure 400 {object} ErrorResponse
// @Router /vehicles/mine [get]
func (handler *vehicleHandler) ListMine(ctx *gin.Context) {
	// TODO(dclimber): extract owner id from JWT once auth lands
	owner, err := value.ParseUserID(ctx.Query("owner"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	owned, err := handler.queryService.ListByOwner(ctx, owner)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	listResponse := []VehicleResponse{}
	for _, vehicle := range owned {
		listResponse = append(listResponse, NewVehicleResponse(vehicle))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// ListAvailable handles the GET request to list vehicles available for rides
// @Summary List available vehicles
// @Description Fetch all vehicles currently available for rides.
// @Tags Vehicle
// @Produce json
// @Success 200 {array} VehicleResponse
// @Router /vehicles/available [get]
func (handler *vehicleHandler) ListAvailable(ctx *gin.Context) {
	available, err := handler.queryService.ListAvailable(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	listResponse := []VehicleResponse{}
	for _, vehicle := range available {
		listResponse = append(listResponse, NewVehicleResponse(vehicle))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// Add handles the POST request to contribute a vehicle to the fleet
// @Summary Add a vehicle
// @Description Contribute a vehicle to the ride-sharing fleet.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param requestBody body AddVehicleRequest true "Vehicle Data"
// @Success 202 {object} CommandAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Router /vehicles/mine [post]
func (handler *vehicleHandler) Add(ctx *gin.Context) {
	var request AddVehicleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid vehicle data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	vin, err := value.NewVin(request.Vin)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	owner, err := value.ParseUserID(request.Owner)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	handler.execute(ctx, vehicles.AddVehicle{Vin: vin, Owner: owner})
}

// MakeAvailable handles the PUT request to offer a vehicle for rides
// @Summary Make a vehicle available
// @Description Offer an inventory vehicle for rides.
// @Tags Vehicle
// @Produce json
// @Param vin path string true "Vehicle Identification Number"
// @Success 202 {object} CommandAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Router /vehicles/mine/{vin}/availability [put]
func (handler *vehicleHandler) MakeAvailable(ctx *gin.Context) {
	vin, err := value.NewVin(ctx.Param("vin"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	handler.execute(ctx, vehicles.MakeVehicleAvailable{Vin: vin})
}

// RequestReturn handles the DELETE request to ask for a vehicle back
// @Summary Request a vehicle return
// @Description Ask for an available or occupied vehicle to return to its owner.
// @Tags Vehicle
// @Produce json
// @Param vin path string true "Vehicle Identification Number"
// @Success 202 {object} CommandAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Router /vehicles/mine/{vin}/availability [delete]
func (handler *vehicleHandler) RequestReturn(ctx *gin.Context) {
	vin, err := value.NewVin(ctx.Param("vin"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	handler.execute(ctx, vehicles.RequestVehicleReturn{Vin: vin})
}

// Remove handles the DELETE request to withdraw a vehicle from the fleet
// @Summary Remove a vehicle
// @Description Withdraw an inventory vehicle from the fleet.
// @Tags Vehicle
// @Produce json
// @Param vin path string true "Vehicle Identification Number"
// @Param owner query string true "Owner User ID"
// @Success 202 {object} CommandAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Router /vehicles/mine/{vin} [delete]
func (handler *vehicleHandler) Remove(ctx *gin.Context) {
	vin, err := value.NewVin(ctx.Param("vin"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	// TODO(dclimber): extract owner id from JWT once auth lands
	owner, err := value.ParseUserID(ctx.Query("owner"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	handler.execute(ctx, vehicles.RemoveVehicle{Vin: vin, Owner: owner})
}

// MarkOccupied handles the PUT request to mark a vehicle occupied
// @Summary Mark a vehicle occupied
// @Description Record that a rider occupies an available vehicle.
// @Tags Vehicle
// @Produce json
// @Param vin path string true "Vehicle Identification Number"
// @Success 202 {object} CommandAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Router /vehicles/available/{vin}/occupancy [put]
func (handler *vehicleHandler) MarkOccupied(ctx *gin.Context) {
	vin, err := value.NewVin(ctx.Param("vin"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	handler.execute(ctx, vehicles.MarkVehicleOccupied{Vin: vin})
}

// MarkUnoccupied handles the DELETE request to mark a vehicle unoccupied
// @Summary Mark a vehicle unoccupied
// @Description Record that the rider left an occupied vehicle.
// @Tags Vehicle
// @Produce json
// @Param vin path string true "Vehicle Identification Number"
// @Success 202 {object} CommandAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Router /vehicles/available/{vin}/occupancy [delete]
func (handler *vehicleHandler) MarkUnoccupied(ctx *gin.Context) {
	vin, err := value.NewVin(ctx.Param("vin"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	handler.execute(ctx, vehicles.MarkVehicleUnoccupied{Vin: vin})
}

// ConfirmReturn handles the DELETE request to confirm a vehicle's return
// @Summary Confirm a vehicle return
// @Description Record that a returning vehicle arrived back with its owner.
// @Tags Vehicle
// @Produce json
// @Param vin path string true "Vehicle Identification Number"
// @Success 202 {object} CommandAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Router /vehicles/available/{vin} [delete]
func (handler *vehicleHandler) ConfirmReturn(ctx *gin.Context) {
	vin, err := value.NewVin(ctx.Param("vin"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	handler.execute(ctx, vehicles.ConfirmVehicleReturn{Vin: vin})
}

func (handler *vehicleHandler) execute(ctx *gin.Context, command vehicles.Command) {
	vin, err := handler.commandService.Execute(ctx, command)
	if err != nil {
		var cmdErr *vehicles.CommandError
		if errors.As(err, &cmdErr) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("failed: %v", err)})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusAccepted, CommandAcceptedResponse{
		Message:  "Success",
		Location: fmt.Sprintf("%s/vehicles/%s", BasePath, vin),
	})
}
