package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/value"

	"github.com/gin-gonic/gin"
)

// RideHandler defines the interface for handling ride-related operations
type RideHandler interface {
	GetByID(ctx *gin.Context)
	Request(ctx *gin.Context)
	Schedule(ctx *gin.Context)
	ConfirmPickup(ctx *gin.Context)
	EndRide(ctx *gin.Context)
	Cancel(ctx *gin.Context)
}

// rideHandler struct holds the services
type rideHandler struct {
	commandService rides.CommandService
	queryService   rides.QueryService
}

// NewRideHandler creates a new RideHandler
func NewRideHandler(commandService rides.CommandService, queryService rides.QueryService) RideHandler {
	return &rideHandler{
		commandService: commandService,
		queryService:   queryService,
	}
}

// GetByID handles the GET request to fetch a ride's current state
// @Summary Get a ride by id
// @Description Fetch the current read-model state of a ride.
// @Tags Ride
// @Produce json
// @Param id path string true "Ride ID"
// @Success 200 {object} RideResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /rides/{id} [get]
func (handler *rideHandler) GetByID(ctx *gin.Context) {
	id, err := value.ParseRideID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	ride, err := handler.queryService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rides.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("no ride with id: %s", id)})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, NewRideResponse(ride))
}

// Request handles the POST request to request a new ride
// @Summary Request a ride
// @Description Request a ride from an origin to a destination at a pickup time.
// @Tags Ride
// @Accept json
// @Produce json
// @Param requestBody body RequestRideRequest true "Ride Request Data"
// @Success 202 {object} CommandAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Router /rides/request [post]
func (handler *rideHandler) Request(ctx *gin.Context) {
	var request RequestRideRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid ride request data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	rider, err := value.ParseUserID(request.Rider)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	origin, err := request.Origin.ToDomain()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	destination, err := request.Destination.ToDomain()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	handler.execute(ctx, rides.RequestRide{
		Rider:       rider,
		Origin:      origin,
		Destination: destination,
		PickupTime:  request.PickupTime,
	})
}

// Schedule handles the PUT request to assign a vehicle to a requested ride
// @Summary Schedule a ride
// @Description Assign an available vehicle to a requested ride.
// @Tags Ride
// @Accept json
// @Produce json
// @Param id path string true "Ride ID"
// @Param requestBody body ScheduleRideRequest true "Ride Schedule Data"
// @Success 202 {object} CommandAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Router /rides/{id}/schedule [put]
func (handler *rideHandler) Schedule(ctx *gin.Context) {
	id, err := value.ParseRideID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	var request ScheduleRideRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid ride schedule data: %v", err)})
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

	handler.execute(ctx, rides.ScheduleRide{Ride: id, Vin: vin, PickupTime: request.PickupTime})
}

// ConfirmPickup handles the PUT request to confirm a rider pickup
// @Summary Confirm a pickup
// @Description Record that the assigned vehicle picked the rider up.
// @Tags Ride
// @Accept json
// @Produce json
// @Param id path string true "Ride ID"
// @Param requestBody body ConfirmPickupRequest true "Pickup Data"
// @Success 202 {object} CommandAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Router /rides/{id}/pickup [put]
func (handler *rideHandler) ConfirmPickup(ctx *gin.Context) {
	id, err := value.ParseRideID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	var request ConfirmPickupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid pickup data: %v", err)})
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
	rider, err := value.ParseUserID(request.Rider)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	location, err := request.PickupLocation.ToDomain()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	handler.execute(ctx, rides.ConfirmPickup{
		Ride:           id,
		Vin:            vin,
		Rider:          rider,
		PickupLocation: location,
	})
}

// EndRide handles the PUT request to end a ride at a drop-off location
// @Summary End a ride
// @Description Record that the rider was dropped off, completing the ride.
// @Tags Ride
// @Accept json
// @Produce json
// @Param id path string true "Ride ID"
// @Param requestBody body EndRideRequest true "Drop-off Data"
// @Success 202 {object} CommandAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Router /rides/{id}/dropoff [put]
func (handler *rideHandler) EndRide(ctx *gin.Context) {
	id, err := value.ParseRideID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	var request EndRideRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid drop-off data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	location, err := request.DropOffLocation.ToDomain()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	handler.execute(ctx, rides.EndRide{Ride: id, DropOffLocation: location})
}

// Cancel handles the DELETE request to cancel a ride
// @Summary Cancel a ride
// @Description Cancel a requested or scheduled ride.
// @Tags Ride
// @Produce json
// @Param id path string true "Ride ID"
// @Success 202 {object} CommandAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Router /rides/{id} [delete]
func (handler *rideHandler) Cancel(ctx *gin.Context) {
	id, err := value.ParseRideID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	handler.execute(ctx, rides.CancelRide{Ride: id})
}

func (handler *rideHandler) execute(ctx *gin.Context, command rides.Command) {
	rideID, err := handler.commandService.Execute(ctx, command)
	if err != nil {
		var cmdErr *rides.CommandError
		if errors.As(err, &cmdErr) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("failed: %v", err)})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusAccepted, CommandAcceptedResponse{
		Message:  "Success",
		Location: fmt.Sprintf("%s/rides/%s", BasePath, rideID),
	})
}
