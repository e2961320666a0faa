package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dclimber/autonomo/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// RideCommandHandler encapsulates logic for ride operations via CLI.
type RideCommandHandler struct {
	client *apiClient
	logger logger.Logger
}

// NewRideCommandHandler initializes and returns a RideCommandHandler instance
// with configured logger and API client.
func NewRideCommandHandler() (*RideCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &RideCommandHandler{
		client: newAPIClient(),
		logger: loggerInstance,
	}, nil
}

type geoCoordinatesPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type commandAcceptedPayload struct {
	Message  string `json:"message"`
	Location string `json:"location"`
}

// RequestRideCmd requests a new ride between two locations
func (commandHandler *RideCommandHandler) RequestRideCmd(cmd *cobra.Command, _ []string) {
	rider, err := cmd.Flags().GetString("rider")
	if err != nil {
		commandHandler.logger.Error("invalid rider flag ", err)
		return
	}
	originLat, err := cmd.Flags().GetFloat64("origin-lat")
	if err != nil {
		commandHandler.logger.Error("invalid origin-lat flag ", err)
		return
	}
	originLon, err := cmd.Flags().GetFloat64("origin-lon")
	if err != nil {
		commandHandler.logger.Error("invalid origin-lon flag ", err)
		return
	}
	destinationLat, err := cmd.Flags().GetFloat64("destination-lat")
	if err != nil {
		commandHandler.logger.Error("invalid destination-lat flag ", err)
		return
	}
	destinationLon, err := cmd.Flags().GetFloat64("destination-lon")
	if err != nil {
		commandHandler.logger.Error("invalid destination-lon flag ", err)
		return
	}
	pickupTime, err := commandHandler.pickupTimeFlag(cmd)
	if err != nil {
		return
	}

	body := map[string]any{
		"rider":       rider,
		"origin":      geoCoordinatesPayload{Latitude: originLat, Longitude: originLon},
		"destination": geoCoordinatesPayload{Latitude: destinationLat, Longitude: destinationLon},
		"pickupTime":  pickupTime,
	}

	var accepted commandAcceptedPayload
	if err := commandHandler.client.do(cmd.Context(), "POST", "/rides/request", body, &accepted); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Ride requested, state available at ", accepted.Location)
}

// ScheduleRideCmd assigns a vehicle to a requested ride
func (commandHandler *RideCommandHandler) ScheduleRideCmd(cmd *cobra.Command, _ []string) {
	id, err := cmd.Flags().GetString("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}
	vin, err := cmd.Flags().GetString("vin")
	if err != nil {
		commandHandler.logger.Error("invalid vin flag ", err)
		return
	}
	pickupTime, err := commandHandler.pickupTimeFlag(cmd)
	if err != nil {
		return
	}

	body := map[string]any{"vin": vin, "pickupTime": pickupTime}

	var accepted commandAcceptedPayload
	if err := commandHandler.client.do(cmd.Context(), "PUT", "/rides/"+id+"/schedule", body, &accepted); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Ride ", id, " scheduled with vehicle ", vin)
}

// ConfirmPickupCmd records that the assigned vehicle picked the rider up
func (commandHandler *RideCommandHandler) ConfirmPickupCmd(cmd *cobra.Command, _ []string) {
	id, err := cmd.Flags().GetString("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}
	vin, err := cmd.Flags().GetString("vin")
	if err != nil {
		commandHandler.logger.Error("invalid vin flag ", err)
		return
	}
	rider, err := cmd.Flags().GetString("rider")
	if err != nil {
		commandHandler.logger.Error("invalid rider flag ", err)
		return
	}
	lat, err := cmd.Flags().GetFloat64("lat")
	if err != nil {
		commandHandler.logger.Error("invalid lat flag ", err)
		return
	}
	lon, err := cmd.Flags().GetFloat64("lon")
	if err != nil {
		commandHandler.logger.Error("invalid lon flag ", err)
		return
	}

	body := map[string]any{
		"vin":            vin,
		"rider":          rider,
		"pickupLocation": geoCoordinatesPayload{Latitude: lat, Longitude: lon},
	}

	var accepted commandAcceptedPayload
	if err := commandHandler.client.do(cmd.Context(), "PUT", "/rides/"+id+"/pickup", body, &accepted); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Pickup confirmed for ride ", id)
}

// EndRideCmd records that the rider was dropped off
func (commandHandler *RideCommandHandler) EndRideCmd(cmd *cobra.Command, _ []string) {
	id, err := cmd.Flags().GetString("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}
	lat, err := cmd.Flags().GetFloat64("lat")
	if err != nil {
		commandHandler.logger.Error("invalid lat flag ", err)
		return
	}
	lon, err := cmd.Flags().GetFloat64("lon")
	if err != nil {
		commandHandler.logger.Error("invalid lon flag ", err)
		return
	}

	body := map[string]any{
		"dropOffLocation": geoCoordinatesPayload{Latitude: lat, Longitude: lon},
	}

	var accepted commandAcceptedPayload
	if err := commandHandler.client.do(cmd.Context(), "PUT", "/rides/"+id+"/dropoff", body, &accepted); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Ride ", id, " ended")
}

// CancelRideCmd cancels a requested or scheduled ride
func (commandHandler *RideCommandHandler) CancelRideCmd(cmd *cobra.Command, _ []string) {
	id, err := cmd.Flags().GetString("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	var accepted commandAcceptedPayload
	if err := commandHandler.client.do(cmd.Context(), "DELETE", "/rides/"+id, nil, &accepted); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Ride ", id, " cancelled")
}

// GetRideCmd fetches the current read-model state of a ride
func (commandHandler *RideCommandHandler) GetRideCmd(cmd *cobra.Command, _ []string) {
	id, err := cmd.Flags().GetString("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	var ride map[string]any
	if err := commandHandler.client.do(cmd.Context(), "GET", "/rides/"+id, nil, &ride); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	pretty, err := json.MarshalIndent(ride, "", "  ")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	fmt.Println(string(pretty))
}

func (commandHandler *RideCommandHandler) pickupTimeFlag(cmd *cobra.Command) (time.Time, error) {
	raw, err := cmd.Flags().GetString("pickup-time")
	if err != nil {
		commandHandler.logger.Error("invalid pickup-time flag ", err)
		return time.Time{}, err
	}
	if raw == "" {
		return time.Now().Add(time.Hour).UTC(), nil
	}
	pickupTime, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		commandHandler.logger.Error("pickup-time must be RFC3339, e.g. 2026-08-24T15:00:00Z: ", err)
		return time.Time{}, err
	}
	return pickupTime, nil
}

// InitRideCommands registers ride-related commands
func InitRideCommands(rootCmd *cobra.Command) error {
	handler, err := NewRideCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create ride command handler %w", err)
	}

	var requestRideCmd = &cobra.Command{
		Use:   "request-ride",
		Short: "Request a ride between two locations",
		Run:   handler.RequestRideCmd,
	}
	requestRideCmd.Flags().StringP("rider", "", "", "Rider user id (UUID)")
	requestRideCmd.Flags().Float64P("origin-lat", "", 0, "Origin latitude")
	requestRideCmd.Flags().Float64P("origin-lon", "", 0, "Origin longitude")
	requestRideCmd.Flags().Float64P("destination-lat", "", 0, "Destination latitude")
	requestRideCmd.Flags().Float64P("destination-lon", "", 0, "Destination longitude")
	requestRideCmd.Flags().StringP("pickup-time", "", "", "Pickup time (RFC3339, defaults to one hour from now)")
	rootCmd.AddCommand(requestRideCmd)

	var scheduleRideCmd = &cobra.Command{
		Use:   "schedule-ride",
		Short: "Assign an available vehicle to a requested ride",
		Run:   handler.ScheduleRideCmd,
	}
	scheduleRideCmd.Flags().StringP("id", "", "", "Ride id")
	scheduleRideCmd.Flags().StringP("vin", "", "", "Vehicle identification number")
	scheduleRideCmd.Flags().StringP("pickup-time", "", "", "Pickup time (RFC3339, defaults to one hour from now)")
	rootCmd.AddCommand(scheduleRideCmd)

	var confirmPickupCmd = &cobra.Command{
		Use:   "confirm-pickup",
		Short: "Record that the assigned vehicle picked the rider up",
		Run:   handler.ConfirmPickupCmd,
	}
	confirmPickupCmd.Flags().StringP("id", "", "", "Ride id")
	confirmPickupCmd.Flags().StringP("vin", "", "", "Vehicle identification number")
	confirmPickupCmd.Flags().StringP("rider", "", "", "Rider user id (UUID)")
	confirmPickupCmd.Flags().Float64P("lat", "", 0, "Pickup latitude")
	confirmPickupCmd.Flags().Float64P("lon", "", 0, "Pickup longitude")
	rootCmd.AddCommand(confirmPickupCmd)

	var endRideCmd = &cobra.Command{
		Use:   "end-ride",
		Short: "Record that the rider was dropped off",
		Run:   handler.EndRideCmd,
	}
	endRideCmd.Flags().StringP("id", "", "", "Ride id")
	endRideCmd.Flags().Float64P("lat", "", 0, "Drop-off latitude")
	endRideCmd.Flags().Float64P("lon", "", 0, "Drop-off longitude")
	rootCmd.AddCommand(endRideCmd)

	var cancelRideCmd = &cobra.Command{
		Use:   "cancel-ride",
		Short: "Cancel a requested or scheduled ride",
		Run:   handler.CancelRideCmd,
	}
	cancelRideCmd.Flags().StringP("id", "", "", "Ride id")
	rootCmd.AddCommand(cancelRideCmd)

	var getRideCmd = &cobra.Command{
		Use:   "get-ride",
		Short: "Fetch the current state of a ride",
		Run:   handler.GetRideCmd,
	}
	getRideCmd.Flags().StringP("id", "", "", "Ride id")
	rootCmd.AddCommand(getRideCmd)

	return nil
}
