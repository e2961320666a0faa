package commands

import (
	"encoding/json"
	"fmt"

	"github.com/dclimber/autonomo/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// VehicleCommandHandler encapsulates logic for fleet vehicle operations via CLI.
type VehicleCommandHandler struct {
	client *apiClient
	logger logger.Logger
}

// NewVehicleCommandHandler initializes and returns a VehicleCommandHandler
// instance with configured logger and API client.
func NewVehicleCommandHandler() (*VehicleCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &VehicleCommandHandler{
		client: newAPIClient(),
		logger: loggerInstance,
	}, nil
}

// AddVehicleCmd contributes a vehicle to the fleet
func (commandHandler *VehicleCommandHandler) AddVehicleCmd(cmd *cobra.Command, _ []string) {
	vin, err := cmd.Flags().GetString("vin")
	if err != nil {
		commandHandler.logger.Error("invalid vin flag ", err)
		return
	}
	owner, err := cmd.Flags().GetString("owner")
	if err != nil {
		commandHandler.logger.Error("invalid owner flag ", err)
		return
	}

	body := map[string]any{"vin": vin, "owner": owner}

	var accepted commandAcceptedPayload
	if err := commandHandler.client.do(cmd.Context(), "POST", "/vehicles/mine", body, &accepted); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Vehicle ", vin, " added to the fleet")
}

// MakeAvailableCmd offers an inventory vehicle for rides
func (commandHandler *VehicleCommandHandler) MakeAvailableCmd(cmd *cobra.Command, _ []string) {
	commandHandler.vinCommand(cmd, "PUT", "/vehicles/mine/%s/availability", "Vehicle %s is now available for rides")
}

// RequestReturnCmd asks for a vehicle to return to its owner
func (commandHandler *VehicleCommandHandler) RequestReturnCmd(cmd *cobra.Command, _ []string) {
	commandHandler.vinCommand(cmd, "DELETE", "/vehicles/mine/%s/availability", "Return requested for vehicle %s")
}

// RemoveVehicleCmd withdraws an inventory vehicle from the fleet
func (commandHandler *VehicleCommandHandler) RemoveVehicleCmd(cmd *cobra.Command, _ []string) {
	vin, err := cmd.Flags().GetString("vin")
	if err != nil {
		commandHandler.logger.Error("invalid vin flag ", err)
		return
	}
	owner, err := cmd.Flags().GetString("owner")
	if err != nil {
		commandHandler.logger.Error("invalid owner flag ", err)
		return
	}

	var accepted commandAcceptedPayload
	path := fmt.Sprintf("/vehicles/mine/%s?owner=%s", vin, owner)
	if err := commandHandler.client.do(cmd.Context(), "DELETE", path, nil, &accepted); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Vehicle ", vin, " removed from the fleet")
}

// MarkOccupiedCmd records that a rider occupies an available vehicle
func (commandHandler *VehicleCommandHandler) MarkOccupiedCmd(cmd *cobra.Command, _ []string) {
	commandHandler.vinCommand(cmd, "PUT", "/vehicles/available/%s/occupancy", "Vehicle %s marked as occupied")
}

// MarkUnoccupiedCmd records that the rider left an occupied vehicle
func (commandHandler *VehicleCommandHandler) MarkUnoccupiedCmd(cmd *cobra.Command, _ []string) {
	commandHandler.vinCommand(cmd, "DELETE", "/vehicles/available/%s/occupancy", "Vehicle %s marked as unoccupied")
}

// ConfirmReturnCmd records that a returning vehicle arrived back with its owner
func (commandHandler *VehicleCommandHandler) ConfirmReturnCmd(cmd *cobra.Command, _ []string) {
	commandHandler.vinCommand(cmd, "DELETE", "/vehicles/available/%s", "Vehicle %s returned to its owner")
}

// GetVehicleCmd fetches the current read-model state of a vehicle
func (commandHandler *VehicleCommandHandler) GetVehicleCmd(cmd *cobra.Command, _ []string) {
	vin, err := cmd.Flags().GetString("vin")
	if err != nil {
		commandHandler.logger.Error("invalid vin flag ", err)
		return
	}

	var vehicle map[string]any
	if err := commandHandler.client.do(cmd.Context(), "GET", "/vehicles/"+vin, nil, &vehicle); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.printJSON(vehicle)
}

// ListMineCmd lists all vehicles contributed by an owner
func (commandHandler *VehicleCommandHandler) ListMineCmd(cmd *cobra.Command, _ []string) {
	owner, err := cmd.Flags().GetString("owner")
	if err != nil {
		commandHandler.logger.Error("invalid owner flag ", err)
		return
	}

	var owned []map[string]any
	if err := commandHandler.client.do(cmd.Context(), "GET", "/vehicles/mine?owner="+owner, nil, &owned); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.printJSON(owned)
}

// ListAvailableCmd lists all vehicles currently available for rides
func (commandHandler *VehicleCommandHandler) ListAvailableCmd(cmd *cobra.Command, _ []string) {
	var available []map[string]any
	if err := commandHandler.client.do(cmd.Context(), "GET", "/vehicles/available", nil, &available); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.printJSON(available)
}

func (commandHandler *VehicleCommandHandler) vinCommand(cmd *cobra.Command, method, pathFormat, successFormat string) {
	vin, err := cmd.Flags().GetString("vin")
	if err != nil {
		commandHandler.logger.Error("invalid vin flag ", err)
		return
	}

	var accepted commandAcceptedPayload
	if err := commandHandler.client.do(cmd.Context(), method, fmt.Sprintf(pathFormat, vin), nil, &accepted); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info(fmt.Sprintf(successFormat, vin))
}

func (commandHandler *VehicleCommandHandler) printJSON(v any) {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	fmt.Println(string(pretty))
}

// InitVehicleCommands registers vehicle-related commands
func InitVehicleCommands(rootCmd *cobra.Command) error {
	handler, err := NewVehicleCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create vehicle command handler %w", err)
	}

	var addVehicleCmd = &cobra.Command{
		Use:   "add-vehicle",
		Short: "Contribute a vehicle to the fleet",
		Run:   handler.AddVehicleCmd,
	}
	addVehicleCmd.Flags().StringP("vin", "", "", "Vehicle identification number (17 characters)")
	addVehicleCmd.Flags().StringP("owner", "", "", "Owner user id (UUID)")
	rootCmd.AddCommand(addVehicleCmd)

	var makeAvailableCmd = &cobra.Command{
		Use:   "make-available",
		Short: "Offer an inventory vehicle for rides",
		Run:   handler.MakeAvailableCmd,
	}
	makeAvailableCmd.Flags().StringP("vin", "", "", "Vehicle identification number")
	rootCmd.AddCommand(makeAvailableCmd)

	var requestReturnCmd = &cobra.Command{
		Use:   "request-return",
		Short: "Ask for a vehicle to return to its owner",
		Run:   handler.RequestReturnCmd,
	}
	requestReturnCmd.Flags().StringP("vin", "", "", "Vehicle identification number")
	rootCmd.AddCommand(requestReturnCmd)

	var removeVehicleCmd = &cobra.Command{
		Use:   "remove-vehicle",
		Short: "Withdraw an inventory vehicle from the fleet",
		Run:   handler.RemoveVehicleCmd,
	}
	removeVehicleCmd.Flags().StringP("vin", "", "", "Vehicle identification number")
	removeVehicleCmd.Flags().StringP("owner", "", "", "Owner user id (UUID)")
	rootCmd.AddCommand(removeVehicleCmd)

	var markOccupiedCmd = &cobra.Command{
		Use:   "mark-occupied",
		Short: "Record that a rider occupies an available vehicle",
		Run:   handler.MarkOccupiedCmd,
	}
	markOccupiedCmd.Flags().StringP("vin", "", "", "Vehicle identification number")
	rootCmd.AddCommand(markOccupiedCmd)

	var markUnoccupiedCmd = &cobra.Command{
		Use:   "mark-unoccupied",
		Short: "Record that the rider left an occupied vehicle",
		Run:   handler.MarkUnoccupiedCmd,
	}
	markUnoccupiedCmd.Flags().StringP("vin", "", "", "Vehicle identification number")
	rootCmd.AddCommand(markUnoccupiedCmd)

	var confirmReturnCmd = &cobra.Command{
		Use:   "confirm-return",
		Short: "Record that a returning vehicle arrived back with its owner",
		Run:   handler.ConfirmReturnCmd,
	}
	confirmReturnCmd.Flags().StringP("vin", "", "", "Vehicle identification number")
	rootCmd.AddCommand(confirmReturnCmd)

	var getVehicleCmd = &cobra.Command{
		Use:   "get-vehicle",
		Short: "Fetch the current state of a vehicle",
		Run:   handler.GetVehicleCmd,
	}
	getVehicleCmd.Flags().StringP("vin", "", "", "Vehicle identification number")
	rootCmd.AddCommand(getVehicleCmd)

	var listMineCmd = &cobra.Command{
		Use:   "list-mine",
		Short: "List all vehicles contributed by an owner",
		Run:   handler.ListMineCmd,
	}
	listMineCmd.Flags().StringP("owner", "", "", "Owner user id (UUID)")
	rootCmd.AddCommand(listMineCmd)

	var listAvailableCmd = &cobra.Command{
		Use:   "list-available",
		Short: "List all vehicles currently available for rides",
		Run:   handler.ListAvailableCmd,
	}
	rootCmd.AddCommand(listAvailableCmd)

	return nil
}
