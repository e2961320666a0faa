// Package main is the entry point for the autonomo-cli application.
// It initializes the root command and registers ride and vehicle sub-commands,
// then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/dclimber/autonomo/cmd/autonomo-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "autonomo-cli",
		Short: "Ride-hailing operations CLI tool",
		Long: `autonomo-cli is a command-line client for the Autonomo REST API.
It requests, schedules, tracks and cancels rides, and manages the fleet of
community-contributed vehicles.

The API endpoint defaults to ` + commands.DefaultAPIURL + ` and can be
overridden with the AUTONOMO_API_URL environment variable.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register ride commands
	if err := commands.InitRideCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize ride commands: %w", err)
	}

	// Register vehicle commands
	if err := commands.InitVehicleCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize vehicle commands: %w", err)
	}

	return nil
}
