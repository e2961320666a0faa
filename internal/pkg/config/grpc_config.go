package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// GrpcConfig holds the full configuration of the gRPC API process, which
// serves the gRPC endpoint and an HTTP gateway next to it
type GrpcConfig struct {
	Port        string           `mapstructure:"port" validate:"required"`
	GatewayPort string           `mapstructure:"gateway_port" validate:"required"`
	Logger      LoggerSettings   `mapstructure:"logger"`
	Database    DatabaseSettings `mapstructure:"database"`
	Kafka       KafkaSettings    `mapstructure:"kafka"`
}

// Validate checks that all fields in GrpcConfig are valid
func (c *GrpcConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for GrpcConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Kafka.Validate()
}

// InitializeGrpcConfig loads the gRPC API configuration from the given YAML
// file, with AUTONOMO-prefixed environment variable overrides.
func InitializeGrpcConfig(configPath string) (*GrpcConfig, error) {
	v := newViper(configPath)
	v.SetDefault("port", "50051")
	v.SetDefault("gateway_port", "8081")
	setStreamDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config GrpcConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
