package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig holds the full configuration of the REST API process
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	Kafka    KafkaSettings    `mapstructure:"kafka"`
}

// Validate checks that all fields in RestConfig are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Kafka.Validate()
}

// InitializeRestConfig loads the REST API configuration from the given YAML
// file. Values can be overridden through environment variables with the
// AUTONOMO prefix, e.g. AUTONOMO_DATABASE_DSN.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := newViper(configPath)
	v.SetDefault("port", "8080")
	setStreamDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config RestConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("AUTONOMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setStreamDefaults(v *viper.Viper) {
	v.SetDefault("kafka.ride_events_topic", DefaultRideEventsTopic)
	v.SetDefault("kafka.vehicle_events_topic", DefaultVehicleEventsTopic)
}
