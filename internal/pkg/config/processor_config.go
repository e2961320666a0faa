package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultProcessorGroupID is the consumer group the stream processor joins
// when none is configured.
const DefaultProcessorGroupID = "autonomo-processor"

// ProcessorConfig holds the full configuration of the stream processor
type ProcessorConfig struct {
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	Kafka    KafkaSettings    `mapstructure:"kafka"`
}

// Validate checks that all fields in ProcessorConfig are valid
func (c *ProcessorConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for ProcessorConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Kafka.Validate(); err != nil {
		return err
	}
	if c.Kafka.GroupID == "" {
		return fmt.Errorf("consumer group id is required for the stream processor")
	}
	return nil
}

// InitializeProcessorConfig loads the stream processor configuration from the
// given YAML file, with AUTONOMO-prefixed environment variable overrides.
func InitializeProcessorConfig(configPath string) (*ProcessorConfig, error) {
	v := newViper(configPath)
	setStreamDefaults(v)
	v.SetDefault("kafka.group_id", DefaultProcessorGroupID)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config ProcessorConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
