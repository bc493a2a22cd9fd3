package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/xcov19-server/internal/conformance"
	"github.com/xcov19-server/internal/domain"
)

var _ domain.ConfigManager = (*Manager)(nil)

var managerClass = conformance.MustDefine("Manager",
	[]*conformance.Class{domain.ConfigManagerContract, conformance.ProtocolCheck},
	conformance.MethodOf("GetConfig", (*Manager).GetConfig),
	conformance.MethodOf("GetLoggingConfig", (*Manager).GetLoggingConfig),
	conformance.MethodOf("Reload", (*Manager).Reload),
	conformance.MethodOf("Validate", (*Manager).Validate),
	conformance.MethodOf("IsProduction", (*Manager).IsProduction),
	conformance.MethodOf("IsDevelopment", (*Manager).IsDevelopment),
)

// Manager implements the ConfigManager interface using Viper
type Manager struct {
	v          *viper.Viper
	configFile string
	config     *domain.Config
}

// NewManager creates a new configuration manager. configFile may be empty to
// search the default locations; flags, when given, override file and
// environment values for the keys they are bound to.
func NewManager(configFile string, flags *pflag.FlagSet) (*Manager, error) {
	m := &Manager{
		v:          viper.New(),
		configFile: configFile,
	}

	if flags != nil {
		for key, name := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := m.v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// flagBindings maps configuration keys to command-line flag names
var flagBindings = map[string]string{
	"logging.level":  "log-level",
	"logging.format": "log-format",
	"report.format":  "output",
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	if m.configFile != "" {
		m.v.SetConfigFile(m.configFile)
	} else {
		m.v.SetConfigName("config")
		m.v.SetConfigType("yaml")
		m.v.AddConfigPath(".")
		m.v.AddConfigPath("./config")
		m.v.AddConfigPath("/etc/xcov19/")
	}

	// Set environment variable prefix and enable automatic env binding
	m.v.SetEnvPrefix("XCOV19")
	m.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.v.AutomaticEnv()

	m.setDefaults()

	// Read configuration file (optional unless given explicitly)
	if err := m.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || m.configFile != "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := m.v.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	m.v.SetDefault("environment", "development")

	// Logging defaults
	m.v.SetDefault("logging.level", "info")
	m.v.SetDefault("logging.format", "text")
	m.v.SetDefault("logging.output", "stderr")

	// Report defaults
	m.v.SetDefault("report.format", "text")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetLoggingConfig returns logging configuration
func (m *Manager) GetLoggingConfig() *domain.LoggingConfig {
	return &m.config.Logging
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	validLogLevels := map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", config.Logging.Format)
	}

	switch strings.ToLower(config.Logging.Output) {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("invalid log output: %s", config.Logging.Output)
	}

	switch strings.ToLower(config.Report.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid report format: %s", config.Report.Format)
	}

	return nil
}

// IsProduction returns true if running in production mode
func (m *Manager) IsProduction() bool {
	return strings.ToLower(m.config.Environment) == "production"
}

// IsDevelopment returns true if running in development mode
func (m *Manager) IsDevelopment() bool {
	env := strings.ToLower(m.config.Environment)
	return env == "development" || env == "dev" || env == ""
}
