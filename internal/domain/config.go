package domain

// Config represents the main application configuration
type Config struct {
	Environment string        `mapstructure:"environment"`
	Logging     LoggingConfig `mapstructure:"logging"`
	Report      ReportConfig  `mapstructure:"report"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// ReportConfig controls how the contract report is rendered
type ReportConfig struct {
	Format string `mapstructure:"format"` // "text", "json"
}
