package domain

import (
	"context"
)

// DiagnosisService accepts diagnosis queries and answers them
type DiagnosisService interface {
	Diagnose(ctx context.Context, query *DiagnosisQuery) (*DiagnosisResult, error)
}

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	GetConfig() *Config
	GetLoggingConfig() *LoggingConfig
	Reload() error
	Validate() error
	IsProduction() bool
	IsDevelopment() bool
}
