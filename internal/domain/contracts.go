package domain

import (
	"github.com/xcov19-server/internal/conformance"
)

// Interface declarations that implementations verify against when they are
// defined. Each mirrors the Go interface of the same name.
var (
	DiagnosisServiceContract = conformance.MustDefine("DiagnosisService", nil,
		conformance.MethodOf("Diagnose", DiagnosisService.Diagnose, "ctx", "query"),
	)

	ConfigManagerContract = conformance.MustDefine("ConfigManager", nil,
		conformance.MethodOf("GetConfig", ConfigManager.GetConfig),
		conformance.MethodOf("GetLoggingConfig", ConfigManager.GetLoggingConfig),
		conformance.MethodOf("Reload", ConfigManager.Reload),
		conformance.MethodOf("Validate", ConfigManager.Validate),
		conformance.MethodOf("IsProduction", ConfigManager.IsProduction),
		conformance.MethodOf("IsDevelopment", ConfigManager.IsDevelopment),
	)
)
