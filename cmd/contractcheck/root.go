package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xcov19-server/internal/config"
	"github.com/xcov19-server/internal/conformance"
	"github.com/xcov19-server/internal/logging"

	// Implementations verify themselves against their contracts on import.
	_ "github.com/xcov19-server/internal/service"
)

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "contractcheck",
		Short:         "Report service implementations verified against their interface declarations",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configManager, err := config.NewManager(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := configManager.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			logger, err := logging.NewLogger(configManager.GetLoggingConfig())
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), logger, conformance.DefaultRegistry.Report(), configManager.GetConfig().Report.Format)
		},
	}

	root.Flags().StringVar(&configFile, "config", "", "path to a configuration file")
	root.Flags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	root.Flags().String("log-format", "text", "log format (text, json)")
	root.Flags().String("output", "text", "report format (text, json)")

	return root
}

func writeReport(w io.Writer, logger *logrus.Logger, reports []conformance.ContractReport, format string) error {
	for _, r := range reports {
		logger.WithFields(logrus.Fields{
			"class":   r.Class,
			"parent":  r.Parent,
			"methods": len(r.Methods),
		}).Debug("Contract verified")
	}
	logger.WithField("contracts", len(reports)).Info("Contract check complete")

	if strings.ToLower(format) == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	for _, r := range reports {
		if _, err := fmt.Fprintf(w, "%s implements %s: %s\n", r.Class, r.Parent, strings.Join(r.Methods, ", ")); err != nil {
			return err
		}
	}
	return nil
}
