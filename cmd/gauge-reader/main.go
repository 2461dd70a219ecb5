package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/gauge-reader/internal/config"
	"github.com/ironsheep/gauge-reader/internal/detect"
	"github.com/ironsheep/gauge-reader/internal/gauge"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	logLevel   = "info"
	configPath = ""
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.Kitchen,
	})

	return nil
}

// loadConfig returns defaults when no config file was given.
func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

// buildPipeline assembles the reader and detector from configuration.
func buildPipeline(cfg config.Config) (*gauge.Reader, detect.Detector) {
	reader := gauge.NewReader(cfg.Gauge)
	reader.MinKeypointConf = cfg.Detector.MinKeypointConfidence

	detector := detect.NewHough(detect.HoughOptions{
		MinRadius:     cfg.Detector.MinRadius,
		MaxRadius:     cfg.Detector.MaxRadius,
		MinConfidence: cfg.Detector.MinConfidence,
	})

	return reader, detector
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gauge-reader",
		Short:        "gauge-reader reads analog dial gauges from images",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", logLevel, "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVarP(&configPath, "config", "c", configPath, "config file path (YAML)")

	cmd.AddCommand(
		NewReadCommand(),
		NewServeCommand(),
		NewVersionCommand(),
	)

	return cmd
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("gauge-reader %s\n", Version)
			cmd.Printf("  Build time: %s\n", BuildTime)
			cmd.Printf("  Git commit: %s\n", GitCommit)
		},
	}
}
