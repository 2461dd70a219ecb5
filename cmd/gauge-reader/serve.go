package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/gauge-reader/internal/server"
)

func NewServeCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gauge reader HTTP API",
		Long: `Serve the gauge reader HTTP API.

Images are POSTed to /api/v1/read and answered with calibrated readings.
The active calibration can be inspected and replaced through
/api/v1/calibration without restarting the server.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if listen != "" {
				cfg.Server.Listen = listen
			}

			reader, detector := buildPipeline(cfg)
			srv := server.New(reader, detector, logrus.StandardLogger())

			return srv.Run(cfg.Server.Listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")

	return cmd
}
