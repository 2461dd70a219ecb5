package main

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/gauge-reader/internal/annotate"
	"github.com/ironsheep/gauge-reader/internal/config"
	"github.com/ironsheep/gauge-reader/internal/gauge"
	"github.com/ironsheep/gauge-reader/internal/ocr"
)

var bold = color.New(color.Bold).Sprintf

func NewReadCommand() *cobra.Command {
	var jsonOutput bool
	var outputPath string

	cmd := &cobra.Command{
		Use:   "read [image...]",
		Short: "Read gauges from one or more images",
		Long: `Read gauges from one or more images.

Each image is scanned for dial faces. Every dial with a visible needle is
converted to a value using the configured calibration. When no image
arguments are given the source path from the config file is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			paths, err := sourcePaths(cfg, args)
			if err != nil {
				return err
			}

			if outputPath != "" {
				cfg.Display.OutputPath = outputPath
			}

			reader, detector := buildPipeline(cfg)

			for _, path := range paths {
				img, err := imaging.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open %s: %v", path, err)
				}

				readings, stats, err := reader.ReadImage(detector, img)
				if err != nil {
					return fmt.Errorf("failed to read %s: %v", path, err)
				}

				fillUnits(cfg, img, readings)

				if jsonOutput {
					if err := printJSON(cmd, path, readings, stats); err != nil {
						return err
					}
				} else {
					printReadings(cmd, path, readings, stats)
				}

				if cfg.Display.OutputPath != "" {
					annotated := annotate.Draw(img, readings, cfg.Display.Options)
					if err := imaging.Save(annotated, cfg.Display.OutputPath); err != nil {
						return fmt.Errorf("failed to save annotated image: %v", err)
					}
					logrus.WithField("path", cfg.Display.OutputPath).Info("annotated image written")
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print readings as JSON")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write an annotated copy of the input image")

	return cmd
}

// sourcePaths resolves the images to read. Command-line arguments win;
// otherwise the configured source is used. Webcam and RTSP sources are
// configuration-only placeholders and cannot be read here.
func sourcePaths(cfg config.Config, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	switch cfg.Source.Type {
	case "", "image":
		if cfg.Source.Path == "" {
			return nil, fmt.Errorf("no image given: pass a path or set source.path in the config")
		}
		return []string{cfg.Source.Path}, nil
	case "webcam", "rtsp":
		return nil, fmt.Errorf("source type %q is not supported; only still images can be read", cfg.Source.Type)
	default:
		return nil, fmt.Errorf("unknown source type %q", cfg.Source.Type)
	}
}

// fillUnits runs OCR over each dial face to recover the printed unit
// label, for readings whose calibration did not name one.
func fillUnits(cfg config.Config, img image.Image, readings []gauge.Reading) {
	if !cfg.OCR.Enabled || !ocr.Available() {
		return
	}

	for i := range readings {
		if readings[i].Unit != "" {
			continue
		}
		unit, err := ocr.UnitFromDial(img, readings[i].BBox, cfg.OCR.Language)
		if err != nil {
			logrus.WithError(err).Debug("unit OCR failed")
			continue
		}
		readings[i].Unit = unit
	}
}

func printReadings(cmd *cobra.Command, path string, readings []gauge.Reading, stats gauge.ReadStats) {
	cmd.Println(bold("%s:", path))
	if len(readings) == 0 {
		cmd.Println("  No gauges found.")
		return
	}

	for i, r := range readings {
		unit := r.Unit
		if unit == "" {
			unit = "(no unit)"
		}
		cmd.Printf("  Gauge %d: %s %s\n", i+1, bold("%.3f", r.Value), unit)
		cmd.Printf("    Needle angle: %.2f°\n", r.Angle)
		cmd.Printf("    Confidence: %.2f\n", r.Confidence)
	}

	skipped := stats.SkippedFewKeypoints + stats.SkippedLowConfidence + stats.SkippedZeroLength
	if skipped > 0 {
		cmd.Printf("  (%d detections skipped)\n", skipped)
	}
}

func printJSON(cmd *cobra.Command, path string, readings []gauge.Reading, stats gauge.ReadStats) error {
	out := struct {
		Path     string          `json:"path"`
		Readings []gauge.Reading `json:"readings"`
		Stats    gauge.ReadStats `json:"stats"`
	}{Path: path, Readings: readings, Stats: stats}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}
