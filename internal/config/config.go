// Package config loads the YAML configuration for the gauge reader:
// calibration, detector tuning, input source, display, server, and OCR
// settings. Partial files are safe; omitted fields keep their defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/gauge-reader/internal/annotate"
	"github.com/ironsheep/gauge-reader/internal/gauge"
)

// Config is the root configuration record.
type Config struct {
	Gauge    gauge.Calibration `yaml:"gauge"`
	Detector Detector          `yaml:"detector"`
	Source   Source            `yaml:"source"`
	Display  Display           `yaml:"display"`
	Server   Server            `yaml:"server"`
	OCR      OCR               `yaml:"ocr"`
}

// Detector tunes detection and filtering thresholds.
type Detector struct {
	// MinConfidence is the detection confidence floor for the heuristic
	// detector.
	MinConfidence float64 `yaml:"min_confidence"`

	// MinKeypointConfidence is the per-keypoint threshold below which a
	// detection yields no reading.
	MinKeypointConfidence float64 `yaml:"min_keypoint_confidence"`

	// MinRadius and MaxRadius bound the dial radii searched, in pixels.
	MinRadius int `yaml:"min_radius"`
	MaxRadius int `yaml:"max_radius"`
}

// Source selects the input. Only "image" is implemented; "webcam" and
// "rtsp" are reserved field names kept for config compatibility and are
// rejected at run time.
type Source struct {
	Type     string `yaml:"type"`
	Path     string `yaml:"path"`
	WebcamID int    `yaml:"webcam_id"`
	RTSPURL  string `yaml:"rtsp_url"`
}

// Display controls annotation output.
type Display struct {
	annotate.Options `yaml:",inline"`

	// OutputPath, when set, is where the annotated copy of the input image
	// is written.
	OutputPath string `yaml:"output_path"`
}

// Server configures the HTTP API.
type Server struct {
	Listen string `yaml:"listen"`
}

// OCR configures unit-label extraction from the dial face.
type OCR struct {
	// Enabled turns on OCR of the unit label when the calibration does not
	// name a unit.
	Enabled  bool   `yaml:"enabled"`
	Language string `yaml:"language"`
}

// Default returns the configuration used when no file is given. The gauge
// defaults mirror the common 270° clockwise dial reading 0-10 kg/cm2.
func Default() Config {
	return Config{
		Gauge: gauge.Calibration{
			MinValue: 0,
			MaxValue: 10,
			MinAngle: 225,
			MaxAngle: -45,
			Unit:     "kg/cm2",
		},
		Detector: Detector{
			MinConfidence:         0.5,
			MinKeypointConfidence: gauge.DefaultMinKeypointConf,
			MinRadius:             20,
			MaxRadius:             300,
		},
		Source: Source{
			Type: "image",
		},
		Display: Display{
			Options: annotate.DefaultOptions(),
		},
		Server: Server{
			Listen: ":8787",
		},
		OCR: OCR{
			Language: "eng",
		},
	}
}

// Load reads a YAML config file on top of the defaults. Unknown fields
// are rejected to catch typos; omitted fields keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
