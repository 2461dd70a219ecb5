package server

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ironsheep/gauge-reader/internal/gauge"
)

// ReadResponse is the JSON body returned by POST /api/v1/read.
type ReadResponse struct {
	Readings []gauge.Reading `json:"readings"`
	Stats    gauge.ReadStats `json:"stats"`
}

func (s *Server) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// postRead accepts an image (multipart field "image", or the raw request
// body) and returns the calibrated readings for every gauge found in it.
// No gauge found is a 200 with an empty readings list, not an error.
func (s *Server) postRead(c *gin.Context) {
	img, err := imageFromRequest(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.RLock()
	reader := s.reader
	detector := s.detector
	s.mu.RUnlock()

	readings, stats, err := reader.ReadImage(detector, img)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ReadResponse{Readings: readings, Stats: stats})
}

func (s *Server) getCalibration(c *gin.Context) {
	s.mu.RLock()
	cal := s.reader.Calibration
	s.mu.RUnlock()

	c.JSON(http.StatusOK, cal)
}

// putCalibration replaces the active calibration. Degenerate calibrations
// (min == max, zero sweep) are accepted; they read as a constant
// MinValue rather than failing.
func (s *Server) putCalibration(c *gin.Context) {
	var cal gauge.Calibration
	if err := c.BindJSON(&cal); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	threshold := s.reader.MinKeypointConf
	log := s.reader.Log
	s.reader = &gauge.Reader{
		Calibration:     cal,
		MinKeypointConf: threshold,
		Log:             log,
	}
	s.mu.Unlock()

	s.logger().WithFields(map[string]interface{}{
		"min_value": cal.MinValue,
		"max_value": cal.MaxValue,
		"min_angle": cal.MinAngle,
		"max_angle": cal.MaxAngle,
		"unit":      cal.Unit,
	}).Info("calibration replaced")

	c.JSON(http.StatusOK, cal)
}

// imageFromRequest decodes the request image from the multipart "image"
// field when present, otherwise from the raw request body.
func imageFromRequest(c *gin.Context) (image.Image, error) {
	if file, err := c.FormFile("image"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload: %w", err)
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode upload: %w", err)
		}
		return img, nil
	}

	img, _, err := image.Decode(c.Request.Body)
	if err != nil {
		return nil, fmt.Errorf("decode request body: %w", err)
	}
	return img, nil
}
