// Package server exposes the gauge reader over HTTP: submit an image,
// get calibrated readings back, and view or replace the active
// calibration at run time.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/gauge-reader/internal/detect"
	"github.com/ironsheep/gauge-reader/internal/gauge"
)

// Server routes HTTP requests to a gauge Reader and Detector. The
// calibration can be swapped while requests are in flight; reads take a
// consistent snapshot under the lock.
type Server struct {
	mu       sync.RWMutex
	reader   *gauge.Reader
	detector detect.Detector
	log      logrus.FieldLogger
}

// New creates a Server. A nil logger falls back to the standard logger.
func New(reader *gauge.Reader, detector detect.Detector, log logrus.FieldLogger) *Server {
	return &Server{
		reader:   reader,
		detector: detector,
		log:      log,
	}
}

func (s *Server) logger() logrus.FieldLogger {
	if s.log != nil {
		return s.log
	}
	return logrus.StandardLogger()
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(s.logger()))

	router.GET("/healthz", s.getHealth)

	v1 := router.Group("/api/v1")
	v1.POST("/read", s.postRead)
	v1.GET("/calibration", s.getCalibration)
	v1.PUT("/calibration", s.putCalibration)

	return router
}

// Run serves the API on the given address until SIGINT/SIGTERM, then
// shuts down gracefully with a short drain window.
func (s *Server) Run(listen string) error {
	srv := &http.Server{
		Addr:    listen,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger().WithField("listen", listen).Info("gauge reader API listening")

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigc:
		s.logger().WithField("signal", sig.String()).Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// ginLogger routes gin request logs through logrus.
func ginLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		entry := logger.WithFields(logrus.Fields{
			"status":  c.Writer.Status(),
			"method":  c.Request.Method,
			"path":    path,
			"latency": latency.String(),
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		} else if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("request failed")
		} else if c.Writer.Status() >= http.StatusBadRequest {
			entry.Warn("bad request")
		} else {
			entry.Debug("request served")
		}
	}
}
