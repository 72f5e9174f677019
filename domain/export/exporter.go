package export

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/soocke/camparams-go/config"
	"github.com/soocke/camparams-go/domain/camera"
	"github.com/soocke/camparams-go/domain/scene"
)

// Exporter runs a complete export: extract, then write. It holds no state between calls.
type Exporter struct {
	logger *slog.Logger
	cfg    *config.Config
}

// NewExporter returns an Exporter. A nil cfg uses config.DefaultConfig().
func NewExporter(logger *slog.Logger, cfg *config.Config) *Exporter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Exporter{logger: logger, cfg: cfg}
}

func (e *Exporter) options() camera.Options {
	return camera.Options{LegacyHalfFOV: e.cfg.LegacyHalfFOV}
}

// Extract applies the configured options to camera.Extract.
func (e *Exporter) Extract(cam camera.SceneCamera, width, height int) (camera.CameraParameters, error) {
	return camera.Extract(cam, width, height, e.options())
}

// Export extracts parameters from cam and writes them to path. Nothing is written when
// extraction fails.
func (e *Exporter) Export(cam camera.SceneCamera, width, height int, path string) (camera.CameraParameters, error) {
	params, err := e.Extract(cam, width, height)
	if err != nil {
		e.logError("camera extraction failed", err, "camera", cam.Name)
		return params, err
	}
	if err := WriteJSON(params, path, e.cfg.Indent); err != nil {
		e.logError("camera parameter write failed", err, "path", path)
		return params, err
	}
	if e.logger != nil {
		e.logger.Info("camera parameters exported",
			"path", path,
			"camera", cam.Name,
			"fov", params.VerticalFOVInDegrees,
			"legacy_half_fov", e.cfg.LegacyHalfFOV,
		)
	}
	return params, nil
}

// ExportSnapshot loads a scene snapshot file and exports its active camera.
func (e *Exporter) ExportSnapshot(snapshotPath, outPath string) (camera.CameraParameters, error) {
	s, err := scene.Load(snapshotPath)
	if err != nil {
		e.logError("snapshot load failed", err, "path", snapshotPath)
		return camera.CameraParameters{}, err
	}
	return e.ExportFrom(s, outPath)
}

// ExportFrom exports the active camera of an already loaded snapshot.
func (e *Exporter) ExportFrom(s *scene.Snapshot, outPath string) (camera.CameraParameters, error) {
	if s == nil {
		return camera.CameraParameters{}, errors.New("no scene snapshot loaded")
	}
	cam, err := s.SceneCamera()
	if err != nil {
		e.logError("camera extraction failed", err, "camera", s.Camera.Name)
		return camera.CameraParameters{}, err
	}
	w, h, err := s.Resolution()
	if err != nil {
		return camera.CameraParameters{}, err
	}
	return e.Export(cam, w, h, outPath)
}

func (e *Exporter) logError(msg string, err error, args ...any) {
	if e.logger == nil {
		return
	}
	e.logger.Error(msg, append([]any{"error", err}, args...)...)
}
