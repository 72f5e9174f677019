package presenter

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/soocke/camparams-go/config"
	"github.com/soocke/camparams-go/domain/camera"
	"github.com/soocke/camparams-go/domain/export"
	"github.com/soocke/camparams-go/domain/scene"
	"github.com/soocke/camparams-go/ui/model"
)

const (
	titleOpen   = "Open Scene Snapshot"
	titleExport = "Export Camera Parameters"

	defaultExportFile = "camera.json"
)

// SceneLoader reads a scene snapshot from disk.
type SceneLoader func(path string) (*scene.Snapshot, error)

// ParamsExporter narrows what the presenter needs from export.Exporter.
type ParamsExporter interface {
	Extract(cam camera.SceneCamera, width, height int) (camera.CameraParameters, error)
	ExportFrom(s *scene.Snapshot, outPath string) (camera.CameraParameters, error)
}

// ExportView is the UI surface driven by ExportPresenter. Dialog methods return ""
// when the user cancels.
type ExportView interface {
	AskScenePath(initialDir string) string
	AskExportPath(initialDir, initialFile string) string
	ShowScene(path, summary string)
	ShowParams(p camera.CameraParameters)
	ClearParams()
	SetStateLabel(text string)
	ReportError(title, msg string)
	ReportInfo(msg string)
}

// ExportPresenter owns the open-scene and export actions of the desktop shell.
type ExportPresenter struct {
	model    *model.SceneModel
	exporter ParamsExporter
	load     SceneLoader
	view     ExportView
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
}

func NewExportPresenter(m *model.SceneModel, exporter ParamsExporter, load SceneLoader, view ExportView, cfg *config.Config, cfgPath string, logger *slog.Logger) *ExportPresenter {
	return &ExportPresenter{model: m, exporter: exporter, load: load, view: view, cfg: cfg, cfgPath: cfgPath, logger: logger}
}

func (p *ExportPresenter) ready() bool {
	return p != nil && p.model != nil && p.exporter != nil && p.load != nil && p.view != nil && p.cfg != nil
}

// OpenScene asks for a snapshot file and loads it.
func (p *ExportPresenter) OpenScene() {
	if !p.ready() {
		return
	}
	dir := "."
	if p.cfg.LastScenePath != "" {
		dir = filepath.Dir(p.cfg.LastScenePath)
	}
	path := p.view.AskScenePath(dir)
	if path == "" {
		return
	}
	p.LoadScene(path)
}

// LoadScene loads the snapshot at path and refreshes the parameter preview.
func (p *ExportPresenter) LoadScene(path string) {
	if !p.ready() {
		return
	}
	s, err := p.load(path)
	if err != nil {
		p.logError("scene load failed", err, "path", path)
		p.view.ReportError(titleOpen, err.Error())
		p.view.SetStateLabel("State: load failed")
		return
	}
	p.model.SetScene(path, s)
	p.view.ShowScene(path, Summarize(s))
	p.cfg.LastScenePath = path
	p.persist()
	p.Refresh()
}

// Refresh re-extracts the preview parameters from the loaded snapshot with the current
// options. Failures only update the state label; they are reported on export.
func (p *ExportPresenter) Refresh() {
	if !p.ready() || !p.model.Loaded() {
		return
	}
	_, s := p.model.Scene()
	params, err := p.preview(s)
	if err != nil {
		p.model.ClearParams()
		p.view.ClearParams()
		p.view.SetStateLabel("State: " + err.Error())
		return
	}
	p.model.SetParams(params)
	p.view.ShowParams(params)
	p.view.SetStateLabel("State: ready")
}

func (p *ExportPresenter) preview(s *scene.Snapshot) (camera.CameraParameters, error) {
	cam, err := s.SceneCamera()
	if err != nil {
		return camera.CameraParameters{}, err
	}
	w, h, err := s.Resolution()
	if err != nil {
		return camera.CameraParameters{}, err
	}
	return p.exporter.Extract(cam, w, h)
}

// Export asks for an output path and writes the parameter file. Errors are shown to the
// user and not retried.
func (p *ExportPresenter) Export() {
	if !p.ready() {
		return
	}
	scenePath, s := p.model.Scene()
	if s == nil {
		p.view.ReportError(titleExport, "No scene snapshot loaded.")
		return
	}
	if _, ok := p.model.Params(); !ok {
		// Preview failed; surface the reason before asking for a path.
		if _, err := p.preview(s); err != nil {
			p.view.ReportError(titleExport, export.Describe(err))
			p.view.SetStateLabel("State: export failed")
			return
		}
	}
	dir, file := p.cfg.LastExportDir, defaultExportFile
	if last := p.model.LastExport(); last != "" {
		dir, file = filepath.Dir(last), filepath.Base(last)
	}
	if dir == "" {
		dir = filepath.Dir(scenePath)
	}
	out := p.view.AskExportPath(dir, file)
	if out == "" {
		p.view.SetStateLabel("State: export cancelled")
		return
	}
	params, err := p.exporter.ExportFrom(s, out)
	if err != nil {
		p.view.ReportError(titleExport, export.Describe(err))
		p.view.SetStateLabel("State: export failed")
		return
	}
	p.model.SetParams(params)
	p.model.SetLastExport(out)
	p.view.ShowParams(params)
	p.view.SetStateLabel("State: exported")
	p.view.ReportInfo(fmt.Sprintf("Camera parameters exported to %s", out))
	p.cfg.LastExportDir = filepath.Dir(out)
	p.persist()
}

func (p *ExportPresenter) persist() {
	if p.cfgPath == "" {
		return
	}
	if err := p.cfg.Save(p.cfgPath); err != nil {
		p.logError("config save failed", err, "path", p.cfgPath)
	}
}

func (p *ExportPresenter) logError(msg string, err error, args ...any) {
	if p.logger == nil {
		return
	}
	p.logger.Error(msg, append([]any{"error", err}, args...)...)
}

// Summarize formats a one-line description of the snapshot's camera and render target.
func Summarize(s *scene.Snapshot) string {
	if s == nil {
		return "<none>"
	}
	name := s.Camera.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("%s (%s) %dx%d", name, s.Camera.Type, s.Render.ResolutionX, s.Render.ResolutionY)
}
