package model

import (
	"github.com/soocke/camparams-go/domain/camera"
	"github.com/soocke/camparams-go/domain/scene"
)

// SceneModel tracks the loaded scene snapshot and the most recent extraction result.
// It is decoupled from the UI; presenters read it and update views.
// The zero value is ready to use.
type SceneModel struct {
	path     string
	snapshot *scene.Snapshot

	params    camera.CameraParameters
	hasParams bool

	lastExport string
}

// NewSceneModel returns a pointer to a ready-to-use SceneModel.
func NewSceneModel() *SceneModel { return &SceneModel{} }

// SetScene replaces the loaded snapshot and clears any previous extraction.
func (m *SceneModel) SetScene(path string, s *scene.Snapshot) {
	if m == nil {
		return
	}
	m.path = path
	m.snapshot = s
	m.params = camera.CameraParameters{}
	m.hasParams = false
}

// Scene returns the loaded snapshot and its path. The snapshot is nil before a load.
func (m *SceneModel) Scene() (string, *scene.Snapshot) {
	if m == nil {
		return "", nil
	}
	return m.path, m.snapshot
}

// Loaded reports whether a snapshot is available for export.
func (m *SceneModel) Loaded() bool { return m != nil && m.snapshot != nil }

// SetParams records the parameters extracted from the current snapshot.
func (m *SceneModel) SetParams(p camera.CameraParameters) {
	if m == nil {
		return
	}
	m.params = p
	m.hasParams = true
}

// ClearParams drops the last extraction, e.g. after a failed preview.
func (m *SceneModel) ClearParams() {
	if m == nil {
		return
	}
	m.params = camera.CameraParameters{}
	m.hasParams = false
}

// Params returns the last extracted parameters, if any.
func (m *SceneModel) Params() (camera.CameraParameters, bool) {
	if m == nil {
		return camera.CameraParameters{}, false
	}
	return m.params, m.hasParams
}

// SetLastExport remembers the path of the last successful export.
func (m *SceneModel) SetLastExport(path string) {
	if m != nil {
		m.lastExport = path
	}
}

// LastExport returns the path of the last successful export, or "".
func (m *SceneModel) LastExport() string {
	if m == nil {
		return ""
	}
	return m.lastExport
}
