package scene

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/soocke/camparams-go/domain/camera"
	"github.com/soocke/camparams-go/domain/geom"
)

// Format identifies a snapshot encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, errors.Errorf("unsupported snapshot extension %q", filepath.Ext(path))
	}
}

// Render holds the render target settings of the scene.
type Render struct {
	ResolutionX int `json:"resolution_x" yaml:"resolution_x"`
	ResolutionY int `json:"resolution_y" yaml:"resolution_y"`
}

// DOF holds the depth of field block of a camera.
type DOF struct {
	UseDOF        bool    `json:"use_dof" yaml:"use_dof"`
	FocusDistance float64 `json:"focus_distance" yaml:"focus_distance"`
	ApertureFStop float64 `json:"aperture_fstop" yaml:"aperture_fstop"`
}

// Camera is the serialized active camera. Either MatrixWorld or the
// Location/RotationEuler/Scale triple describes the world transform.
type Camera struct {
	Name          string         `json:"name" yaml:"name"`
	Type          string         `json:"type" yaml:"type"`
	Angle         float64        `json:"angle" yaml:"angle"`
	Lens          float64        `json:"lens" yaml:"lens"`
	SensorFit     string         `json:"sensor_fit" yaml:"sensor_fit"`
	SensorWidth   float64        `json:"sensor_width" yaml:"sensor_width"`
	SensorHeight  float64        `json:"sensor_height" yaml:"sensor_height"`
	MatrixWorld   *[4][4]float64 `json:"matrix_world,omitempty" yaml:"matrix_world,omitempty"`
	Location      [3]float64     `json:"location" yaml:"location"`
	RotationEuler [3]float64     `json:"rotation_euler" yaml:"rotation_euler"`
	Scale         *[3]float64    `json:"scale,omitempty" yaml:"scale,omitempty"`
	DOF           DOF            `json:"dof" yaml:"dof"`
}

// Snapshot is an immutable capture of the host scene state needed for an export.
type Snapshot struct {
	Render Render `json:"render" yaml:"render"`
	Camera Camera `json:"camera" yaml:"camera"`
}

// Load reads a snapshot file, choosing the decoder from its extension.
func Load(path string) (*Snapshot, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open snapshot")
	}
	defer f.Close()
	s, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return s, nil
}

// Decode parses a snapshot from r.
func Decode(r io.Reader, format Format) (*Snapshot, error) {
	s := &Snapshot{}
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(s); err != nil {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown snapshot format %d", format)
	}
	return s, nil
}

// Resolution returns the render target size. Both dimensions must be positive.
func (s *Snapshot) Resolution() (int, int, error) {
	if s.Render.ResolutionX <= 0 || s.Render.ResolutionY <= 0 {
		return 0, 0, errors.Wrapf(camera.ErrInvalidResolution, "snapshot resolution %dx%d", s.Render.ResolutionX, s.Render.ResolutionY)
	}
	return s.Render.ResolutionX, s.Render.ResolutionY, nil
}

// SceneCamera converts the serialized camera into the extractor input.
func (s *Snapshot) SceneCamera() (camera.SceneCamera, error) {
	c := s.Camera
	proj, ok := camera.ParseProjection(c.Type)
	if !ok {
		return camera.SceneCamera{}, errors.Errorf("camera %q: unknown projection type %q", c.Name, c.Type)
	}
	if proj != camera.ProjectionPerspective {
		return camera.SceneCamera{}, errors.Wrapf(camera.ErrUnsupportedProjection, "camera %q is %s", c.Name, proj)
	}
	fit, ok := camera.ParseSensorFit(c.SensorFit)
	if !ok {
		return camera.SceneCamera{}, errors.Errorf("camera %q: unknown sensor fit %q", c.Name, c.SensorFit)
	}
	if c.Angle <= 0 && c.Lens <= 0 {
		return camera.SceneCamera{}, errors.Errorf("camera %q: angle or lens is required", c.Name)
	}
	return camera.SceneCamera{
		Name:         c.Name,
		Projection:   proj,
		World:        c.world(),
		Angle:        c.Angle,
		Lens:         c.Lens,
		SensorFit:    fit,
		SensorWidth:  c.SensorWidth,
		SensorHeight: c.SensorHeight,
		DOF: camera.DepthOfField{
			Enabled:       c.DOF.UseDOF,
			FocusDistance: c.DOF.FocusDistance,
			ApertureFStop: c.DOF.ApertureFStop,
		},
	}, nil
}

func (c Camera) world() mgl64.Mat4 {
	if c.MatrixWorld != nil {
		return geom.MatrixFromRows(*c.MatrixWorld)
	}
	scale := mgl64.Vec3{1, 1, 1}
	if c.Scale != nil {
		scale = *c.Scale
	}
	return geom.ComposeTRS(c.Location, c.RotationEuler, scale)
}
