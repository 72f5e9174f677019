package camera

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedProjection is returned for any camera that is not a perspective camera.
	ErrUnsupportedProjection = errors.New("only perspective cameras are supported")
	// ErrInvalidResolution is returned when the render target has a non-positive dimension.
	ErrInvalidResolution = errors.New("render resolution must be positive")
	// ErrInvalidParameters is returned by Validate for records a renderer cannot consume.
	ErrInvalidParameters = errors.New("invalid camera parameters")
)

// Projection enumerates camera projection types.
type Projection int

const (
	ProjectionPerspective Projection = iota
	ProjectionOrthographic
	ProjectionPanoramic
)

func (p Projection) String() string {
	switch p {
	case ProjectionPerspective:
		return "perspective"
	case ProjectionOrthographic:
		return "orthographic"
	case ProjectionPanoramic:
		return "panoramic"
	default:
		return "unknown"
	}
}

// ParseProjection accepts the host spellings (PERSP, ORTHO, PANO) and the long names.
func ParseProjection(s string) (Projection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "persp", "perspective":
		return ProjectionPerspective, true
	case "ortho", "orthographic":
		return ProjectionOrthographic, true
	case "pano", "panoramic":
		return ProjectionPanoramic, true
	default:
		return 0, false
	}
}

// SensorFit selects which sensor dimension the lens angle is measured against.
type SensorFit int

const (
	SensorFitAuto SensorFit = iota
	SensorFitHorizontal
	SensorFitVertical
)

func (f SensorFit) String() string {
	switch f {
	case SensorFitAuto:
		return "auto"
	case SensorFitHorizontal:
		return "horizontal"
	case SensorFitVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseSensorFit parses AUTO, HORIZONTAL or VERTICAL (case-insensitive). Empty means auto.
func ParseSensorFit(s string) (SensorFit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return SensorFitAuto, true
	case "horizontal":
		return SensorFitHorizontal, true
	case "vertical":
		return SensorFitVertical, true
	default:
		return 0, false
	}
}

// DepthOfField mirrors the host's per-camera DOF settings.
type DepthOfField struct {
	Enabled       bool
	FocusDistance float64
	ApertureFStop float64
}

// SceneCamera is a read-only snapshot of the active scene camera.
// World is the camera's world transform in the Z-up authoring convention.
type SceneCamera struct {
	Name         string
	Projection   Projection
	World        mgl64.Mat4
	Angle        float64 // full lens angle in radians; zero means derive from Lens
	Lens         float64 // focal length in mm
	SensorFit    SensorFit
	SensorWidth  float64 // mm
	SensorHeight float64 // mm
	DOF          DepthOfField
}

// VerticalAngle returns the camera's full lens angle in radians. When no explicit angle
// was captured it is derived from the focal length and the fitted sensor dimension.
func (c SceneCamera) VerticalAngle() float64 {
	if c.Angle > 0 || c.Lens <= 0 {
		return c.Angle
	}
	size := c.SensorWidth
	if c.SensorFit == SensorFitVertical {
		size = c.SensorHeight
	}
	if size <= 0 {
		return 0
	}
	return 2 * math.Atan(size/(2*c.Lens))
}

// CameraParameters is the renderer-ready record written to disk.
// Vectors are in the Y-up renderer convention.
type CameraParameters struct {
	AspectRatio           float64    `json:"aspect_ratio"`
	ImageWidth            int        `json:"image_width"`
	VerticalFOVInDegrees  float64    `json:"vertical_fov_in_degrees"`
	LookFrom              [3]float64 `json:"look_from"`
	LookAt                [3]float64 `json:"look_at"`
	VecUp                 [3]float64 `json:"vec_up"`
	DefocusAngleInDegrees float64    `json:"defocus_angle_in_degrees"`
	FocusDistance         float64    `json:"focus_distance"`
}

// Options tune extraction.
type Options struct {
	// LegacyHalfFOV emits half of the vertical lens angle, matching files written by
	// earlier exporter versions. Renderers reading vertical_fov_in_degrees expect the full angle.
	LegacyHalfFOV bool
}
