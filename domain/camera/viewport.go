package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// ViewportInfo is what a ray tracer derives from a CameraParameters record before
// it starts casting rays.
type ViewportInfo struct {
	ImageWidth     int
	ImageHeight    int
	ViewportWidth  float64
	ViewportHeight float64
	DefocusRadius  float64
	// Orthonormal camera frame: U right, V up, W backwards (from look_at towards look_from).
	U, V, W mgl64.Vec3
}

// Viewport derives the image plane of p using the renderer's conventions: the image
// height is truncated from width / aspect ratio and never drops below one pixel.
func Viewport(p CameraParameters) (ViewportInfo, error) {
	if err := p.Validate(); err != nil {
		return ViewportInfo{}, err
	}
	height := int(float64(p.ImageWidth) / p.AspectRatio)
	if height < 1 {
		height = 1
	}

	w := mgl64.Vec3(p.LookFrom).Sub(mgl64.Vec3(p.LookAt))
	if w.Len() == 0 {
		return ViewportInfo{}, errors.Wrap(ErrInvalidParameters, "look_from equals look_at")
	}
	w = w.Normalize()
	u := mgl64.Vec3(p.VecUp).Cross(w)
	if u.Len() < 1e-12 {
		return ViewportInfo{}, errors.Wrap(ErrInvalidParameters, "vec_up is parallel to the view direction")
	}
	u = u.Normalize()
	v := w.Cross(u)

	h := math.Tan(mgl64.DegToRad(p.VerticalFOVInDegrees) / 2)
	vh := 2 * h * p.FocusDistance
	return ViewportInfo{
		ImageWidth:     p.ImageWidth,
		ImageHeight:    height,
		ViewportHeight: vh,
		ViewportWidth:  vh * float64(p.ImageWidth) / float64(height),
		DefocusRadius:  p.FocusDistance * math.Tan(mgl64.DegToRad(p.DefocusAngleInDegrees)/2),
		U:              u,
		V:              v,
		W:              w,
	}, nil
}
