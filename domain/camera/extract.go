package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/soocke/camparams-go/domain/geom"
)

// Extract converts a scene camera and render resolution into renderer parameters.
//
// The projection is checked before any transform work. Vectors are read in the Z-up
// authoring convention and emitted in the Y-up renderer convention; focus distance is a
// scalar length and is never converted.
func Extract(cam SceneCamera, imageWidth, imageHeight int, opts Options) (CameraParameters, error) {
	if cam.Projection != ProjectionPerspective {
		return CameraParameters{}, errors.Wrapf(ErrUnsupportedProjection, "camera %q is %s", cam.Name, cam.Projection)
	}
	if imageWidth <= 0 || imageHeight <= 0 {
		return CameraParameters{}, errors.Wrapf(ErrInvalidResolution, "got %dx%d", imageWidth, imageHeight)
	}

	fov := mgl64.RadToDeg(cam.VerticalAngle())
	if opts.LegacyHalfFOV {
		fov /= 2
	}

	lookFrom := geom.Translation(cam.World)
	forward := geom.Forward(cam.World)
	up := geom.Up(cam.World)
	lookAt := lookFrom.Add(forward)

	upConv := geom.ZUpToYUp(up)
	if upConv.Len() == 0 {
		return CameraParameters{}, errors.Wrapf(ErrInvalidParameters, "camera %q has a degenerate up axis", cam.Name)
	}

	var focus, defocus float64
	if cam.DOF.Enabled {
		focus = cam.DOF.FocusDistance
		defocus = DefocusAngle(cam.DOF.ApertureFStop)
	} else {
		focus = geom.Distance(lookFrom, lookAt)
	}

	return CameraParameters{
		AspectRatio:           float64(imageWidth) / float64(imageHeight),
		ImageWidth:            imageWidth,
		VerticalFOVInDegrees:  fov,
		LookFrom:              geom.ZUpToYUp(lookFrom),
		LookAt:                geom.ZUpToYUp(lookAt),
		VecUp:                 upConv.Normalize(),
		DefocusAngleInDegrees: defocus,
		FocusDistance:         focus,
	}, nil
}

// DefocusAngle approximates the thin-lens cone angle for an f-number, in degrees.
// Non-positive f-numbers disable defocus.
func DefocusAngle(fstop float64) float64 {
	if fstop <= 0 {
		return 0
	}
	return mgl64.RadToDeg(math.Atan(1 / (2 * fstop)))
}

// Validate reports whether p can be consumed by a renderer.
func (p CameraParameters) Validate() error {
	if p.ImageWidth <= 0 {
		return errors.Wrapf(ErrInvalidParameters, "image_width %d", p.ImageWidth)
	}
	if !(p.AspectRatio > 0) || math.IsInf(p.AspectRatio, 0) {
		return errors.Wrapf(ErrInvalidParameters, "aspect_ratio %v", p.AspectRatio)
	}
	scalars := map[string]float64{
		"vertical_fov_in_degrees":  p.VerticalFOVInDegrees,
		"defocus_angle_in_degrees": p.DefocusAngleInDegrees,
		"focus_distance":           p.FocusDistance,
	}
	for k, v := range scalars {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidParameters, "%s is not finite", k)
		}
	}
	for k, v := range map[string][3]float64{"look_from": p.LookFrom, "look_at": p.LookAt, "vec_up": p.VecUp} {
		for _, c := range v {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return errors.Wrapf(ErrInvalidParameters, "%s is not finite", k)
			}
		}
	}
	if n := mgl64.Vec3(p.VecUp).Len(); math.Abs(n-1) > 1e-6 {
		return errors.Wrapf(ErrInvalidParameters, "vec_up length %v, want 1", n)
	}
	return nil
}
