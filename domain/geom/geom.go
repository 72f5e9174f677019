package geom

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Local camera axes in the authoring tool's camera space. Cameras look down -Z with +Y up.
var (
	LocalForward = mgl64.Vec3{0, 0, -1}
	LocalUp      = mgl64.Vec3{0, 1, 0}
)

// ZUpToYUp converts a Z-up right-handed vector into the Y-up renderer convention.
// (x, y, z) -> (x, z, -y)
func ZUpToYUp(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[2], -v[1]}
}

// YUpToZUp is the inverse of ZUpToYUp.
// (x, y, z) -> (x, -z, y)
func YUpToZUp(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], -v[2], v[1]}
}

// Translation returns the world position encoded in m.
func Translation(m mgl64.Mat4) mgl64.Vec3 {
	return m.Col(3).Vec3()
}

// Forward applies the rotation/scale part of m to the local forward axis.
func Forward(m mgl64.Mat4) mgl64.Vec3 {
	return m.Mat3().Mul3x1(LocalForward)
}

// Up applies the rotation/scale part of m to the local up axis.
func Up(m mgl64.Mat4) mgl64.Vec3 {
	return m.Mat3().Mul3x1(LocalUp)
}

// ComposeTRS builds a world matrix from a location, an XYZ Euler rotation in radians and a
// per-axis scale. XYZ order rotates about X first, then Y, then Z.
func ComposeTRS(location, rotation, scale mgl64.Vec3) mgl64.Mat4 {
	t := mgl64.Translate3D(location[0], location[1], location[2])
	r := mgl64.HomogRotate3DZ(rotation[2]).
		Mul4(mgl64.HomogRotate3DY(rotation[1])).
		Mul4(mgl64.HomogRotate3DX(rotation[0]))
	s := mgl64.Scale3D(scale[0], scale[1], scale[2])
	return t.Mul4(r).Mul4(s)
}

// MatrixFromRows reads a row-major 4x4 matrix, the layout the authoring tool prints.
func MatrixFromRows(rows [4][4]float64) mgl64.Mat4 {
	return mgl64.Mat4FromRows(
		mgl64.Vec4(rows[0]),
		mgl64.Vec4(rows[1]),
		mgl64.Vec4(rows[2]),
		mgl64.Vec4(rows[3]),
	)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b mgl64.Vec3) float64 {
	return b.Sub(a).Len()
}
