package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], eps, "component %d: want %v got %v", i, want, got)
	}
}

func TestZUpToYUp_Axes(t *testing.T) {
	assertVec(t, mgl64.Vec3{1, 0, 0}, ZUpToYUp(mgl64.Vec3{1, 0, 0}))
	assertVec(t, mgl64.Vec3{0, 0, -1}, ZUpToYUp(mgl64.Vec3{0, 1, 0}))
	assertVec(t, mgl64.Vec3{0, 1, 0}, ZUpToYUp(mgl64.Vec3{0, 0, 1}))
}

func TestConversionRoundTrip(t *testing.T) {
	samples := []mgl64.Vec3{
		{0, 0, 0},
		{1, 2, 3},
		{-4.5, 0.25, 1e6},
		{math.Pi, -math.E, 0.1},
	}
	for _, v := range samples {
		assertVec(t, v, YUpToZUp(ZUpToYUp(v)))
		assertVec(t, v, ZUpToYUp(YUpToZUp(v)))
	}
}

func TestBasis_Identity(t *testing.T) {
	m := mgl64.Ident4()
	assertVec(t, mgl64.Vec3{}, Translation(m))
	assertVec(t, LocalForward, Forward(m))
	assertVec(t, LocalUp, Up(m))
}

func TestBasis_IgnoresTranslation(t *testing.T) {
	m := mgl64.Translate3D(7, -3, 2)
	assertVec(t, mgl64.Vec3{7, -3, 2}, Translation(m))
	assertVec(t, LocalForward, Forward(m))
	assertVec(t, LocalUp, Up(m))
}

func TestComposeTRS_DefaultCameraPose(t *testing.T) {
	// A camera rotated 90 degrees about X looks along +Y with +Z up.
	m := ComposeTRS(mgl64.Vec3{0, -10, 0}, mgl64.Vec3{math.Pi / 2, 0, 0}, mgl64.Vec3{1, 1, 1})
	assertVec(t, mgl64.Vec3{0, -10, 0}, Translation(m))
	assertVec(t, mgl64.Vec3{0, 1, 0}, Forward(m))
	assertVec(t, mgl64.Vec3{0, 0, 1}, Up(m))
}

func TestComposeTRS_YawAfterPitch(t *testing.T) {
	// Pitch up to the horizon, then yaw 90 degrees: looks along -X.
	m := ComposeTRS(mgl64.Vec3{}, mgl64.Vec3{math.Pi / 2, 0, math.Pi / 2}, mgl64.Vec3{1, 1, 1})
	assertVec(t, mgl64.Vec3{-1, 0, 0}, Forward(m))
	assertVec(t, mgl64.Vec3{0, 0, 1}, Up(m))
}

func TestComposeTRS_ScaleCarriesIntoBasis(t *testing.T) {
	m := ComposeTRS(mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{2, 3, 4})
	assertVec(t, mgl64.Vec3{0, 0, -4}, Forward(m))
	assertVec(t, mgl64.Vec3{0, 3, 0}, Up(m))
}

func TestMatrixFromRows_RowMajor(t *testing.T) {
	m := MatrixFromRows([4][4]float64{
		{1, 0, 0, 5},
		{0, 1, 0, 6},
		{0, 0, 1, 7},
		{0, 0, 0, 1},
	})
	assertVec(t, mgl64.Vec3{5, 6, 7}, Translation(m))
	assert.InDelta(t, 5.0, m.At(0, 3), eps)
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 4, 0}), eps)
}
