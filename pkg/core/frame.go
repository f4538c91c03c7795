package core

import (
	"math"
)

// Shading-frame helpers operate on directions expressed in a local frame
// whose z axis is the surface normal. Degenerate (near-zero) vectors pass
// through unguarded; callers divide by cosines at their own risk.

// CosTheta returns the cosine of the angle between w and the local normal
func CosTheta(w Vec3) float64 {
	return w.Z
}

// AbsCosTheta returns the absolute cosine of the angle between w and the local normal
func AbsCosTheta(w Vec3) float64 {
	return math.Abs(w.Z)
}

// SinTheta2 returns the squared sine of the angle between w and the local normal
func SinTheta2(w Vec3) float64 {
	return math.Max(0, 1-w.Z*w.Z)
}

// SameHemisphere reports whether two local directions lie on the same side of the surface
func SameHemisphere(a, b Vec3) bool {
	return a.Z*b.Z > 0
}

// DifferentialGeom describes a shading point: position, UV, and an
// orthonormal local frame whose z axis is the geometric normal
type DifferentialGeom struct {
	Point     Vec3
	Normal    Vec3 // geometric normal, unit length
	Tangent   Vec3
	Bitangent Vec3
	UV        Vec2
}

// NewDifferentialGeom builds a shading point with an orthonormal basis
// completed around the given unit normal
func NewDifferentialGeom(point, normal Vec3, uv Vec2) DifferentialGeom {
	// Find a vector not parallel to the normal
	var nt Vec3
	if math.Abs(normal.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}

	tangent := nt.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	return DifferentialGeom{
		Point:     point,
		Normal:    normal,
		Tangent:   tangent,
		Bitangent: bitangent,
		UV:        uv,
	}
}

// WorldToLocal transforms a world-space direction into the local frame
func (d *DifferentialGeom) WorldToLocal(v Vec3) Vec3 {
	return Vec3{
		X: v.Dot(d.Tangent),
		Y: v.Dot(d.Bitangent),
		Z: v.Dot(d.Normal),
	}
}

// LocalToWorld transforms a local-frame direction back into world space
func (d *DifferentialGeom) LocalToWorld(v Vec3) Vec3 {
	return d.Tangent.Multiply(v.X).
		Add(d.Bitangent.Multiply(v.Y)).
		Add(d.Normal.Multiply(v.Z))
}
