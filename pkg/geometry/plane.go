package geometry

import (
	"math"

	"github.com/jsheldrick/go-scatter/pkg/bsdf"
	"github.com/jsheldrick/go-scatter/pkg/core"
)

// Plane represents an infinite plane shape
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Unit normal
	Material bsdf.BSDF
	uScale   float64 // World units per texture tile
}

// NewPlane creates a new infinite plane
func NewPlane(point, normal core.Vec3, material bsdf.BSDF) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
		uScale:   1.0,
	}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	denom := p.Normal.Dot(ray.Direction)

	// Ray parallel to the plane
	if math.Abs(denom) < 1e-8 {
		return Hit{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denom
	if t < tMin || t > tMax {
		return Hit{}, false
	}

	point := ray.At(t)
	geom := core.NewDifferentialGeom(point, p.Normal, p.uv(point))

	return Hit{
		T:        t,
		Geom:     geom,
		Material: p.Material,
	}, true
}

// uv projects the hit point onto the plane's tangent axes
func (p *Plane) uv(point core.Vec3) core.Vec2 {
	geom := core.NewDifferentialGeom(p.Point, p.Normal, core.Vec2{})
	local := point.Subtract(p.Point)

	return core.NewVec2(
		local.Dot(geom.Tangent)/p.uScale,
		local.Dot(geom.Bitangent)/p.uScale,
	)
}
