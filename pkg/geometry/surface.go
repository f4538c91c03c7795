package geometry

import (
	"github.com/jsheldrick/go-scatter/pkg/bsdf"
	"github.com/jsheldrick/go-scatter/pkg/core"
)

// Hit describes a ray-surface intersection: the ray parameter, the shading
// point with its local frame, and the surface's material
type Hit struct {
	T        float64
	Geom     core.DifferentialGeom
	Material bsdf.BSDF
}

// Surface is anything a ray can intersect
type Surface interface {
	// Intersect tests the ray against the surface over (tMin, tMax) and
	// returns the nearest hit
	Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool)
}

// SurfaceList intersects a ray against a list of surfaces
type SurfaceList []Surface

// Intersect returns the nearest hit across all surfaces
func (l SurfaceList) Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	var nearest Hit
	found := false
	closest := tMax

	for _, s := range l {
		if hit, ok := s.Intersect(ray, tMin, closest); ok {
			nearest = hit
			closest = hit.T
			found = true
		}
	}

	return nearest, found
}
