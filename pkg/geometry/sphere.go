package geometry

import (
	"math"

	"github.com/jsheldrick/go-scatter/pkg/bsdf"
	"github.com/jsheldrick/go-scatter/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material bsdf.BSDF
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material bsdf.BSDF) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	// Find the nearest intersection point within the valid range
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return Hit{}, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return Hit{
		T:        root,
		Geom:     core.NewDifferentialGeom(point, normal, s.uv(normal)),
		Material: s.Material,
	}, true
}

// uv maps a unit normal to spherical texture coordinates
func (s *Sphere) uv(normal core.Vec3) core.Vec2 {
	theta := math.Acos(-normal.Y)
	phi := math.Atan2(-normal.Z, normal.X) + math.Pi

	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
