package geometry

import (
	"math"
	"testing"

	"github.com/jsheldrick/go-scatter/pkg/bsdf"
	"github.com/jsheldrick/go-scatter/pkg/core"
)

func testMaterial() bsdf.BSDF {
	return bsdf.New(bsdf.TypeDiffuse, core.White)
}

func TestSphereIntersect(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := sphere.Intersect(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("ray through the center should hit")
	}

	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("hit distance: got %f, expected 2.0", hit.T)
	}

	// Normal at the front of the sphere faces the ray
	expectedNormal := core.NewVec3(0, 0, 1)
	if hit.Geom.Normal.Subtract(expectedNormal).Length() > 1e-9 {
		t.Errorf("hit normal: got %v, expected %v", hit.Geom.Normal, expectedNormal)
	}

	// The local frame at the hit is orthonormal
	if math.Abs(hit.Geom.Tangent.Dot(hit.Geom.Normal)) > 1e-9 ||
		math.Abs(hit.Geom.Bitangent.Dot(hit.Geom.Normal)) > 1e-9 {
		t.Error("hit frame is not orthogonal")
	}

	if hit.Material == nil {
		t.Error("hit should carry the sphere's material")
	}
}

func TestSphereMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 0, -1))

	if _, ok := sphere.Intersect(ray, 0.001, math.Inf(1)); ok {
		t.Error("ray far above the sphere should miss")
	}
}

func TestSphereRespectsRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Near intersection at t=2 is excluded, far one at t=4 is found
	hit, ok := sphere.Intersect(ray, 2.5, math.Inf(1))
	if !ok {
		t.Fatal("far intersection should be found")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("hit distance: got %f, expected 4.0", hit.T)
	}

	if _, ok := sphere.Intersect(ray, 0.001, 1.0); ok {
		t.Error("both intersections are beyond tMax, should miss")
	}
}

func TestPlaneIntersect(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), testMaterial())
	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))

	hit, ok := plane.Intersect(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("vertical ray should hit the ground plane")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("hit distance: got %f, expected 2.0", hit.T)
	}

	// Parallel ray misses
	parallel := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))
	if _, ok := plane.Intersect(parallel, 0.001, math.Inf(1)); ok {
		t.Error("parallel ray should miss the plane")
	}
}

func TestSurfaceListNearest(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial())
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5, testMaterial())
	list := SurfaceList{far, near}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := list.Intersect(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("ray should hit both spheres")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("nearest hit: got t=%f, expected 1.5", hit.T)
	}
}
