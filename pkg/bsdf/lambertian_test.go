package bsdf

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jsheldrick/go-scatter/pkg/core"
)

// testGeom builds a shading point at the origin with the normal on world +z
func testGeom() core.DifferentialGeom {
	return core.NewDifferentialGeom(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), core.NewVec2(0, 0))
}

// uniformHemisphere maps a 2D sample to a uniform direction on the upper
// hemisphere, density 1/(2π)
func uniformHemisphere(u, v float64) core.Vec3 {
	z := u
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * v
	return core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

func TestLambertianReciprocity(t *testing.T) {
	lambertian := New(TypeDiffuse, core.NewColor(0.8, 0.6, 0.4))
	geom := testGeom()
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		wo := uniformHemisphere(random.Float64(), random.Float64())
		wi := uniformHemisphere(random.Float64(), random.Float64())

		ab := lambertian.Eval(wo, wi, &geom, All)
		ba := lambertian.Eval(wi, wo, &geom, All)

		if ab != ba {
			t.Fatalf("reciprocity violated: Eval(wo,wi)=%v, Eval(wi,wo)=%v", ab, ba)
		}
	}
}

func TestLambertianHemisphereMismatch(t *testing.T) {
	lambertian := New(TypeDiffuse, core.White)
	geom := testGeom()

	wo := core.NewVec3(0, 0, 1)
	wiBelow := core.NewVec3(0.3, 0.1, -0.9).Normalize()

	if got := lambertian.Eval(wo, wiBelow, &geom, All); !got.IsBlack() {
		t.Errorf("cross-hemisphere eval should be black, got %v", got)
	}
	if got := lambertian.Pdf(wo, wiBelow, &geom, All); got != 0 {
		t.Errorf("cross-hemisphere pdf should be 0, got %f", got)
	}
}

func TestLambertianEnergyConservation(t *testing.T) {
	// For a white albedo, ∫ Eval(wo,wi) |cos θ| dwi over the hemisphere
	// should be 1. Estimate with uniform hemisphere sampling, pdf 1/(2π).
	lambertian := New(TypeDiffuse, core.White)
	geom := testGeom()
	random := rand.New(rand.NewSource(42))

	wo := core.NewVec3(0.2, 0.3, 0.8).Normalize()

	n := 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		wi := uniformHemisphere(random.Float64(), random.Float64())
		f := lambertian.Eval(wo, wi, &geom, All)
		sum += f.R * wi.Z * 2 * math.Pi
	}

	integral := sum / float64(n)
	if math.Abs(integral-1.0) > 0.02 {
		t.Errorf("hemispherical reflectance: got %f, expected 1.0", integral)
	}
}

func TestLambertianSamplePdfConsistency(t *testing.T) {
	// Averaging Eval * |cos θ| / Pdf over sampled directions recovers the
	// hemispherical reflectance (the albedo); for white that is 1
	lambertian := New(TypeDiffuse, core.White)
	geom := testGeom()
	random := rand.New(rand.NewSource(42))
	sampler := core.NewRandomSampler(random)

	wo := core.NewVec3(0.1, -0.2, 0.97).Normalize()

	n := 10000
	sum := 0.0
	for i := 0; i < n; i++ {
		result := lambertian.SampleScattered(wo, core.NewScatterSample(sampler), &geom, All)
		if result.Pdf <= 0 {
			t.Fatal("lambertian sampling should never fail for a matching query")
		}

		// The returned pdf must agree with a separate Pdf query
		pdf := lambertian.Pdf(wo, result.In, &geom, All)
		if math.Abs(pdf-result.Pdf) > 1e-12 {
			t.Fatalf("pdf mismatch: sampled %f, queried %f", result.Pdf, pdf)
		}

		f := lambertian.Eval(wo, result.In, &geom, All)
		cosine := math.Abs(result.In.Z)
		sum += f.R * cosine / result.Pdf
	}

	mean := sum / float64(n)
	if math.Abs(mean-1.0) > 1e-9 {
		t.Errorf("sample/pdf consistency: got %f, expected 1.0", mean)
	}
}

func TestLambertianSampleFollowsHemisphere(t *testing.T) {
	lambertian := New(TypeDiffuse, core.White)
	geom := testGeom()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))

	// Outgoing direction below the surface: samples must land below too
	wo := core.NewVec3(0.2, 0.1, -0.95).Normalize()

	for i := 0; i < 100; i++ {
		result := lambertian.SampleScattered(wo, core.NewScatterSample(sampler), &geom, All)
		if result.In.Z >= 0 {
			t.Fatalf("sampled direction should be on wo's side, got %v", result.In)
		}
		if result.SampledType != Reflection|Diffuse {
			t.Fatalf("sampled type: got %v, expected Reflection|Diffuse", result.SampledType)
		}
	}
}

func TestLambertianRejectsForeignQuery(t *testing.T) {
	lambertian := New(TypeDiffuse, core.White)
	geom := testGeom()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))

	wo := core.NewVec3(0, 0, 1)
	result := lambertian.SampleScattered(wo, core.NewScatterSample(sampler), &geom, Transmission|Diffuse)

	if result.Pdf != 0 || !result.Value.IsBlack() {
		t.Errorf("transmission query on a reflector should yield black/0, got %v pdf %f",
			result.Value, result.Pdf)
	}
}
