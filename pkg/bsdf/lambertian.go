package bsdf

import (
	"math"

	"github.com/jsheldrick/go-scatter/pkg/core"
	"github.com/jsheldrick/go-scatter/pkg/texture"
)

const invPi = 1.0 / math.Pi

// Lambertian is an ideal diffuse reflector: incident light scatters equally
// in all directions of the upper hemisphere
type Lambertian struct {
	base
}

// NewLambertian creates an ideal diffuse material with the given surface color source
func NewLambertian(albedo texture.ColorSource) *Lambertian {
	return &Lambertian{base{
		scatterType: Reflection | Diffuse,
		albedo:      albedo,
	}}
}

// evalLocal returns the local-frame BRDF value: the constant 1/π for a
// reflection pair, 0 across the surface
func (l *Lambertian) evalLocal(wo, wi core.Vec3) float64 {
	if !core.SameHemisphere(wo, wi) {
		return 0
	}
	return invPi
}

// pdfLocal returns the cosine-weighted sampling density cos(θ)/π
func (l *Lambertian) pdfLocal(wo, wi core.Vec3) float64 {
	if !core.SameHemisphere(wo, wi) {
		return 0
	}
	return core.AbsCosTheta(wi) * invPi
}

// Eval evaluates the diffuse BRDF for world-space directions
func (l *Lambertian) Eval(woWorld, wiWorld core.Vec3, geom *core.DifferentialGeom, types ScatterType) core.Color {
	types = narrowByHemisphere(woWorld, wiWorld, geom, types)
	if !l.MatchesTypes(types) {
		return core.Black
	}

	wo := geom.WorldToLocal(woWorld)
	wi := geom.WorldToLocal(wiWorld)

	return l.colorAt(geom).Scale(l.evalLocal(wo, wi))
}

// Pdf returns the cosine-weighted density for world-space directions
func (l *Lambertian) Pdf(woWorld, wiWorld core.Vec3, geom *core.DifferentialGeom, types ScatterType) float64 {
	if !l.MatchesTypes(types) {
		return 0
	}

	wo := geom.WorldToLocal(woWorld)
	wi := geom.WorldToLocal(wiWorld)

	return l.pdfLocal(wo, wi)
}

// SampleScattered draws a cosine-weighted direction on wo's side of the surface
func (l *Lambertian) SampleScattered(woWorld core.Vec3, sample core.ScatterSample, geom *core.DifferentialGeom, types ScatterType) SampleResult {
	if !l.MatchesTypes(types) {
		return SampleResult{Value: core.Black}
	}

	wo := geom.WorldToLocal(woWorld)
	wi := core.CosineSampleHemisphere(sample.U, sample.V)

	// Keep the reflection on the same side as the outgoing direction
	if core.CosTheta(wo) < 0 {
		wi.Z = -wi.Z
	}

	return SampleResult{
		In:          geom.LocalToWorld(wi),
		Value:       l.colorAt(geom).Scale(l.evalLocal(wo, wi)),
		Pdf:         l.pdfLocal(wo, wi),
		SampledType: l.scatterType,
	}
}
