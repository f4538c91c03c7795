package bsdf

import (
	"github.com/jsheldrick/go-scatter/pkg/core"
	"github.com/jsheldrick/go-scatter/pkg/texture"
)

// Mirror is an ideal specular reflector. Its lobe is a delta function, so
// Eval and Pdf are identically zero and the only way to use it is through
// SampleScattered.
type Mirror struct {
	base
}

// NewMirror creates an ideal specular material with the given surface color source
func NewMirror(albedo texture.ColorSource) *Mirror {
	return &Mirror{base{
		scatterType: Reflection | Specular,
		albedo:      albedo,
	}}
}

// Eval always returns Black: a delta lobe has zero evaluation density
func (m *Mirror) Eval(woWorld, wiWorld core.Vec3, geom *core.DifferentialGeom, types ScatterType) core.Color {
	return core.Black
}

// Pdf always returns 0, even for the exact mirror direction
func (m *Mirror) Pdf(woWorld, wiWorld core.Vec3, geom *core.DifferentialGeom, types ScatterType) float64 {
	return 0
}

// SampleScattered reflects wo about the local normal with certainty.
// The returned value is divided by |cos θ| so the integrator's cosine term
// cancels and the net throughput equals the surface color.
func (m *Mirror) SampleScattered(woWorld core.Vec3, sample core.ScatterSample, geom *core.DifferentialGeom, types ScatterType) SampleResult {
	if !m.MatchesTypes(types) {
		return SampleResult{Value: core.Black}
	}

	wo := geom.WorldToLocal(woWorld)
	wi := core.NewVec3(-wo.X, -wo.Y, wo.Z)

	return SampleResult{
		In:          geom.LocalToWorld(wi),
		Value:       m.colorAt(geom).Scale(1 / core.AbsCosTheta(wi)),
		Pdf:         1,
		SampledType: m.scatterType,
	}
}
