package bsdf

import (
	"math"

	"github.com/jsheldrick/go-scatter/pkg/core"
	"github.com/jsheldrick/go-scatter/pkg/texture"
)

// Glass is an ideal specular dielectric: each sample is either a mirror
// reflection or a refraction through the surface, split by the Fresnel
// reflectance. Both lobes are delta functions, so Eval and Pdf are
// identically zero.
type Glass struct {
	base
	etaI float64 // refractive index on the outside
	etaT float64 // refractive index on the inside
}

// NewGlass creates a specular dielectric with the given surface color source
// and refractive indices for the outside and inside media
func NewGlass(albedo texture.ColorSource, etaI, etaT float64) *Glass {
	return &Glass{
		base: base{
			scatterType: Reflection | Transmission | Specular,
			albedo:      albedo,
		},
		etaI: etaI,
		etaT: etaT,
	}
}

// Eval always returns Black: both lobes are delta functions
func (g *Glass) Eval(woWorld, wiWorld core.Vec3, geom *core.DifferentialGeom, types ScatterType) core.Color {
	return core.Black
}

// Pdf always returns 0, even for a direction SampleScattered produced
func (g *Glass) Pdf(woWorld, wiWorld core.Vec3, geom *core.DifferentialGeom, types ScatterType) float64 {
	return 0
}

// SampleScattered picks the reflection or refraction lobe and returns its
// contribution. When both lobes are requested the choice is made with the
// sample's lobe scalar against prob = 0.5*F + 0.25, which biases sampling
// toward the dominant lobe while keeping both reachable; reflection wins
// iff sample.W < prob, so at exact equality the refraction branch runs.
// Total internal reflection in the refraction branch yields Black with
// pdf 0: the sample contributes nothing.
func (g *Glass) SampleScattered(woWorld core.Vec3, sample core.ScatterSample, geom *core.DifferentialGeom, types ScatterType) SampleResult {
	sampleReflect := types.HasAll(Reflection | Specular)
	sampleRefract := types.HasAll(Transmission | Specular)

	if !sampleReflect && !sampleRefract {
		return SampleResult{Value: core.Black}
	}

	sampleBoth := sampleReflect == sampleRefract

	wo := geom.WorldToLocal(woWorld)

	fresnel := FresnelDielectric(core.CosTheta(wo), g.etaI, g.etaT)
	prob := 0.5*fresnel + 0.25

	if (sampleBoth && sample.W < prob) || (!sampleBoth && sampleReflect) {
		// Reflection lobe
		wi := core.NewVec3(-wo.X, -wo.Y, wo.Z)

		pdf := 1.0
		if sampleBoth {
			pdf = prob
		}

		return SampleResult{
			In:          geom.LocalToWorld(wi),
			Value:       g.colorAt(geom).Scale(fresnel / core.AbsCosTheta(wi)),
			Pdf:         pdf,
			SampledType: Reflection | Specular,
		}
	}

	// Refraction lobe
	entering := core.CosTheta(wo) > 0
	etaI, etaT := g.etaI, g.etaT
	if !entering {
		etaI, etaT = etaT, etaI
	}

	sini2 := core.SinTheta2(wo)
	eta := etaI / etaT
	sint2 := eta * eta * sini2

	if sint2 > 1 {
		// Total internal reflection: no valid refracted direction
		return SampleResult{Value: core.Black}
	}

	cost := math.Sqrt(math.Max(0, 1-sint2))
	if entering {
		// The refracted ray crosses to the opposite hemisphere
		cost = -cost
	}

	wi := core.NewVec3(eta*-wo.X, eta*-wo.Y, cost)

	pdf := 1.0
	if sampleBoth {
		pdf = 1 - prob
	}

	return SampleResult{
		In:          geom.LocalToWorld(wi),
		Value:       g.colorAt(geom).Scale((1 - fresnel) / core.AbsCosTheta(wi)),
		Pdf:         pdf,
		SampledType: Transmission | Specular,
	}
}
