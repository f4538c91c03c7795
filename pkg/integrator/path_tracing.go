package integrator

import (
	"math"

	"github.com/jsheldrick/go-scatter/pkg/bsdf"
	"github.com/jsheldrick/go-scatter/pkg/core"
	"github.com/jsheldrick/go-scatter/pkg/scene"
)

// Config controls path termination
type Config struct {
	MaxDepth             int // Hard bounce limit
	RussianRouletteDepth int // Depth after which paths may terminate early
}

// DefaultConfig returns reasonable termination settings
func DefaultConfig() Config {
	return Config{MaxDepth: 16, RussianRouletteDepth: 4}
}

// PathTracer implements unidirectional path tracing over the BSDF
// sampling protocol
type PathTracer struct {
	config Config
}

// NewPathTracer creates a new path tracer
func NewPathTracer(config Config) *PathTracer {
	return &PathTracer{config: config}
}

// RayColor computes the radiance carried back along a single camera ray.
// Each bounce draws one scattered direction from the surface BSDF and
// accumulates f * |cosθ| / pdf into the path throughput. Delta lobes fold
// into the same update because their sampled value pre-divides by the
// cosine.
func (pt *PathTracer) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Color {
	color := core.Black
	throughput := core.White

	for depth := 0; depth < pt.config.MaxDepth; depth++ {
		hit, ok := sc.Surfaces.Intersect(ray, 0.001, math.Inf(1))
		if !ok {
			color = color.Add(throughput.Mul(sc.Background(ray)))
			break
		}

		wo := ray.Direction.Negate().Normalize()
		result := hit.Material.SampleScattered(wo, core.NewScatterSample(sampler), &hit.Geom, bsdf.All)

		// Zero pdf or black value means this sample contributes nothing
		if result.Pdf == 0 || result.Value.IsBlack() {
			break
		}

		cosine := core.AbsCosTheta(hit.Geom.WorldToLocal(result.In))
		weight := result.Value.Scale(cosine / result.Pdf)

		// Grazing cosines can blow up a delta lobe's 1/|cosθ| value
		if !weight.IsFinite() {
			break
		}

		throughput = throughput.Mul(weight)

		if depth >= pt.config.RussianRouletteDepth {
			q := math.Max(0.05, 1.0-throughput.Luminance())
			if sampler.Get1D() < q {
				break
			}
			throughput = throughput.Scale(1.0 / (1.0 - q))
		}

		ray = core.NewRay(hit.Geom.Point, result.In)
	}

	return color
}
