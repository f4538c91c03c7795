package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// ScatterSample carries the random numbers one scattering decision consumes:
// a 2D pair for direction sampling and an independent scalar for discrete
// lobe selection
type ScatterSample struct {
	U, V, W float64
}

// NewScatterSample draws a scatter sample from a sampler
func NewScatterSample(sampler Sampler) ScatterSample {
	uv := sampler.Get2D()
	return ScatterSample{U: uv.X, V: uv.Y, W: sampler.Get1D()}
}

// CosineSampleHemisphere generates a cosine-weighted direction in the local
// frame's upper hemisphere from a 2D sample in [0,1)²
func CosineSampleHemisphere(u, v float64) Vec3 {
	// Map the sample to a point on the unit disk, then project up
	a := 2.0 * math.Pi * u
	r := math.Sqrt(v)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	z := math.Sqrt(math.Max(0, 1.0-v))

	return NewVec3(x, y, z)
}
