package bsdf

import (
	"fmt"

	"github.com/jsheldrick/go-scatter/pkg/core"
	"github.com/jsheldrick/go-scatter/pkg/texture"
)

// Type identifies which scattering model a material uses
type Type int

const (
	TypeDiffuse Type = iota
	TypeMirror
	TypeGlass
	TypePrincipled
)

// String returns the material type name
func (t Type) String() string {
	switch t {
	case TypeDiffuse:
		return "diffuse"
	case TypeMirror:
		return "mirror"
	case TypeGlass:
		return "glass"
	case TypePrincipled:
		return "principled"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// SampleResult carries one scattered direction together with its BSDF value,
// sampling density and the lobe it was drawn from. A zero Pdf with a Black
// Value means sampling was impossible for the requested query.
type SampleResult struct {
	In          core.Vec3 // sampled incident direction, world space
	Value       core.Color
	Pdf         float64
	SampledType ScatterType
}

// BSDF is the scattering contract shared by all material variants.
// Instances are immutable after construction and safe for concurrent use
// across shading threads.
type BSDF interface {
	// ScatterType returns the material's intrinsic lobe classification
	ScatterType() ScatterType

	// MatchesTypes reports whether the material can answer the given query
	MatchesTypes(types ScatterType) bool

	// Eval evaluates the BSDF for world-space outgoing/incident directions
	// at a shading point, already multiplied by the surface color. Delta
	// lobes always evaluate to Black.
	Eval(woWorld, wiWorld core.Vec3, geom *core.DifferentialGeom, types ScatterType) core.Color

	// Pdf returns the sampling density for the given direction pair.
	// Delta lobes always return 0, including for a direction that
	// SampleScattered just produced: the value/pdf pair returned by
	// SampleScattered is the only way to use a specular lobe.
	Pdf(woWorld, wiWorld core.Vec3, geom *core.DifferentialGeom, types ScatterType) float64

	// SampleScattered draws one incident direction for the given outgoing
	// direction and returns its contribution
	SampleScattered(woWorld core.Vec3, sample core.ScatterSample, geom *core.DifferentialGeom, types ScatterType) SampleResult
}

// base holds the state every material variant shares: the intrinsic scatter
// type and the surface color source
type base struct {
	scatterType ScatterType
	albedo      texture.ColorSource
}

func (b *base) ScatterType() ScatterType {
	return b.scatterType
}

func (b *base) MatchesTypes(types ScatterType) bool {
	return b.scatterType.Matches(types)
}

// colorAt samples the surface color at the shading point
func (b *base) colorAt(geom *core.DifferentialGeom) core.Color {
	return b.albedo.Evaluate(geom.UV, geom.Point)
}

// narrowByHemisphere strips the lobe bits a direction pair cannot produce:
// directions on the same side of the surface cannot be a transmission, and
// directions on opposite sides cannot be a reflection
func narrowByHemisphere(woWorld, wiWorld core.Vec3, geom *core.DifferentialGeom, types ScatterType) ScatterType {
	if woWorld.Dot(geom.Normal)*wiWorld.Dot(geom.Normal) > 0 {
		return types &^ Transmission
	}
	return types &^ Reflection
}

// New constructs a material variant with a constant surface color.
// Unrecognized or unsupported tags are a programming error and panic.
func New(typ Type, color core.Color) BSDF {
	switch typ {
	case TypeDiffuse:
		return NewLambertian(texture.NewSolidColor(color))
	case TypeMirror:
		return NewMirror(texture.NewSolidColor(color))
	case TypeGlass:
		return NewGlass(texture.NewSolidColor(color), 1.0, 1.5)
	}
	panic(fmt.Sprintf("bsdf: unsupported material type %v", typ))
}

// NewTextured constructs a material variant whose surface color comes from
// an image file. Unrecognized or unsupported tags panic; an unreadable
// image is a configuration error and is returned to the caller.
func NewTextured(typ Type, texPath string) (BSDF, error) {
	tex, err := texture.LoadImageTexture(texPath)
	if err != nil {
		return nil, err
	}

	switch typ {
	case TypeDiffuse:
		return NewLambertian(tex), nil
	case TypeMirror:
		return NewMirror(tex), nil
	case TypeGlass:
		return NewGlass(tex, 1.0, 1.5), nil
	}
	panic(fmt.Sprintf("bsdf: unsupported material type %v", typ))
}
