package bsdf

// ScatterType is a bitset classifying scattering lobes: a direction class
// (reflection or transmission) crossed with a spread class (diffuse, glossy
// or specular). Materials advertise one combination and callers filter
// Eval/Pdf/Sample queries with another.
type ScatterType uint32

const (
	Reflection ScatterType = 1 << iota
	Transmission
	Diffuse
	Glossy
	Specular
)

// All matches every lobe
const All = Reflection | Transmission | Diffuse | Glossy | Specular

// Matches reports whether two scatter types are compatible: they must share
// at least one direction bit and at least one spread bit
func (t ScatterType) Matches(query ScatterType) bool {
	return t&query&(Reflection|Transmission) != 0 &&
		t&query&(Diffuse|Glossy|Specular) != 0
}

// HasAll reports whether every bit of sub is set in t
func (t ScatterType) HasAll(sub ScatterType) bool {
	return t&sub == sub
}
