package bsdf

import (
	"math"
)

// FresnelDielectric computes unpolarized reflectance at a dielectric
// interface. cosi is the cosine between the incident direction and the
// normal; etai and etat are the refractive indices on the incident and
// transmitted sides for a ray entering the surface. A non-positive cosine
// means the ray is exiting, and the indices are swapped internally.
func FresnelDielectric(cosi, etai, etat float64) float64 {
	cosi = math.Max(-1, math.Min(1, cosi))

	entering := cosi > 0
	if !entering {
		etai, etat = etat, etai
	}

	sint := etai / etat * math.Sqrt(math.Max(0, 1-cosi*cosi))
	if sint >= 1 {
		// Total internal reflection
		return 1
	}

	cost := math.Sqrt(math.Max(0, 1-sint*sint))
	cosi = math.Abs(cosi)

	para := (etat*cosi - etai*cost) / (etat*cosi + etai*cost)
	perp := (etai*cosi - etat*cost) / (etai*cosi + etat*cost)

	return (para*para + perp*perp) / 2
}
