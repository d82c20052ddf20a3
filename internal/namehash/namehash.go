// Package namehash derives deterministic pseudo-random values from catalog
// names. The same name always yields the same value, across runs and across
// implementations, so every hash-derived property of a body is reproducible
// from its catalog entry alone. Never replace this with a seeded RNG.
package namehash

// Hash returns the 32-bit rolling hash of a string:
//
//	h = h*31 + byte, mod 2^32
//
// computed over the byte sequence of s. The multiply-by-31 form is the
// unsigned equivalent of (h<<5 - h + c).
func Hash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h<<5 - h + uint32(s[i])
	}
	return h
}

// Unit maps a name to [0, 1) with three decimal digits of resolution:
// |hash mod 1000| / 1000.
func Unit(s string) float64 {
	return float64(Hash(s)%1000) / 1000
}

// Jitter maps a name to [-1, 1), for symmetric perturbations around a base
// value. Scale by the desired amplitude (e.g. 0.15 for ±15%).
func Jitter(s string) float64 {
	return Unit(s)*2 - 1
}
