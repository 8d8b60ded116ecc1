package rng

import "fmt"

// Generator names accepted by NewFromName, as used in CLI flags and config
// files.
const (
	NameMiddleSquareWeyl = "msws"
	NamePCG32XSHRS       = "pcg32-xsh-rs"
	NamePCG32XSHRR       = "pcg32-xsh-rr"
	NameXoroshiro128PP   = "xoroshiro128pp"
)

// Names lists the recognised generator names.
func Names() []string {
	return []string{NameMiddleSquareWeyl, NamePCG32XSHRS, NamePCG32XSHRR, NameXoroshiro128PP}
}

// NewFromName constructs a seeded generator by name.
func NewFromName(name string, seed uint64) (Splittable, error) {
	switch name {
	case NameMiddleSquareWeyl:
		return NewMiddleSquareWeyl(seed), nil
	case NamePCG32XSHRS:
		return NewPCG32(XSHRS, seed), nil
	case NamePCG32XSHRR:
		return NewPCG32(XSHRR, seed), nil
	case NameXoroshiro128PP:
		return NewXoroshiro128PP(seed), nil
	default:
		return nil, fmt.Errorf("rng: unknown generator %q", name)
	}
}
