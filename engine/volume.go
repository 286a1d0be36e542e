package engine

// Volume is a non-negative decimal scalar (§3, §4.C). A zero volume signals
// "fully filled" in fill output.
type Volume struct {
	value Decimal
}

// NewVolume constructs a Volume, rejecting negative inputs (§7 kind 1).
func NewVolume(value Decimal) (Volume, error) {
	if value.IsNegative() {
		return Volume{}, ErrNegativeVolume
	}
	return Volume{value: value}, nil
}

// zeroVolume is the filled/empty sentinel used throughout the matching loop.
var zeroVolume = Volume{value: Decimal{}}

// FloorTo truncates the volume toward -infinity to places fractional
// digits (4.A).
func (v Volume) FloorTo(places int32) Volume {
	return Volume{value: floorTo(v.value, places)}
}

// Add returns v + other.
func (v Volume) Add(other Volume) Volume {
	return Volume{value: v.value.Add(other.value)}
}

// Sub returns v - other. The stored result is never allowed to go negative
// by any caller in this package; delta computations that need a signed
// intermediate use Decimal directly (4.C) instead of going through Volume.
func (v Volume) Sub(other Volume) Volume {
	return Volume{value: v.value.Sub(other.value)}
}

// IsZero reports whether the volume is exactly zero.
func (v Volume) IsZero() bool {
	return v.value.IsZero()
}

// Decimal exposes the underlying decimal value.
func (v Volume) Decimal() Decimal {
	return v.value
}

// MarshalJSON renders the volume as a decimal string with exactly 8
// fractional digits (§6).
func (v Volume) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.value.StringFixed(8) + `"`), nil
}
