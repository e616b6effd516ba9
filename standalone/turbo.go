//go:build !libretro

package standalone

// maxTurbo is the largest fast-forward multiplier.
const maxTurbo = 8

// TurboState holds the fast-forward multiplier: how many driver frames run
// for every window frame. The zero value is normal speed.
type TurboState struct {
	multiplier int
}

// CycleMultiplier advances through Off(1) → 2x → 4x → 8x → Off(1),
// returning the new value.
func (ts *TurboState) CycleMultiplier() int {
	m := ts.Read() * 2
	if m > maxTurbo {
		m = 1
	}
	ts.multiplier = m
	return m
}

// Read returns the current multiplier.
func (ts *TurboState) Read() int {
	if ts.multiplier < 1 {
		return 1
	}
	return ts.multiplier
}

// Reset returns to normal speed.
func (ts *TurboState) Reset() {
	ts.multiplier = 1
}
