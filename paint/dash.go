package paint

import "math"

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash ("on") and gap ("off")
// lengths. Zero-length dashes are allowed: with a round or square cap they
// draw dots.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// An odd-length array is logically repeated to make it even.
	Array []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are made positive. Returns nil if no lengths are given or
// the pattern has no positive length (a period of zero cannot be walked).
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}
	arr := make([]float64, len(lengths))
	var total float64
	for i, l := range lengths {
		arr[i] = math.Abs(l)
		total += arr[i]
	}
	if total <= 0 {
		return nil
	}
	return &Dash{Array: arr}
}

// WithOffset returns a new Dash with the given offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the total length of one complete pattern cycle.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// Intervals returns the even-length on/off sequence the pattern cycles
// through.
func (d *Dash) Intervals() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	out := make([]float64, len(d.Array)*2)
	copy(out, d.Array)
	copy(out[len(d.Array):], d.Array)
	return out
}

// Scale returns a new Dash with all lengths multiplied by factor.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}
	arr := make([]float64, len(d.Array))
	for i, l := range d.Array {
		arr[i] = l * factor
	}
	return &Dash{Array: arr, Offset: d.Offset * factor}
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arr := make([]float64, len(d.Array))
	copy(arr, d.Array)
	return &Dash{Array: arr, Offset: d.Offset}
}
