// Package rotate rotates a sound field in the circular (2-D) harmonic
// domain by a yaw angle around the vertical axis.
//
// Rotating spherical (3-D) harmonics requires Wigner-D style recursions
// and a full pitch/roll/yaw rotation; that is a separate, larger
// component and is not provided here.
//
// A Rotator is a sample-by-sample processor for a single owner: no
// allocation, no locking and no bounds checks on Process. Undersized
// input or output slices are a caller contract violation.
package rotate

import (
	"errors"
	"math"

	"github.com/pampanelson/hoago/pkg/hoa"
)

// ErrBadOrder is returned when a rotator is created with a
// decomposition order below 1.
var ErrBadOrder = errors.New("rotate: decomposition order must be at least 1")

// Rotator rotates a circular harmonic frame by a yaw angle. The cosine
// and sine of the yaw are cached by SetYaw; Process derives the
// rotation of every degree from that single pair through the
// angle-addition recurrence, so the hot path performs no transcendental
// calls.
type Rotator struct {
	order int

	yaw  float64
	cosx float64
	sinx float64
}

// NewRotator creates a rotator for a decomposition order of at least 1,
// with the yaw at 0. The harmonic frame size is 2·order+1.
func NewRotator(order int) (*Rotator, error) {
	if order < 1 {
		return nil, ErrBadOrder
	}
	return &Rotator{order: order, cosx: 1}, nil
}

// DecompositionOrder returns the order the rotator was built for.
func (r *Rotator) DecompositionOrder() int {
	return r.order
}

// NumberOfHarmonics returns the frame size Process expects, 2·order+1.
func (r *Rotator) NumberOfHarmonics() int {
	return hoa.HarmonicCount(r.order)
}

// SetYaw sets the rotation angle in radians and caches its cosine and
// sine. The value need not be wrapped to [0, 2π).
func (r *Rotator) SetYaw(yaw float64) {
	r.yaw = yaw
	r.cosx = math.Cos(yaw)
	r.sinx = math.Sin(yaw)
}

// Yaw returns the rotation angle wrapped into [0, 2π). The wrap walks
// by whole turns, so extreme magnitudes are slow rather than wrong.
func (r *Rotator) Yaw() float64 {
	value := r.yaw
	for value < 0 {
		value += hoa.TwoPi
	}
	for value >= hoa.TwoPi {
		value -= hoa.TwoPi
	}
	return value
}

// Process rotates one harmonic frame. inputs and outputs both need at
// least 2·order+1 samples and may alias the same storage.
//
// The degree-0 harmonic passes through. For each degree l the pair
// (l,-l), (l,l) at indices 2l-1, 2l is rotated by l·yaw:
//
//	out[l,-l] = sin(l·yaw)·in[l,l] + cos(l·yaw)·in[l,-l]
//	out[l,l]  = cos(l·yaw)·in[l,l] - sin(l·yaw)·in[l,-l]
//
// with cos(l·yaw), sin(l·yaw) built incrementally from the cached
// cos(yaw), sin(yaw).
func (r *Rotator) Process(inputs, outputs []float64) {
	cosl := r.cosx
	sinl := r.sinx

	outputs[0] = inputs[0]
	neg, pos := inputs[1], inputs[2]
	outputs[1] = sinl*pos + cosl*neg
	outputs[2] = cosl*pos - sinl*neg
	for l := 2; l <= r.order; l++ {
		cosl, sinl = cosl*r.cosx-sinl*r.sinx, cosl*r.sinx+sinl*r.cosx
		// Read the pair before writing: inputs may alias outputs.
		neg, pos = inputs[2*l-1], inputs[2*l]
		outputs[2*l-1] = sinl*pos + cosl*neg
		outputs[2*l] = cosl*pos - sinl*neg
	}
}
