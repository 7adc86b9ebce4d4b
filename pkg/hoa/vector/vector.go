// Package vector computes the energy and velocity localization vectors
// of a decoded sound field for a set of planewaves (loudspeakers).
//
// Both vectors reduce one instantaneous sample per channel to cartesian
// coordinates estimating the perceived source direction: the velocity
// vector from amplitude-weighted direction averaging (low-frequency
// phase cues), the energy vector from power-weighted averaging
// (high-frequency intensity cues). See Gerzon, General metatheory of
// auditory localization, AES Preprint 3306, 1992.
//
// Analyzers are sample-by-sample processors for a single owner: no
// allocation, no locking and no bounds checks on the process methods.
// Undersized input or output slices are a caller contract violation.
package vector

import (
	"errors"

	"github.com/pampanelson/hoago/pkg/hoa"
)

// ErrNilSource is returned when an analyzer is created without a
// planewave source.
var ErrNilSource = errors.New("vector: planewave source is nil")

// Analyzer2D computes the velocity and energy vectors of a planar
// sound field.
//
// The direction caches are zero until ComputeRendering is called, so
// processing before that yields finite but meaningless output.
type Analyzer2D struct {
	source hoa.PlanewaveSource

	abscissa []float64
	ordinate []float64
	square   []float64 // scratch for ProcessEnergy
}

// New2D creates a planar analyzer bound to src. The source must report
// at least one planewave for the lifetime of the analyzer.
func New2D(src hoa.PlanewaveSource) (*Analyzer2D, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	n := src.NumberOfPlanewaves()
	if n < 1 {
		return nil, hoa.ErrNoPlanewaves
	}
	return &Analyzer2D{
		source:   src,
		abscissa: make([]float64, n),
		ordinate: make([]float64, n),
		square:   make([]float64, n),
	}, nil
}

// NumberOfPlanewaves returns the channel count the analyzer was built
// for.
func (a *Analyzer2D) NumberOfPlanewaves() int {
	return len(a.abscissa)
}

// ComputeRendering snapshots the direction cosines from the planewave
// source. Call it once before processing and again after any geometry
// change; geometry changes are not auto-detected.
func (a *Analyzer2D) ComputeRendering() {
	for i := range a.abscissa {
		a.abscissa[i] = a.source.PlanewaveAbscissa(i)
		a.ordinate[i] = a.source.PlanewaveOrdinate(i)
	}
}

// ProcessVelocity computes the velocity vector for one sample frame.
// inputs needs at least NumberOfPlanewaves samples, outputs at least 2
// slots (abscissa, ordinate). When the frame sums to exactly zero the
// output is the zero vector; true silence has no direction.
func (a *Analyzer2D) ProcessVelocity(inputs, outputs []float64) {
	n := len(a.abscissa)
	sum := hoa.Sum(inputs[:n])
	abscissa := hoa.Dot(inputs[:n], a.abscissa)
	ordinate := hoa.Dot(inputs[:n], a.ordinate)
	if sum != 0 {
		outputs[0] = abscissa / sum
		outputs[1] = ordinate / sum
	} else {
		outputs[0] = 0
		outputs[1] = 0
	}
}

// ProcessEnergy computes the energy vector for one sample frame.
// inputs needs at least NumberOfPlanewaves samples, outputs at least 2
// slots. A frame of exact zeroes yields the zero vector.
func (a *Analyzer2D) ProcessEnergy(inputs, outputs []float64) {
	n := len(a.abscissa)
	hoa.Square(a.square, inputs[:n])
	sum := hoa.Sum(a.square)
	abscissa := hoa.Dot(a.square, a.abscissa)
	ordinate := hoa.Dot(a.square, a.ordinate)
	if sum != 0 {
		outputs[0] = abscissa / sum
		outputs[1] = ordinate / sum
	} else {
		outputs[0] = 0
		outputs[1] = 0
	}
}

// Process computes both vectors for one sample frame. outputs needs at
// least 4 slots, arranged velocity abscissa, velocity ordinate, energy
// abscissa, energy ordinate.
func (a *Analyzer2D) Process(inputs, outputs []float64) {
	a.ProcessVelocity(inputs, outputs)
	a.ProcessEnergy(inputs, outputs[2:])
}

// Analyzer3D computes the velocity and energy vectors of a spatial
// sound field. It works like Analyzer2D with a third axis.
type Analyzer3D struct {
	source hoa.PlanewaveSource

	abscissa []float64
	ordinate []float64
	height   []float64
	square   []float64
}

// New3D creates a spatial analyzer bound to src. The source must report
// at least one planewave for the lifetime of the analyzer.
func New3D(src hoa.PlanewaveSource) (*Analyzer3D, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	n := src.NumberOfPlanewaves()
	if n < 1 {
		return nil, hoa.ErrNoPlanewaves
	}
	return &Analyzer3D{
		source:   src,
		abscissa: make([]float64, n),
		ordinate: make([]float64, n),
		height:   make([]float64, n),
		square:   make([]float64, n),
	}, nil
}

// NumberOfPlanewaves returns the channel count the analyzer was built
// for.
func (a *Analyzer3D) NumberOfPlanewaves() int {
	return len(a.abscissa)
}

// ComputeRendering snapshots the direction cosines from the planewave
// source. Call it once before processing and again after any geometry
// change.
func (a *Analyzer3D) ComputeRendering() {
	for i := range a.abscissa {
		a.abscissa[i] = a.source.PlanewaveAbscissa(i)
		a.ordinate[i] = a.source.PlanewaveOrdinate(i)
		a.height[i] = a.source.PlanewaveHeight(i)
	}
}

// ProcessVelocity computes the velocity vector for one sample frame.
// inputs needs at least NumberOfPlanewaves samples, outputs at least 3
// slots (abscissa, ordinate, height).
func (a *Analyzer3D) ProcessVelocity(inputs, outputs []float64) {
	n := len(a.abscissa)
	sum := hoa.Sum(inputs[:n])
	abscissa := hoa.Dot(inputs[:n], a.abscissa)
	ordinate := hoa.Dot(inputs[:n], a.ordinate)
	height := hoa.Dot(inputs[:n], a.height)
	if sum != 0 {
		outputs[0] = abscissa / sum
		outputs[1] = ordinate / sum
		outputs[2] = height / sum
	} else {
		outputs[0] = 0
		outputs[1] = 0
		outputs[2] = 0
	}
}

// ProcessEnergy computes the energy vector for one sample frame.
// inputs needs at least NumberOfPlanewaves samples, outputs at least 3
// slots.
func (a *Analyzer3D) ProcessEnergy(inputs, outputs []float64) {
	n := len(a.abscissa)
	hoa.Square(a.square, inputs[:n])
	sum := hoa.Sum(a.square)
	abscissa := hoa.Dot(a.square, a.abscissa)
	ordinate := hoa.Dot(a.square, a.ordinate)
	height := hoa.Dot(a.square, a.height)
	if sum != 0 {
		outputs[0] = abscissa / sum
		outputs[1] = ordinate / sum
		outputs[2] = height / sum
	} else {
		outputs[0] = 0
		outputs[1] = 0
		outputs[2] = 0
	}
}

// Process computes both vectors for one sample frame. outputs needs at
// least 6 slots, arranged velocity abscissa, ordinate, height, then
// energy abscissa, ordinate, height.
func (a *Analyzer3D) Process(inputs, outputs []float64) {
	a.ProcessVelocity(inputs, outputs)
	a.ProcessEnergy(inputs, outputs[3:])
}
