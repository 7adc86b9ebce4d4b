package hoa

import (
	"errors"
	"math"
)

// ErrNoPlanewaves is returned when a planewave set or a processor bound
// to one is created with zero channels.
var ErrNoPlanewaves = errors.New("hoa: planewave count must be at least 1")

// PlanewaveSource provides, per channel index, the unit-direction
// cosines of a set of planewaves (loudspeakers). Consumers snapshot
// these values explicitly; a source is free to recompute them on every
// call.
//
// For planar layouts PlanewaveHeight is expected to return 0.
type PlanewaveSource interface {
	// NumberOfPlanewaves returns the channel count, at least 1.
	NumberOfPlanewaves() int
	// PlanewaveAbscissa returns the x component of channel i's unit
	// direction.
	PlanewaveAbscissa(i int) float64
	// PlanewaveOrdinate returns the y component of channel i's unit
	// direction.
	PlanewaveOrdinate(i int) float64
	// PlanewaveHeight returns the z component of channel i's unit
	// direction.
	PlanewaveHeight(i int) float64
}

// PlanewaveSet is a concrete PlanewaveSource describing a set of
// planewaves by azimuth and elevation, with a global rotation offset
// applied to every azimuth.
//
// Convention: azimuth 0 points along the positive abscissa and grows
// counterclockwise; elevation 0 is the horizontal plane, so
// height = sin(elevation). New sets default to an even ring in the
// horizontal plane, azimuth 2π·i/count.
type PlanewaveSet struct {
	azimuths   []float64
	elevations []float64
	offset     float64
}

// NewPlanewaveSet creates a set of count planewaves spread evenly on
// the horizontal circle. The count must be at least 1.
func NewPlanewaveSet(count int) (*PlanewaveSet, error) {
	if count < 1 {
		return nil, ErrNoPlanewaves
	}
	set := &PlanewaveSet{
		azimuths:   make([]float64, count),
		elevations: make([]float64, count),
	}
	for i := 0; i < count; i++ {
		set.azimuths[i] = TwoPi * float64(i) / float64(count)
	}
	return set, nil
}

// NumberOfPlanewaves returns the channel count.
func (ps *PlanewaveSet) NumberOfPlanewaves() int {
	return len(ps.azimuths)
}

// SetAzimuth sets channel i's azimuth in radians.
func (ps *PlanewaveSet) SetAzimuth(i int, azimuth float64) {
	ps.azimuths[i] = azimuth
}

// Azimuth returns channel i's azimuth in radians.
func (ps *PlanewaveSet) Azimuth(i int) float64 {
	return ps.azimuths[i]
}

// SetElevation sets channel i's elevation in radians.
func (ps *PlanewaveSet) SetElevation(i int, elevation float64) {
	ps.elevations[i] = elevation
}

// Elevation returns channel i's elevation in radians.
func (ps *PlanewaveSet) Elevation(i int) float64 {
	return ps.elevations[i]
}

// SetRotation sets the rotation offset added to every azimuth.
func (ps *PlanewaveSet) SetRotation(offset float64) {
	ps.offset = offset
}

// Rotation returns the rotation offset.
func (ps *PlanewaveSet) Rotation() float64 {
	return ps.offset
}

// PlanewaveAbscissa returns cos(azimuth+offset)·cos(elevation) for
// channel i.
func (ps *PlanewaveSet) PlanewaveAbscissa(i int) float64 {
	return math.Cos(ps.azimuths[i]+ps.offset) * math.Cos(ps.elevations[i])
}

// PlanewaveOrdinate returns sin(azimuth+offset)·cos(elevation) for
// channel i.
func (ps *PlanewaveSet) PlanewaveOrdinate(i int) float64 {
	return math.Sin(ps.azimuths[i]+ps.offset) * math.Cos(ps.elevations[i])
}

// PlanewaveHeight returns sin(elevation) for channel i.
func (ps *PlanewaveSet) PlanewaveHeight(i int) float64 {
	return math.Sin(ps.elevations[i])
}
