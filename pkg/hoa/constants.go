package hoa

import "math"

// Angle constants used throughout the package and its subpackages.
const (
	// Pi is the half turn in radians.
	Pi = math.Pi
	// TwoPi is the full turn in radians.
	TwoPi = 2.0 * math.Pi
	// HalfPi is the quarter turn in radians.
	HalfPi = math.Pi / 2.0
)
