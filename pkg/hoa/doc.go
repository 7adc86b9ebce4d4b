// Package hoa provides the shared building blocks for Higher-Order
// Ambisonics (HOA) processing: planewave geometry, circular harmonic
// indexing and allocation-free numeric helpers.
//
// The processing stages themselves live in the subpackages vector
// (localization vector analysis) and rotate (sound-field rotation).
package hoa
