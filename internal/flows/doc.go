// Package flows builds initial vorticity fields for the classic 2D test
// problems: steady vortex lattices, propagating dipoles, roll-up prone
// shear layers, and band-limited random turbulence.
//
// Every constructor returns a field on an m×m grid over [0, p)². Amplitudes
// set the peak vorticity; lengths are in domain units.
package flows
