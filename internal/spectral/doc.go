// Package spectral provides Fourier-space field containers for doubly
// periodic square domains.
//
// The package defines the building blocks the solvers operate on:
//
//   - [Field]: m×m grid of Fourier coefficients for a real scalar field
//   - [Wavenumbers]: angular wavenumber grids in FFT ordering
//   - [Grid]: matching real-space sample coordinates
//
// Transforms follow the numpy convention (unnormalized forward, 1/N
// inverse), so a field built with [FromReal] materializes back to its
// samples via [Field.Real].
//
// # Products
//
// Field algebra is elementwise in mode space, with one exception:
// [Field.Mul] multiplies the two represented fields, which is a pointwise
// product in physical space. It transforms both operands back, multiplies
// on the sample grid, and transforms forward again.
//
// # Thread Safety
//
// Fields are immutable once constructed; every operation returns a new
// Field. Large grids split elementwise loops across row chunks internally.
package spectral
