// Package analysis computes scalar diagnostics of vorticity fields:
// energy, enstrophy, isotropic spectra, RMS norms, and Courant numbers.
//
// Velocity-weighted quantities use the Navier-Stokes streamfunction
// inversion. For other transport operators they remain well-defined
// diagnostics but lose the kinetic-energy interpretation.
package analysis
