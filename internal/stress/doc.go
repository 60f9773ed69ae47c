// Package stress models the 2D remote stress state used by the inversion.
//
// A remote stress is parameterized by (θ, k): θ in degrees orients the
// tensor, k in [0,1] is the stress ratio (0 = uniaxial, 1 = isotropic).
// The package builds the symmetric tensor for a parameter point and derives
// its principal directions S1 (larger eigenvalue) and S3 (smaller eigenvalue)
// in closed form, with no allocation.
package stress
