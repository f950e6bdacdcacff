// Package collab declares the Physics collaborator interface through which
// an Evolver reaches pairwise time steps, drift/kick primitives, leaf
// integrators, and center-of-mass utilities. None of these is implemented
// here: force model, time-step prescription, and leaf-integrator choice are
// all caller concerns, injected at Evolver construction. See package
// collab/testphys for a reference double used by this module's own tests.
package collab
