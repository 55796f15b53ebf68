// Package registry maps region keys used on the command line and in plan
// files (e.g. "us", "eu") to the vehicle.Factory that serves them.
//
// Region modules register themselves at startup. Registering the same key
// twice is a programmer error and panics, so a mismatch between compiled
// modules is caught before any vehicle is built.
package registry
