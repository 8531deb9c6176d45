// Package msspectrum holds the minimal mass spectrum model consumed by the
// splash package: a read-only view over m/z and intensity arrays plus the
// relative-intensity normalizer.
//
// The package deliberately knows nothing about feature tables, samples or
// chromatograms. A spectrum is whatever can hand out its two value arrays and
// a point count.
package msspectrum
