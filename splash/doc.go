// Package splash computes the SPLASH spectral hash, a short identifier that
// maps a mass spectrum to the same string on every platform.
//
// An identifier has three dash-separated blocks:
//
//	splash10-0z00000000-f5bf6f6a4a1520a35d4f
//	│       │          └ first 20 hex digits of SHA-256 over the canonical peak list
//	│       └ 10-bin wrapped intensity histogram, one base-36 digit per bin
//	└ "splash" + format version + algorithm version
//
// Intensities are normalized to a relative scale of 100 before either block
// is computed, so the absolute intensity scale of the instrument does not
// matter. The histogram block ignores ion order; the hash block does not.
//
// # Usage
//
//	id, err := splash.Calculate(mz, intensity, len(mz))
//	if err != nil {
//		return err
//	}
//	fmt.Println(id)
//
// The fixed-point encoding truncates (value + 1e-7) * precision rather than
// rounding. That quirk is part of the identifier contract: changing it would
// break compatibility with identifiers already published by other
// implementations.
package splash
