package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-splash/msspectrum"
)

// DeterministicSpectrum generates n ions with a fixed seed for
// reproducibility. m/z values are spread over [0, maxMz) with three decimal
// places and intensities over (0, maxIntensity].
func DeterministicSpectrum(seed int64, n int, maxMz float64, maxIntensity float32) msspectrum.Ions {
	rng := rand.New(rand.NewSource(seed))
	out := make(msspectrum.Ions, n)
	for i := range out {
		mz := float64(int64(rng.Float64()*maxMz*1000)) / 1000
		intensity := (1 - rng.Float32()) * maxIntensity
		out[i] = msspectrum.Ion{Mz: mz, Intensity: intensity}
	}
	return out
}

// Ladder generates n ions at m/z start, start+step, ... with intensities
// 1, 2, ..., n.
func Ladder(start, step float64, n int) msspectrum.Ions {
	out := make(msspectrum.Ions, n)
	for i := range out {
		out[i] = msspectrum.Ion{Mz: start + step*float64(i), Intensity: float32(i + 1)}
	}
	return out
}

// Shuffled returns a permutation of s using a fixed seed. s is not modified.
func Shuffled(seed int64, s msspectrum.Ions) msspectrum.Ions {
	out := make(msspectrum.Ions, len(s))
	copy(out, s)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Reversed returns s in reverse order. s is not modified.
func Reversed(s msspectrum.Ions) msspectrum.Ions {
	out := make(msspectrum.Ions, len(s))
	for i, ion := range s {
		out[len(s)-1-i] = ion
	}
	return out
}

// ScaledIntensities returns s with every intensity multiplied by factor.
func ScaledIntensities(s msspectrum.Ions, factor float32) msspectrum.Ions {
	out := make(msspectrum.Ions, len(s))
	for i, ion := range s {
		out[i] = msspectrum.Ion{Mz: ion.Mz, Intensity: ion.Intensity * factor}
	}
	return out
}
