package msspectrum

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by the normalizer.
var (
	ErrCountOutOfRange = errors.New("msspectrum: count exceeds intensity array length")
	ErrZeroMaximum     = errors.New("msspectrum: maximum intensity is zero")
	ErrScaleOverflow   = errors.New("msspectrum: scaled intensity overflows float32")
)

// MaxIntensity returns the largest of the first count intensities.
// Returns 0 when count is 0. count must not exceed len(values).
func MaxIntensity(values []float32, count int) float32 {
	var maxVal float32
	for i := range count {
		if values[i] > maxVal {
			maxVal = values[i]
		}
	}
	return maxVal
}

// NormalizeIntensity rescales the first count values in place so that their
// maximum equals scale: values[i] = values[i] * scale / max.
//
// Each step is rounded to float32. When count is 0 or every value is zero the
// slice is left untouched and ErrZeroMaximum is returned. Intensities are
// supported up to math.MaxFloat32/scale; a larger maximum leaves the slice
// untouched and returns ErrScaleOverflow.
func NormalizeIntensity(values []float32, count int, scale float32) error {
	if count < 0 || count > len(values) {
		return fmt.Errorf("%w: count %d, length %d", ErrCountOutOfRange, count, len(values))
	}

	maxVal := MaxIntensity(values, count)
	if maxVal == 0 {
		return ErrZeroMaximum
	}
	if math.IsInf(float64(float32(maxVal*scale)), 0) {
		return fmt.Errorf("%w: maximum %v, scale %v", ErrScaleOverflow, maxVal, scale)
	}

	for i := range count {
		scaled := float32(values[i] * scale)
		values[i] = float32(scaled / maxVal)
	}
	return nil
}
