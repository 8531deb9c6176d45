package splash

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-splash/msspectrum"
)

// Explanation holds the intermediate values behind an identifier.
type Explanation struct {
	ID                  ID
	RelativeIntensities []float32
	Histogram           Histogram
	Encoded             string
}

// Calculate returns the splash identifier of the first count ions of the
// parallel mz and intensity arrays.
//
// The caller's arrays are not modified. count must not exceed either array.
// Empty spectra and spectra whose intensities are all zero are rejected with
// ErrDegenerateSpectrum.
func Calculate(mz []float64, intensity []float32, count int) (string, error) {
	e, err := Explain(mz, intensity, count)
	if err != nil {
		return "", err
	}
	return e.ID.String(), nil
}

// CalculateSpectrum returns the splash identifier of s.
func CalculateSpectrum(s msspectrum.Spectrum) (string, error) {
	if s == nil {
		return "", fmt.Errorf("%w: nil spectrum", ErrInvalidInput)
	}
	return Calculate(s.MzValues(), s.IntensityValues(), s.PointCount())
}

// Explain computes an identifier and keeps the intermediate blocks.
func Explain(mz []float64, intensity []float32, count int) (Explanation, error) {
	if err := validate(mz, intensity, count); err != nil {
		return Explanation{}, err
	}

	rel, err := RelativeIntensities(intensity, count)
	if err != nil {
		return Explanation{}, err
	}

	hist, err := BuildHistogram(mz, rel, count)
	if err != nil {
		return Explanation{}, err
	}
	histBlock, err := hist.Block()
	if err != nil {
		return Explanation{}, err
	}

	encoded, err := EncodeSpectrum(mz, rel, count)
	if err != nil {
		return Explanation{}, err
	}

	return Explanation{
		ID: ID{
			Format:    FormatVersion,
			Algorithm: AlgorithmVersion,
			Histogram: histBlock,
			Hash:      HashBlock(encoded),
		},
		RelativeIntensities: rel,
		Histogram:           hist,
		Encoded:             encoded,
	}, nil
}

// RelativeIntensities returns a copy of the first count intensities scaled
// so that their maximum is RelativeIntensityScale.
func RelativeIntensities(intensity []float32, count int) ([]float32, error) {
	if count < 0 || count > len(intensity) {
		return nil, fmt.Errorf("%w: count %d exceeds %d intensities", ErrInvalidInput, count, len(intensity))
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: no ions", ErrDegenerateSpectrum)
	}

	rel := make([]float32, count)
	copy(rel, intensity[:count])
	err := msspectrum.NormalizeIntensity(rel, count, RelativeIntensityScale)
	switch {
	case errors.Is(err, msspectrum.ErrScaleOverflow):
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrDegenerateSpectrum, err)
	}
	return rel, nil
}

// PrefixBlock returns the version block, e.g. "splash10".
func PrefixBlock() string {
	return Prefix + string([]byte{FormatVersion, AlgorithmVersion})
}

func validate(mz []float64, intensity []float32, count int) error {
	switch {
	case mz == nil:
		return fmt.Errorf("%w: nil m/z array", ErrInvalidInput)
	case intensity == nil:
		return fmt.Errorf("%w: nil intensity array", ErrInvalidInput)
	case count < 0:
		return fmt.Errorf("%w: negative count %d", ErrInvalidInput, count)
	case count > len(mz):
		return fmt.Errorf("%w: count %d exceeds %d m/z values", ErrInvalidInput, count, len(mz))
	case count > len(intensity):
		return fmt.Errorf("%w: count %d exceeds %d intensities", ErrInvalidInput, count, len(intensity))
	case count == 0:
		return fmt.Errorf("%w: no ions", ErrDegenerateSpectrum)
	}

	for i := range count {
		if v := mz[i]; math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: ion %d has m/z %v", ErrInvalidInput, i, v)
		}
		if v := float64(intensity[i]); math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: ion %d has intensity %v", ErrInvalidInput, i, v)
		}
	}
	return nil
}

// join assembles an identifier from its three blocks.
func join(prefix, histogram, hash string) string {
	var sb strings.Builder
	sb.Grow(len(prefix) + len(histogram) + len(hash) + 2*len(BlockSeparator))
	sb.WriteString(prefix)
	sb.WriteString(BlockSeparator)
	sb.WriteString(histogram)
	sb.WriteString(BlockSeparator)
	sb.WriteString(hash)
	return sb.String()
}
