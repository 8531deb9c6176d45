package splash

import (
	"fmt"
	"math"

	"fortio.org/safecast"
	"github.com/cwbudde/algo-vecmath"
)

// Histogram is the wrapped intensity profile of a spectrum. Bin b accumulates
// the relative intensity of every ion with floor(mz/100) mod 10 == b.
type Histogram [HistogramBins]float64

// binIndex returns the wrapped histogram bin for an m/z value.
func binIndex(mz float64) (int, error) {
	window, err := safecast.Truncate[int](float64(mz / HistogramBinWidth))
	if err != nil {
		return 0, fmt.Errorf("%w: m/z %v has no histogram window: %v", ErrInvalidInput, mz, err)
	}
	return window % HistogramBins, nil
}

// BuildHistogram bins the first count ions. rel holds relative intensities.
func BuildHistogram(mz []float64, rel []float32, count int) (Histogram, error) {
	var h Histogram
	for i := range count {
		b, err := binIndex(mz[i])
		if err != nil {
			return Histogram{}, err
		}
		h[b] += float64(rel[i])
	}
	return h, nil
}

// Max returns the largest bin value.
func (h Histogram) Max() float64 {
	maxVal := h[0]
	for _, v := range h[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Scaled returns EpsCorrection + HistogramScale*h[b]/max for every bin.
// Returns ErrDegenerateSpectrum when every bin is zero.
func (h Histogram) Scaled() (Histogram, error) {
	maxVal := h.Max()
	if maxVal <= 0 {
		return Histogram{}, fmt.Errorf("%w: histogram maximum is %v", ErrDegenerateSpectrum, maxVal)
	}

	var scaled Histogram
	vecmath.ScaleBlock(scaled[:], h[:], HistogramScale)
	for b := range scaled {
		scaled[b] = float64(EpsCorrection + float64(scaled[b]/maxVal))
	}
	return scaled, nil
}

// Block renders the histogram as its HistogramBins-character block.
func (h Histogram) Block() (string, error) {
	scaled, err := h.Scaled()
	if err != nil {
		return "", err
	}

	var out [HistogramBins]byte
	for b, v := range scaled {
		c, err := histogramChar(v)
		if err != nil {
			return "", fmt.Errorf("bin %d: %w", b, err)
		}
		out[b] = c
	}
	return string(out[:]), nil
}

// histogramChar maps a scaled bin value to its alphabet character.
func histogramChar(v float64) (byte, error) {
	shifted := float64(EpsCorrection + v)
	if math.IsNaN(v) || v < 0 || shifted >= float64(len(histogramAlphabet)) {
		return 0, fmt.Errorf("%w: %v", ErrIndexOverflow, v)
	}
	return histogramAlphabet[int(shifted)], nil
}
