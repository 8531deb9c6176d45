// Package specio reads and writes spectra in the SPLASH exchange text form.
//
// A peak list is a whitespace-separated sequence of "mz:intensity" tokens:
//
//	100.0:1 101.0:2 102.0:3
//
// Record streams carry one spectrum per line, optionally preceded by an
// identifier and followed by an expected splash, separated by tabs or commas.
package specio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-splash/msspectrum"
)

// ErrMalformedPeak is returned for tokens that are not "mz:intensity".
var ErrMalformedPeak = errors.New("specio: malformed peak")

const peakSeparator = ":"

// ParsePeaks parses a peak list. An empty or blank string yields an empty,
// non-nil spectrum.
func ParsePeaks(s string) (msspectrum.Ions, error) {
	fields := strings.Fields(s)
	out := make(msspectrum.Ions, 0, len(fields))
	for i, tok := range fields {
		ion, err := parsePeak(tok)
		if err != nil {
			return nil, fmt.Errorf("peak %d: %w", i, err)
		}
		out = append(out, ion)
	}
	return out, nil
}

func parsePeak(tok string) (msspectrum.Ion, error) {
	mzText, intensityText, ok := strings.Cut(tok, peakSeparator)
	if !ok {
		return msspectrum.Ion{}, fmt.Errorf("%w: %q has no %q", ErrMalformedPeak, tok, peakSeparator)
	}
	mz, err := strconv.ParseFloat(mzText, 64)
	if err != nil {
		return msspectrum.Ion{}, fmt.Errorf("%w: m/z %q: %v", ErrMalformedPeak, mzText, err)
	}
	intensity, err := strconv.ParseFloat(intensityText, 32)
	if err != nil {
		return msspectrum.Ion{}, fmt.Errorf("%w: intensity %q: %v", ErrMalformedPeak, intensityText, err)
	}
	return msspectrum.Ion{Mz: mz, Intensity: float32(intensity)}, nil
}

// FormatPeaks renders ions as a peak list using the shortest representation
// that parses back to the same values.
func FormatPeaks(ions msspectrum.Ions) string {
	var sb strings.Builder
	for i, ion := range ions {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(ion.Mz, 'f', -1, 64))
		sb.WriteString(peakSeparator)
		sb.WriteString(strconv.FormatFloat(float64(ion.Intensity), 'f', -1, 32))
	}
	return sb.String()
}
