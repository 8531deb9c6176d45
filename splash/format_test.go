package splash

import (
	"errors"
	"math"
	"testing"
)

func TestFormatMz(t *testing.T) {
	tests := []struct {
		mz   float64
		want string
	}{
		{0, "0"},
		{0.1, "100000"},
		{100, "100000000"},
		{123.4567894, "123456789"},
		// Without the epsilon correction this would truncate to 99999999.
		{99.9999999, "100000000"},
	}
	for _, tc := range tests {
		got, err := formatMz(tc.mz)
		if err != nil {
			t.Fatalf("formatMz(%v): %v", tc.mz, err)
		}
		if got != tc.want {
			t.Errorf("formatMz(%v) = %q, want %q", tc.mz, got, tc.want)
		}
	}
}

func TestFormatIntensityTruncates(t *testing.T) {
	tests := []struct {
		v    float32
		want string
	}{
		{0, "0"},
		{100, "100"},
		{100.0 / 3, "33"},
		{200.0 / 3, "66"},
		{99.99999, "99"},
	}
	for _, tc := range tests {
		got, err := formatIntensity(tc.v)
		if err != nil {
			t.Fatalf("formatIntensity(%v): %v", tc.v, err)
		}
		if got != tc.want {
			t.Errorf("formatIntensity(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestFixedPointOutOfRange(t *testing.T) {
	for _, v := range []float64{1e300, math.Inf(1), math.NaN()} {
		if _, err := fixedPoint(v, MzPrecisionFactor); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("fixedPoint(%v) err = %v, want ErrInvalidInput", v, err)
		}
	}
}
