package splash

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
)

// fixedPoint returns trunc((value + EpsCorrection) * factor).
//
// The explicit float64 conversions force rounding after each operation so
// the compiler cannot fuse the add and multiply on architectures with FMA.
func fixedPoint(value, factor float64) (int64, error) {
	shifted := float64(value + EpsCorrection)
	scaled := float64(shifted * factor)
	n, err := safecast.Truncate[int64](scaled)
	if err != nil {
		return 0, fmt.Errorf("%w: fixed-point value %v out of range: %v", ErrInvalidInput, value, err)
	}
	return n, nil
}

// formatMz renders an m/z value at MzPrecision decimal places as an integer.
func formatMz(mz float64) (string, error) {
	n, err := fixedPoint(mz, MzPrecisionFactor)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n, 10), nil
}

// formatIntensity renders a relative intensity at IntensityPrecision decimal
// places as an integer.
func formatIntensity(intensity float32) (string, error) {
	n, err := fixedPoint(float64(intensity), IntensityPrecisionFactor)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n, 10), nil
}
