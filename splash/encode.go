package splash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// EncodeSpectrum returns the canonical text form hashed into the last block:
// "<mz>:<intensity>" tokens in input order joined by single spaces, where both
// values are fixed-point integers. rel holds relative intensities.
func EncodeSpectrum(mz []float64, rel []float32, count int) (string, error) {
	var sb strings.Builder
	sb.Grow(count * 16)
	for i := range count {
		mzToken, err := formatMz(mz[i])
		if err != nil {
			return "", err
		}
		intensityToken, err := formatIntensity(rel[i])
		if err != nil {
			return "", err
		}

		if i > 0 {
			sb.WriteString(IonSeparator)
		}
		sb.WriteString(mzToken)
		sb.WriteString(MzIntensitySeparator)
		sb.WriteString(intensityToken)
	}
	return sb.String(), nil
}

// HashBlock returns the first HashBlockLength lowercase hex digits of the
// SHA-256 digest of encoded.
func HashBlock(encoded string) string {
	sum := sha256.Sum256([]byte(encoded))
	return hex.EncodeToString(sum[:])[:HashBlockLength]
}
