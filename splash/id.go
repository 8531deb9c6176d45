package splash

import (
	"fmt"
	"strings"
)

// ID is a parsed splash identifier.
type ID struct {
	Format    byte
	Algorithm byte
	Histogram string
	Hash      string
}

// String renders the identifier in its canonical dash-separated form.
func (id ID) String() string {
	return join(Prefix+string([]byte{id.Format, id.Algorithm}), id.Histogram, id.Hash)
}

// HistogramLevels decodes the histogram block into per-bin levels 0..35.
// Characters outside the alphabet decode to -1.
func (id ID) HistogramLevels() []int {
	out := make([]int, len(id.Histogram))
	for i := range len(id.Histogram) {
		out[i] = strings.IndexByte(histogramAlphabet, id.Histogram[i])
	}
	return out
}

// SameHistogram reports whether a and b share the same histogram block.
// Identical histograms are necessary, not sufficient, for identical spectra.
func SameHistogram(a, b ID) bool {
	return a.Histogram == b.Histogram
}

// Parse splits and validates s.
//
// Any single-digit format and algorithm version is accepted so that
// identifiers from other generations can be inspected; the histogram and hash
// block layout is checked against the current generation.
func Parse(s string) (ID, error) {
	parts := strings.Split(s, BlockSeparator)
	if len(parts) != 3 {
		return ID{}, fmt.Errorf("%w: %q: want 3 blocks, got %d", ErrMalformedID, s, len(parts))
	}
	prefix, histogram, hash := parts[0], parts[1], parts[2]

	if len(prefix) != PrefixBlockLength || !strings.HasPrefix(prefix, Prefix) {
		return ID{}, fmt.Errorf("%w: %q: bad prefix block %q", ErrMalformedID, s, prefix)
	}
	format, algorithm := prefix[len(Prefix)], prefix[len(Prefix)+1]
	if !isDigit(format) || !isDigit(algorithm) {
		return ID{}, fmt.Errorf("%w: %q: non-numeric version %q", ErrMalformedID, s, prefix[len(Prefix):])
	}

	if len(histogram) != HistogramBins {
		return ID{}, fmt.Errorf("%w: %q: histogram block has %d characters, want %d", ErrMalformedID, s, len(histogram), HistogramBins)
	}
	for i := range len(histogram) {
		if strings.IndexByte(histogramAlphabet, histogram[i]) < 0 {
			return ID{}, fmt.Errorf("%w: %q: invalid histogram character %q", ErrMalformedID, s, histogram[i])
		}
	}

	if len(hash) != HashBlockLength {
		return ID{}, fmt.Errorf("%w: %q: hash block has %d characters, want %d", ErrMalformedID, s, len(hash), HashBlockLength)
	}
	for i := range len(hash) {
		if !isLowerHex(hash[i]) {
			return ID{}, fmt.Errorf("%w: %q: invalid hash character %q", ErrMalformedID, s, hash[i])
		}
	}

	return ID{Format: format, Algorithm: algorithm, Histogram: histogram, Hash: hash}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLowerHex(c byte) bool { return isDigit(c) || (c >= 'a' && c <= 'f') }
