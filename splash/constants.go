package splash

// Numeric contract of the splash10 identifier. Changing any of these values
// changes published identifiers and requires a new AlgorithmVersion.
const (
	// Prefix starts every identifier.
	Prefix = "splash"
	// FormatVersion is the identifier layout generation.
	FormatVersion byte = '1'
	// AlgorithmVersion is the hashing algorithm generation.
	AlgorithmVersion byte = '0'

	// BlockSeparator joins the prefix, histogram and hash blocks.
	BlockSeparator = "-"

	// RelativeIntensityScale is the maximum intensity after normalization.
	RelativeIntensityScale float32 = 100

	// HistogramBins is the number of wrapped histogram bins.
	HistogramBins = 10
	// HistogramBinWidth is the m/z width of one histogram window.
	HistogramBinWidth = 100.0
	// HistogramScale is the value the largest bin is scaled to.
	HistogramScale = 35.0

	// EpsCorrection is added before every truncation so that values sitting
	// just below an integer boundary truncate identically everywhere.
	EpsCorrection = 1.0e-7

	// MzPrecision is the fixed-point decimal precision of m/z values.
	MzPrecision = 6
	// MzPrecisionFactor is 10^MzPrecision.
	MzPrecisionFactor = 1e6
	// IntensityPrecision is the fixed-point decimal precision of relative
	// intensities.
	IntensityPrecision = 0
	// IntensityPrecisionFactor is 10^IntensityPrecision.
	IntensityPrecisionFactor = 1.0

	// IonSeparator joins ion tokens in the canonical encoding.
	IonSeparator = " "
	// MzIntensitySeparator splits the two values of an ion token.
	MzIntensitySeparator = ":"

	// HashBlockLength is the number of hex digits kept from the digest.
	HashBlockLength = 20

	// histogramAlphabet maps a scaled bin value to its character.
	histogramAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// PrefixBlockLength is the length of the version block, e.g. "splash10".
const PrefixBlockLength = len(Prefix) + 2

// Length is the length of a complete identifier.
const Length = PrefixBlockLength + len(BlockSeparator) + HistogramBins + len(BlockSeparator) + HashBlockLength
