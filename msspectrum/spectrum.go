package msspectrum

// Spectrum is a read-only view over a mass spectrum.
//
// PointCount reports how many leading elements of the two arrays belong to
// the spectrum. Implementations may return arrays longer than PointCount.
type Spectrum interface {
	MzValues() []float64
	IntensityValues() []float32
	PointCount() int
}

// Ion is a single m/z, intensity measurement.
type Ion struct {
	Mz        float64
	Intensity float32
}

// Ions adapts an ordered ion list as a [Spectrum]. Order is preserved.
type Ions []Ion

// MzValues returns a fresh slice of the ion m/z values.
func (s Ions) MzValues() []float64 {
	out := make([]float64, len(s))
	for i, ion := range s {
		out[i] = ion.Mz
	}
	return out
}

// IntensityValues returns a fresh slice of the ion intensities.
func (s Ions) IntensityValues() []float32 {
	out := make([]float32, len(s))
	for i, ion := range s {
		out[i] = ion.Intensity
	}
	return out
}

// PointCount returns the ion count.
func (s Ions) PointCount() int { return len(s) }

// Arrays adapts parallel m/z and intensity slices as a [Spectrum].
//
// Count is taken as-is; callers that want it checked against the slice
// lengths should go through splash.Calculate, which validates.
type Arrays struct {
	Mz        []float64
	Intensity []float32
	Count     int
}

// NewArrays wraps mz and intensity, using len(mz) as the point count.
func NewArrays(mz []float64, intensity []float32) Arrays {
	return Arrays{Mz: mz, Intensity: intensity, Count: len(mz)}
}

// MzValues returns the m/z slice without copying.
func (a Arrays) MzValues() []float64 { return a.Mz }

// IntensityValues returns the intensity slice without copying.
func (a Arrays) IntensityValues() []float32 { return a.Intensity }

// PointCount returns Count.
func (a Arrays) PointCount() int { return a.Count }

// Collect copies the first PointCount ions of s into an [Ions] list.
// It panics if PointCount exceeds either array.
func Collect(s Spectrum) Ions {
	mz := s.MzValues()
	intensity := s.IntensityValues()
	n := s.PointCount()
	out := make(Ions, n)
	for i := range out {
		out[i] = Ion{Mz: mz[i], Intensity: intensity[i]}
	}
	return out
}
