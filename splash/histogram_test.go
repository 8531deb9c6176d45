package splash

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-splash/internal/testutil"
)

func TestBinIndexWraparound(t *testing.T) {
	tests := []struct {
		mz   float64
		want int
	}{
		{0, 0},
		{99.999, 0},
		{100, 1},
		{150, 1},
		{1150, 1},
		{999.9, 9},
		{1000, 0},
		{12345.6, 3},
	}
	for _, tc := range tests {
		got, err := binIndex(tc.mz)
		if err != nil {
			t.Fatalf("binIndex(%v): %v", tc.mz, err)
		}
		if got != tc.want {
			t.Errorf("binIndex(%v) = %d, want %d", tc.mz, got, tc.want)
		}
	}
}

func TestBinIndexOutOfRange(t *testing.T) {
	for _, mz := range []float64{1e300, math.Inf(1), math.NaN()} {
		if _, err := binIndex(mz); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("binIndex(%v) err = %v, want ErrInvalidInput", mz, err)
		}
	}
}

func TestBuildHistogramSameBin(t *testing.T) {
	h, err := BuildHistogram([]float64{150, 1150}, []float32{40, 60}, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := Histogram{0, 100}
	testutil.RequireSliceNearlyEqual(t, h[:], want[:], 0)
}

func TestHistogramOrderInsensitive(t *testing.T) {
	s := testutil.Ladder(50, 61.25, 64)
	rel, err := RelativeIntensities(s.IntensityValues(), len(s))
	if err != nil {
		t.Fatal(err)
	}
	want, err := BuildHistogram(s.MzValues(), rel, len(s))
	if err != nil {
		t.Fatal(err)
	}
	wantBlock, err := want.Block()
	if err != nil {
		t.Fatal(err)
	}

	r := testutil.Reversed(s)
	relR, err := RelativeIntensities(r.IntensityValues(), len(r))
	if err != nil {
		t.Fatal(err)
	}
	got, err := BuildHistogram(r.MzValues(), relR, len(r))
	if err != nil {
		t.Fatal(err)
	}
	gotBlock, err := got.Block()
	if err != nil {
		t.Fatal(err)
	}
	if gotBlock != wantBlock {
		t.Fatalf("Block = %q, want %q", gotBlock, wantBlock)
	}

	d, err := testutil.MaxAbsDiff(got[:], want[:])
	if err != nil {
		t.Fatal(err)
	}
	if d > 1e-9 {
		t.Fatalf("reversed histogram differs by %v", d)
	}
}

func TestHistogramBlock(t *testing.T) {
	tests := []struct {
		name string
		h    Histogram
		want string
	}{
		{"single bin", Histogram{0, 200}, "0z00000000"},
		{"uniform", Histogram{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, "zzzzzzzzzz"},
		{"ramp", Histogram{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}, "037bfjnrvz"},
		{"last bin", Histogram{9: 5}, "000000000z"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.h.Block()
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("Block = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHistogramScaled(t *testing.T) {
	h := Histogram{0, 50, 100}
	s, err := h.Scaled()
	if err != nil {
		t.Fatal(err)
	}
	want := Histogram{EpsCorrection, EpsCorrection + 17.5, EpsCorrection + 35}
	for b := 3; b < HistogramBins; b++ {
		want[b] = EpsCorrection
	}
	testutil.RequireSliceNearlyEqual(t, s[:], want[:], 1e-12)
}

func TestHistogramDegenerate(t *testing.T) {
	_, err := Histogram{}.Block()
	if !errors.Is(err, ErrDegenerateSpectrum) {
		t.Fatalf("err = %v, want ErrDegenerateSpectrum", err)
	}
}

func TestHistogramCharBounds(t *testing.T) {
	if c, err := histogramChar(35); err != nil || c != 'z' {
		t.Fatalf("histogramChar(35) = %q, %v", c, err)
	}
	if c, err := histogramChar(0.99999995); err != nil || c != '1' {
		t.Fatalf("histogramChar(0.99999995) = %q, %v; eps correction should lift it to 1", c, err)
	}
	for _, v := range []float64{36, 1e9, -1, -0.5, -1e-8, math.NaN(), math.Inf(1)} {
		if _, err := histogramChar(v); !errors.Is(err, ErrIndexOverflow) {
			t.Errorf("histogramChar(%v) err = %v, want ErrIndexOverflow", v, err)
		}
	}
}
