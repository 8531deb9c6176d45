package msspectrum

import "testing"

var (
	_ Spectrum = Ions(nil)
	_ Spectrum = Arrays{}
)

func TestIonsAccessors(t *testing.T) {
	s := Ions{{Mz: 100, Intensity: 1}, {Mz: 250.5, Intensity: 7}}

	mz := s.MzValues()
	intensity := s.IntensityValues()
	if s.PointCount() != 2 || len(mz) != 2 || len(intensity) != 2 {
		t.Fatalf("PointCount = %d, len(mz) = %d, len(intensity) = %d", s.PointCount(), len(mz), len(intensity))
	}
	if mz[1] != 250.5 || intensity[1] != 7 {
		t.Fatalf("ion 1 = (%v, %v), want (250.5, 7)", mz[1], intensity[1])
	}

	mz[0] = -1
	if s[0].Mz != 100 {
		t.Fatal("MzValues aliases the ion list")
	}
}

func TestArraysCount(t *testing.T) {
	a := Arrays{Mz: []float64{1, 2, 3}, Intensity: []float32{4, 5, 6}, Count: 2}
	if a.PointCount() != 2 {
		t.Fatalf("PointCount = %d, want 2", a.PointCount())
	}
	if n := NewArrays(a.Mz, a.Intensity).PointCount(); n != 3 {
		t.Fatalf("NewArrays PointCount = %d, want 3", n)
	}
}

func TestCollect(t *testing.T) {
	a := Arrays{Mz: []float64{1, 2, 3}, Intensity: []float32{4, 5, 6}, Count: 2}
	got := Collect(a)
	want := Ions{{Mz: 1, Intensity: 4}, {Mz: 2, Intensity: 5}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ion %d = %v, want %v", i, got[i], want[i])
		}
	}
}
