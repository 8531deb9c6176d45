package splash

import "testing"

func TestEncodeSpectrum(t *testing.T) {
	got, err := EncodeSpectrum([]float64{100, 101, 102}, []float32{100.0 / 3, 200.0 / 3, 100}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if want := "100000000:33 101000000:66 102000000:100"; got != want {
		t.Fatalf("EncodeSpectrum = %q, want %q", got, want)
	}
}

func TestEncodeSpectrumKeepsOrder(t *testing.T) {
	got, err := EncodeSpectrum([]float64{300.5, 12.25}, []float32{10, 100}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := "300500000:10 12250000:100"; got != want {
		t.Fatalf("EncodeSpectrum = %q, want %q", got, want)
	}
}

func TestEncodeSpectrumEmpty(t *testing.T) {
	got, err := EncodeSpectrum(nil, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Fatalf("EncodeSpectrum = %q, want empty", got)
	}
}

func TestHashBlock(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "e3b0c44298fc1c149afb"},
		{"100000000:33 101000000:66 102000000:100", "f5bf6f6a4a1520a35d4f"},
	}
	for _, tc := range tests {
		got := HashBlock(tc.in)
		if got != tc.want {
			t.Errorf("HashBlock(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if len(got) != HashBlockLength {
			t.Errorf("len(HashBlock(%q)) = %d, want %d", tc.in, len(got), HashBlockLength)
		}
	}
}
