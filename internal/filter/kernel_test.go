package filter

import (
	"math"
	"testing"
)

func TestGaussianKernel_Identity(t *testing.T) {
	for _, radius := range []float64{0, -1, -0.5} {
		k := GaussianKernel(radius)
		if len(k) != 1 || k[0] != 1.0 {
			t.Errorf("GaussianKernel(%v) = %v, want [1.0]", radius, k)
		}
	}
}

func TestGaussianKernel_Normalized(t *testing.T) {
	for _, radius := range []float64{0.5, 1, 2, 5, 10} {
		k := GaussianKernel(radius)

		wantSize := 2*int(math.Ceil(radius*3)) + 1
		if len(k) != wantSize {
			t.Errorf("GaussianKernel(%v) size = %d, want %d", radius, len(k), wantSize)
		}

		var sum float64
		for _, v := range k {
			sum += float64(v)
		}
		if math.Abs(sum-1.0) > 1e-4 {
			t.Errorf("GaussianKernel(%v) sums to %v, want 1.0", radius, sum)
		}
	}
}

func TestGaussianKernel_SymmetricPeakCentered(t *testing.T) {
	k := GaussianKernel(3)
	mid := len(k) / 2
	for i := 0; i < mid; i++ {
		if k[i] != k[len(k)-1-i] {
			t.Errorf("kernel not symmetric at %d: %v vs %v", i, k[i], k[len(k)-1-i])
		}
		if k[i] > k[mid] {
			t.Errorf("kernel peak not centered: k[%d]=%v > k[mid]=%v", i, k[i], k[mid])
		}
	}
}

func TestCachedGaussianKernel(t *testing.T) {
	a := cachedGaussianKernel(2.5)
	b := cachedGaussianKernel(2.5)
	if &a[0] != &b[0] {
		t.Error("cachedGaussianKernel recomputed a cached kernel")
	}

	want := GaussianKernel(2.5)
	if len(a) != len(want) {
		t.Fatalf("cached kernel size %d, want %d", len(a), len(want))
	}
	for i := range a {
		if a[i] != want[i] {
			t.Fatalf("cached kernel differs at %d", i)
		}
	}
}
