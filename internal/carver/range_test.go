package carver

import "testing"

func TestRangeContainsHalfOpen(t *testing.T) {
	r := newRange(-0.5, 0.5, &stubCarver{priority: 1})

	if !r.Contains(-0.5) {
		t.Error("low edge should be contained")
	}
	if r.Contains(0.5) {
		t.Error("high edge should not be contained")
	}
	if !r.Contains(0) {
		t.Error("interior value should be contained")
	}
	if r.Contains(-0.6) || r.Contains(0.6) {
		t.Error("values outside the interval should not be contained")
	}
}

func TestSmoothAmpFullAtMidpoint(t *testing.T) {
	r := newRange(-0.5, 0.5, &stubCarver{priority: 1})
	if got := r.SmoothAmpAt(0); got != 1 {
		t.Errorf("amplitude at midpoint = %f, want 1", got)
	}
}

func TestSmoothAmpZeroAtEdges(t *testing.T) {
	r := newRange(-0.5, 0.5, &stubCarver{priority: 1})
	if got := r.SmoothAmpAt(-0.5); got != 0 {
		t.Errorf("amplitude at low edge = %f, want 0", got)
	}
	if got := r.SmoothAmpAt(0.5); got != 0 {
		t.Errorf("amplitude at high edge = %f, want 0", got)
	}
}

func TestSmoothAmpMonotonicTowardEdges(t *testing.T) {
	r := newRange(-1, 1, &stubCarver{priority: 1})

	prev := r.SmoothAmpAt(0)
	for v := 0.05; v <= 1; v += 0.05 {
		amp := r.SmoothAmpAt(v)
		if amp > prev {
			t.Fatalf("amplitude increased toward the edge at %f: %f > %f", v, amp, prev)
		}
		if amp < 0 || amp > 1 {
			t.Fatalf("amplitude %f out of [0,1]", amp)
		}
		prev = amp
	}
}
