package noise

import "testing"

func TestSample2Deterministic(t *testing.T) {
	s1 := NewSource(12345, 0.007)
	s2 := NewSource(12345, 0.007)

	for i := 0; i < 100; i++ {
		x := float64(i)*3.7 - 150
		z := float64(i)*5.3 - 150
		if s1.Sample2(x, z) != s2.Sample2(x, z) {
			t.Fatalf("Sample2 not deterministic at (%f, %f)", x, z)
		}
	}
}

func TestSample2Range(t *testing.T) {
	s := NewSource(42, 0.007)

	for i := 0; i < 10000; i++ {
		x := float64(i)*0.37 - 500
		z := float64(i)*0.53 - 500
		v := s.Sample2(x, z)
		if v < -1.0 || v > 1.0 {
			t.Fatalf("Sample2(%f, %f) = %f, out of [-1,1]", x, z, v)
		}
	}
}

func TestSample3Range(t *testing.T) {
	s := NewSource(42, 0.03)

	for i := 0; i < 10000; i++ {
		x := float64(i)*0.37 - 500
		y := float64(i)*0.53 - 500
		z := float64(i)*0.71 - 500
		v := s.Sample3(x, y, z)
		if v < -1.0 || v > 1.0 {
			t.Fatalf("Sample3(%f, %f, %f) = %f, out of [-1,1]", x, y, z, v)
		}
	}
}

func TestDifferentSeedsDifferentNoise(t *testing.T) {
	s1 := NewSource(1, 0.007)
	s2 := NewSource(2, 0.007)

	different := false
	for i := 0; i < 100; i++ {
		x := float64(i) * 7.1
		z := float64(i) * 13.3
		if s1.Sample2(x, z) != s2.Sample2(x, z) {
			different = true
			break
		}
	}
	if !different {
		t.Error("different seeds should produce different noise")
	}
}

func TestBuildCubeMatchesDirectSamples(t *testing.T) {
	s := NewSource(7, 0.03)
	c := BuildCube(s, 32, 48, 2, 2, 1, 40)

	for x := 0; x < 2; x++ {
		for z := 0; z < 2; z++ {
			col := c.Column(x, z)
			if col.Len() != 40 {
				t.Fatalf("column (%d,%d) has %d samples, want 40", x, z, col.Len())
			}
			for y := 1; y <= 40; y++ {
				want := s.Sample3(float64(32+x), float64(y), float64(48+z))
				if got := col.At(y); got != want {
					t.Fatalf("cube sample at (%d,%d,%d) = %f, want %f", x, y, z, got, want)
				}
			}
		}
	}
}

func TestColumnAtOutsideSpan(t *testing.T) {
	s := NewSource(7, 0.03)
	c := BuildCube(s, 0, 0, 1, 1, 10, 20)
	col := c.Column(0, 0)

	if got := col.At(9); got != 0 {
		t.Errorf("At below span = %f, want 0", got)
	}
	if got := col.At(21); got != 0 {
		t.Errorf("At above span = %f, want 0", got)
	}
}
