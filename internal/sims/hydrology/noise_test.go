package hydrology

import "testing"

func TestNoiseDeterministicAndBounded(t *testing.T) {
	a := newValueNoise(42)
	b := newValueNoise(42)
	c := newValueNoise(43)

	diff := false
	for i := 0; i < 32; i++ {
		for j := 0; j < 32; j++ {
			x, y := float64(i)*0.37, float64(j)*0.41
			va := a.fbm(x, y, 6)
			if va < 0 || va > 1 {
				t.Fatalf("fbm(%v, %v) = %v, want [0, 1]", x, y, va)
			}
			if vb := b.fbm(x, y, 6); vb != va {
				t.Fatalf("identically seeded noise diverged at (%v, %v)", x, y)
			}
			if c.fbm(x, y, 6) != va {
				diff = true
			}
		}
	}
	if !diff {
		t.Fatal("differently seeded noise never diverged")
	}
}

func TestNoiseHandlesNegativeCoordinates(t *testing.T) {
	n := newValueNoise(7)
	for i := -8; i < 0; i++ {
		v := n.fbm(float64(i)*0.7, float64(i)*0.3, 4)
		if v < 0 || v > 1 {
			t.Fatalf("fbm at negative coordinates = %v, want [0, 1]", v)
		}
	}
}
