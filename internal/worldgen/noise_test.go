package worldgen

import (
	"math"
	"testing"
)

func TestNoiseDeterminism(t *testing.T) {
	val1 := noise2D(1.5, 2.7)
	val2 := noise2D(1.5, 2.7)
	if val1 != val2 {
		t.Errorf("noise2D(1.5, 2.7) not deterministic: %v != %v", val1, val2)
	}
}

func TestNoiseRange(t *testing.T) {
	for x := -20; x < 20; x++ {
		for y := -20; y < 20; y++ {
			val := noise2D(float64(x)*0.1, float64(y)*0.1)
			if val < -1.5 {
				t.Errorf("noise2D too low at (%d, %d): %v", x, y, val)
			}
			if val > 1.5 {
				t.Errorf("noise2D too high at (%d, %d): %v", x, y, val)
			}
		}
	}
}

func TestNoiseVariety(t *testing.T) {
	values := make(map[float64]bool)
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			v := noise2D(float64(x)*0.5, float64(y)*0.5)
			values[math.Round(v*1e6)/1e6] = true
		}
	}
	if len(values) <= 20 {
		t.Errorf("Expected many distinct noise values, got %d", len(values))
	}
}

func TestNoiseZeroAtOrigin(t *testing.T) {
	val := noise2D(0.0, 0.0)
	if math.Abs(val) > 1e-10 {
		t.Errorf("noise2D(0, 0) = %v, want 0 at lattice point", val)
	}
}
