package metrics

import "testing"

func TestConfidence_ZeroSample(t *testing.T) {
	if got := Confidence(0, 20); got != 0.0 {
		t.Errorf("expected 0.0 for zero sample, got %f", got)
	}
}

func TestConfidence_Midpoint(t *testing.T) {
	// At n = optimal/2 the sigmoid is exactly 0.5.
	if got := Confidence(10, 20); got < 0.499 || got > 0.501 {
		t.Errorf("expected ~0.5 at midpoint, got %f", got)
	}
}

func TestConfidence_ApproachesOne(t *testing.T) {
	if got := Confidence(20, 20); got < 0.9 {
		t.Errorf("expected >0.9 at optimal size, got %f", got)
	}
	if got := Confidence(1000, 20); got > 1.0 {
		t.Errorf("expected clamp at 1.0, got %f", got)
	}
}

func TestConfidence_Monotonic(t *testing.T) {
	prev := 0.0
	for n := 0; n <= 100; n++ {
		c := Confidence(n, 20)
		if c < prev {
			t.Fatalf("confidence decreased at n=%d: %f < %f", n, c, prev)
		}
		if c < 0.0 || c > 1.0 {
			t.Fatalf("confidence out of bounds at n=%d: %f", n, c)
		}
		prev = c
	}
}

func TestConfidence_SmallOptimalSize(t *testing.T) {
	// Smaller optimal sizes saturate faster.
	if Confidence(8, 8) <= Confidence(8, 20) {
		t.Errorf("expected steeper curve for smaller optimal size")
	}
}
