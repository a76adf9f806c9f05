package mathx

import "testing"

func TestBetween(t *testing.T) {
	if !Between(5, 1, 10) || !Between(1, 1, 10) || !Between(10, 1, 10) {
		t.Error("Between: in-range values rejected")
	}
	if Between(0, 1, 10) || Between(11, 1, 10) {
		t.Error("Between: out-of-range values accepted")
	}
	// Swapped bounds.
	if !Between(5, 10, 1) {
		t.Error("Between: swapped bounds rejected in-range value")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 1, 10); got != 5 {
		t.Errorf("Clamp(5,1,10) = %d", got)
	}
	if got := Clamp(-3, 1, 10); got != 1 {
		t.Errorf("Clamp(-3,1,10) = %d", got)
	}
	if got := Clamp(42, 1, 10); got != 10 {
		t.Errorf("Clamp(42,1,10) = %d", got)
	}
	if got := Clamp(42, 10, 1); got != 10 {
		t.Errorf("Clamp(42,10,1) = %d", got)
	}
}
