package vmath

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := New(1, 2, 3)
	v2 := New(4, 5, 6)

	result := v1.Add(v2)
	expected := New(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	result = v2.Sub(v1)
	expected = New(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	result = v1.Mul(2)
	expected = New(2, 4, 6)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	dot := v1.Dot(v2)
	if dot != 32 {
		t.Errorf("Dot: expected 32, got %v", dot)
	}

	cross := New(1, 0, 0).Cross(Up)
	expectedCross := New(0, 0, 1)
	if cross != expectedCross {
		t.Errorf("Cross: expected %v, got %v", expectedCross, cross)
	}
}

func TestVec3Unit(t *testing.T) {
	v := New(3, 0, 0)
	u := v.Unit()
	if math.Abs(u.Length()-1) > 1e-9 {
		t.Errorf("Unit: expected length 1, got %v", u.Length())
	}
}

func TestNearZero(t *testing.T) {
	if !(New(1e-9, -1e-9, 0)).NearZero() {
		t.Error("expected near-zero vector to report true")
	}
	if (New(0.1, 0, 0)).NearZero() {
		t.Error("expected non-trivial vector to report false")
	}
}

func TestReflect(t *testing.T) {
	v := New(1, -1, 0)
	n := New(0, 1, 0)
	r := Reflect(v, n)
	expected := New(1, 1, 0)
	if r != expected {
		t.Errorf("Reflect: expected %v, got %v", expected, r)
	}
}
