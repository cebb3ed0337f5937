package vmath

import (
	"math"
	"testing"
)

func TestLaunchAngle(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   float64
	}{
		{"diagonal up-right", 100, 100, math.Pi / 4},
		{"flat", 100, 0, 0},
		{"below", 100, -100, -math.Pi / 4},
		{"vertical above", 0, 50, math.Pi / 2},
		{"vertical level", 0, 0, math.Pi / 2},
		{"vertical below", 0, -50, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LaunchAngle(tt.dx, tt.dy)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("Expected finite angle, got %v", got)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(0, 0, 10, 30, 0, 20) {
		t.Error("Expected touching circles to overlap")
	}
	if CirclesOverlap(0, 0, 10, 31, 0, 20) {
		t.Error("Expected separated circles not to overlap")
	}
	if !CirclesOverlap(5, 5, 0, 5, 5, 0) {
		t.Error("Expected coincident points to overlap")
	}
}

func TestPolar(t *testing.T) {
	vx, vy := Polar(10, math.Pi/2)
	if math.Abs(vx) > 1e-12 || vy != 10 {
		t.Errorf("Expected (0,10), got (%v,%v)", vx, vy)
	}
}

func TestFastRandIntRange(t *testing.T) {
	rng := NewFastRand(42)
	seenLo, seenHi := false, false
	for i := 0; i < 10000; i++ {
		v := rng.IntRange(-30, 30)
		if v < -30 || v > 30 {
			t.Fatalf("Value %d out of [-30,30]", v)
		}
		seenLo = seenLo || v == -30
		seenHi = seenHi || v == 30
	}
	if !seenLo || !seenHi {
		t.Errorf("Expected both bounds to be reachable, lo=%v hi=%v", seenLo, seenHi)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(7), NewFastRand(7)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
	if NewFastRand(0).Next() == 0 {
		t.Error("Zero seed must not produce a stuck generator")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.3, 0.3},
		{1, 1},
		{7, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 1); got != tt.want {
			t.Errorf("Clamp(%v): expected %v, got %v", tt.v, tt.want, got)
		}
	}
}
