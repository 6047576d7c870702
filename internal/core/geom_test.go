package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestBoxCircleDistance(t *testing.T) {
	b := Box{Min: Vec{X: 100, Y: 100}, Max: Vec{X: 130, Y: 130}}

	tests := []struct {
		name     string
		center   Vec
		expected float64
	}{
		{"center inside", Vec{X: 115, Y: 115}, 0},
		{"on edge", Vec{X: 130, Y: 110}, 0},
		{"left of box", Vec{X: 90, Y: 110}, 10},
		{"below box", Vec{X: 120, Y: 145}, 15},
		{"diagonal from corner", Vec{X: 133, Y: 134}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := b.CircleDistance(tc.center)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("CircleDistance(%v) = %v, expected %v", tc.center, got, tc.expected)
			}
		})
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{Min: Vec{X: 0, Y: 0}, Max: Vec{X: 180, Y: 80}}
	if !b.Contains(Vec{X: 180, Y: 80}) {
		t.Error("Contains should include the max corner")
	}
	if b.Contains(Vec{X: 181, Y: 10}) {
		t.Error("Contains should exclude points right of the box")
	}
}

func TestVecOps(t *testing.T) {
	a := Vec{X: 3, Y: 4}
	if a.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", a.Len())
	}
	if got := a.Add(Vec{X: 1, Y: 1}); got != (Vec{X: 4, Y: 5}) {
		t.Errorf("Add() = %v", got)
	}
	if got := a.Scale(2); got != (Vec{X: 6, Y: 8}) {
		t.Errorf("Scale() = %v", got)
	}
	if Dist(Vec{}, a) != 5 {
		t.Errorf("Dist() = %v, expected 5", Dist(Vec{}, a))
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, size, expected float64
	}{
		{50, 800, 50},
		{810, 800, 10},
		{-10, 800, 790},
		{5, 0, 0},
	}
	for _, tc := range tests {
		if got := Wrap(tc.val, tc.size); got != tc.expected {
			t.Errorf("Wrap(%v, %v) = %v, expected %v", tc.val, tc.size, got, tc.expected)
		}
	}
}
