package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
	if r.Right() != 6 || r.Bottom() != 5 {
		t.Errorf("Right/Bottom = %d/%d, expected 6/5", r.Right(), r.Bottom())
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name         string
		w, h, sw, sh int
		expected     Rect
	}{
		{"fits", 20, 6, 80, 24, Rect{X: 30, Y: 9, W: 20, H: 6}},
		{"odd remainder", 3, 1, 10, 4, Rect{X: 3, Y: 1, W: 3, H: 1}},
		{"shrinks to screen", 100, 30, 80, 24, Rect{X: 0, Y: 0, W: 80, H: 24}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CenteredRect(tc.w, tc.h, tc.sw, tc.sh)
			if got != tc.expected {
				t.Errorf("CenteredRect = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestInset(t *testing.T) {
	if got := NewRect(0, 0, 10, 4).Inset(1); got != NewRect(1, 1, 8, 2) {
		t.Errorf("Inset(1) = %+v", got)
	}
	if got := NewRect(0, 0, 2, 2).Inset(3); got.W != 0 || got.H != 0 {
		t.Errorf("Inset past the size should give an empty rect, got %+v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
