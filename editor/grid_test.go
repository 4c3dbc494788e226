package editor

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestSnap(t *testing.T) {
	tests := []struct {
		name string
		in   cp.Vector
		want cp.Vector
	}{
		{"origin cell", cp.Vector{X: 0, Y: 0}, cp.Vector{X: 12, Y: 12}},
		{"cell interior", cp.Vector{X: 48, Y: 72}, cp.Vector{X: 60, Y: 84}},
		{"cell edge", cp.Vector{X: 24, Y: 24}, cp.Vector{X: 36, Y: 36}},
		{"just below edge", cp.Vector{X: 23.9, Y: 47.9}, cp.Vector{X: 12, Y: 36}},
		{"negative", cp.Vector{X: -1, Y: -30}, cp.Vector{X: -12, Y: -36}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Snap(tt.in)
			if got != tt.want {
				t.Fatalf("Snap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSnapIdempotent(t *testing.T) {
	points := []cp.Vector{
		{X: 0, Y: 0},
		{X: 48, Y: 72},
		{X: -100.5, Y: 3.25},
		{X: 1e6, Y: -1e6},
	}
	for _, p := range points {
		once := Snap(p)
		twice := Snap(once)
		if once != twice {
			t.Fatalf("Snap not idempotent for %v: %v then %v", p, once, twice)
		}
	}
}

func TestCell(t *testing.T) {
	cx, cy := Cell(cp.Vector{X: 60, Y: 84})
	if cx != 2 || cy != 3 {
		t.Fatalf("Cell(60,84) = (%d,%d), want (2,3)", cx, cy)
	}
	cx, cy = Cell(cp.Vector{X: -1, Y: -25})
	if cx != -1 || cy != -2 {
		t.Fatalf("Cell(-1,-25) = (%d,%d), want (-1,-2)", cx, cy)
	}
}
