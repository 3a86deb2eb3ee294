package types

import (
	"errors"
	"testing"
)

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}
	for _, tt := range tests {
		if got := tt.dir.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestDirectionIsUnit(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if !d.IsUnit() {
			t.Errorf("Expected %v to be a unit direction", d)
		}
	}
	for _, d := range []Direction{{}, {X: 1, Y: 1}, {X: 2}, {Y: -2}} {
		if d.IsUnit() {
			t.Errorf("Expected %+v not to be a unit direction", d)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 25, Height: 25}
	tests := []struct {
		cell Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{24, 24}, true},
		{Cell{-1, 5}, false},
		{Cell{25, 5}, false},
		{Cell{5, -1}, false},
		{Cell{5, 25}, false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.cell); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestPresets(t *testing.T) {
	classic := Classic()
	if classic.WindowSize() != 900 {
		t.Errorf("Expected classic window 900px, got %d", classic.WindowSize())
	}
	if !classic.Features.WallCollision || !classic.Features.Scoring || classic.Features.Style != StyleRounded {
		t.Errorf("Unexpected classic features: %+v", classic.Features)
	}

	retro := Retro()
	if retro.WindowSize() != 750 {
		t.Errorf("Expected retro window 750px, got %d", retro.WindowSize())
	}
	if retro.Features.WallCollision || retro.Features.Scoring || retro.Features.Style != StylePlain {
		t.Errorf("Unexpected retro features: %+v", retro.Features)
	}

	x, y := classic.CellOrigin(Cell{X: 2, Y: 3})
	if x != 75+60 || y != 75+90 {
		t.Errorf("Expected origin (135,165), got (%d,%d)", x, y)
	}
}

func TestParseVariant(t *testing.T) {
	s, err := ParseVariant("Retro")
	if err != nil || s.Name != "retro" {
		t.Fatalf("ParseVariant(Retro) = %q, %v", s.Name, err)
	}
	s, err = ParseVariant("")
	if err != nil || s.Name != "classic" {
		t.Fatalf("ParseVariant(\"\") = %q, %v", s.Name, err)
	}
	if _, err := ParseVariant("arcade"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Expected ErrUnknownVariant, got %v", err)
	}
}
