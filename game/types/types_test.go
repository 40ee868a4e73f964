package types

import (
	"encoding/json"
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
		{None, None},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Opposite(); got != tt.want {
				t.Errorf("%v.Opposite() = %v, want %v", tt.dir, got, tt.want)
			}
			if tt.dir.Valid() && !tt.dir.IsOpposite(tt.want) {
				t.Errorf("%v.IsOpposite(%v) = false, want true", tt.dir, tt.want)
			}
		})
	}

	if None.IsOpposite(None) {
		t.Error("None must not be the opposite of itself")
	}
	if Up.IsOpposite(Left) {
		t.Error("Up and Left are not opposite")
	}
}

func TestDirectionToPoint(t *testing.T) {
	start := Point{X: 5, Y: 5}
	tests := []struct {
		dir  Direction
		want Point
	}{
		{Up, Point{X: 5, Y: 4}},
		{Down, Point{X: 5, Y: 6}},
		{Left, Point{X: 4, Y: 5}},
		{Right, Point{X: 6, Y: 5}},
		{None, Point{X: 5, Y: 5}},
	}

	for _, tt := range tests {
		if got := start.Add(tt.dir.ToPoint()); got != tt.want {
			t.Errorf("move %v from %v = %v, want %v", tt.dir, start, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in     string
		want   Direction
		wantOK bool
	}{
		{"up", Up, true},
		{"DOWN", Down, true},
		{" left ", Left, true},
		{"Right", Right, true},
		{"none", None, false},
		{"w", None, false},
		{"", None, false},
	}

	for _, tt := range tests {
		got, ok := ParseDirection(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDirectionJSON(t *testing.T) {
	var body struct {
		Direction Direction `json:"direction"`
	}

	if err := json.Unmarshal([]byte(`{"direction":"left"}`), &body); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if body.Direction != Left {
		t.Errorf("direction = %v, want left", body.Direction)
	}

	if err := json.Unmarshal([]byte(`{"direction":"sideways"}`), &body); err != nil {
		t.Fatalf("Unmarshal of unknown word should not fail: %v", err)
	}
	if body.Direction != None {
		t.Errorf("direction = %v, want none", body.Direction)
	}

	out, err := json.Marshal(map[string]Direction{"d": Down})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `{"d":"down"}` {
		t.Errorf("Marshal = %s", out)
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 30, Height: 20}
	inside := []Point{{0, 0}, {29, 19}, {15, 10}}
	outside := []Point{{-1, 0}, {0, -1}, {30, 0}, {0, 20}}

	for _, p := range inside {
		if !g.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	for _, p := range outside {
		if g.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
	if g.Cells() != 600 {
		t.Errorf("Cells() = %d, want 600", g.Cells())
	}
}
