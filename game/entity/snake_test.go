package entity

import (
	"reflect"
	"testing"

	"snake-classic/game/types"
)

func TestSnakeMoveAndRemoveTail(t *testing.T) {
	s := FromCells(types.Point{X: 1, Y: 10}, types.Point{X: 2, Y: 10})

	s.Move(types.Point{X: 3, Y: 10})
	s.RemoveTail()

	want := []types.Point{{X: 2, Y: 10}, {X: 3, Y: 10}}
	if !reflect.DeepEqual(s.Body, want) {
		t.Fatalf("Body = %v, want %v", s.Body, want)
	}
	if s.GetHead() != (types.Point{X: 3, Y: 10}) {
		t.Errorf("GetHead() = %v", s.GetHead())
	}
	if s.GetTail() != (types.Point{X: 2, Y: 10}) {
		t.Errorf("GetTail() = %v", s.GetTail())
	}
}

func TestSnakeRemoveTailKeepsLastSegment(t *testing.T) {
	s := NewSnake(types.Point{X: 15, Y: 10})
	s.RemoveTail()
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestSnakeContains(t *testing.T) {
	s := FromCells(types.Point{X: 5, Y: 10}, types.Point{X: 6, Y: 10}, types.Point{X: 7, Y: 10})

	for _, p := range s.Body {
		if !s.Contains(p) {
			t.Errorf("Contains(%v) = false", p)
		}
	}
	if s.Contains(types.Point{X: 8, Y: 10}) {
		t.Error("Contains reported a free cell")
	}
}

func TestSnakeCellsIsACopy(t *testing.T) {
	s := NewSnake(types.Point{X: 15, Y: 10})
	cells := s.Cells()
	cells[0] = types.Point{X: 0, Y: 0}
	if s.GetHead() != (types.Point{X: 15, Y: 10}) {
		t.Error("mutating Cells() changed the snake")
	}
}

func TestFromCellsPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FromCells() with no cells did not panic")
		}
	}()
	FromCells()
}
