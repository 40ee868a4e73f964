package entity

import (
	"snake-classic/game/types"
)

// Snake keeps its body tail-first: Body[0] is the tail, the last element
// is the head.
type Snake struct {
	Body []types.Point
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body: []types.Point{startPos},
	}
}

// FromCells builds a snake from tail-first cells. It panics on an empty
// slice since a snake always has at least one segment.
func FromCells(cells ...types.Point) *Snake {
	if len(cells) == 0 {
		panic("entity: snake needs at least one cell")
	}
	body := make([]types.Point, len(cells))
	copy(body, cells)
	return &Snake{Body: body}
}

func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, newHead)
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[1:]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether p is any segment of the body, head and tail
// included.
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, tail-first.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
