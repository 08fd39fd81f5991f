package entity

import (
	"testing"

	"snake-classic/game/types"
)

func TestSnakeMoveAndRemoveTail(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)

	s.Move(s.NextHead(types.Right))
	if s.Len() != 2 {
		t.Fatalf("len after move = %d, want 2", s.Len())
	}
	if s.GetHead() != (types.Point{X: 6, Y: 5}) {
		t.Errorf("head = %v, want {6 5}", s.GetHead())
	}
	if s.GetTail() != (types.Point{X: 5, Y: 5}) {
		t.Errorf("tail = %v, want {5 5}", s.GetTail())
	}

	s.RemoveTail()
	if s.Len() != 1 || s.GetHead() != (types.Point{X: 6, Y: 5}) {
		t.Errorf("body after RemoveTail = %v, want [{6 5}]", s.Body)
	}
}

func TestSnakeRemoveTailKeepsHead(t *testing.T) {
	s := NewSnake(types.Point{X: 1, Y: 1}, types.Up)
	s.RemoveTail()
	if s.Len() != 1 {
		t.Errorf("single segment snake shrank to %d", s.Len())
	}
}

func TestSnakeOccupiesAndCells(t *testing.T) {
	s := NewSnake(types.Point{X: 2, Y: 2}, types.Down)
	s.Move(types.Point{X: 2, Y: 3})
	s.Move(types.Point{X: 2, Y: 4})

	if !s.Occupies(types.Point{X: 2, Y: 2}) {
		t.Error("tail cell should be occupied")
	}
	if s.Occupies(types.Point{X: 3, Y: 3}) {
		t.Error("{3 3} should be free")
	}

	cells := s.Cells()
	cells[0] = types.Point{X: 9, Y: 9}
	if s.GetHead() != (types.Point{X: 2, Y: 4}) {
		t.Error("Cells must return a copy")
	}
}
