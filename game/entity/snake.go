package entity

import "snake-classic/game/types"

// Snake is the ordered body of the player, head first.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
	}
}

// Move prepends newHead. The tail is removed separately so eating can grow
// the body by skipping RemoveTail.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

// NextHead is the cell the head would reach moving one step in dir.
func (s *Snake) NextHead(dir types.Direction) types.Point {
	return s.GetHead().Add(dir.ToPoint())
}

// Occupies reports whether any segment lies on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Cells returns a copy of the body safe to hand to renderers.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
