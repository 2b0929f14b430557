package roulette

import "strconv"

// Color of a wheel space.
type Color int

const (
	Green Color = iota
	ColorRed
	ColorBlack
)

func (c Color) String() string {
	return [...]string{"green", "red", "black"}[c]
}

// Space is a single pocket on the wheel. Value is "0", "00" or "1".."36".
type Space struct {
	Value string
	Color Color
}

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// NewSpace builds a space with its standard color. "0" and "00" are green.
func NewSpace(value string) Space {
	s := Space{Value: value}
	n, ok := s.Number()
	switch {
	case !ok || n == 0:
		s.Color = Green
	case redNumbers[n]:
		s.Color = ColorRed
	default:
		s.Color = ColorBlack
	}
	return s
}

// Number returns the numeric value of the space. The second return is false
// for the "00" pocket, which has no single numeric value.
func (s Space) Number() (int, bool) {
	if s.Value == "00" {
		return 0, false
	}
	n, err := strconv.Atoi(s.Value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsZero reports whether the space is a house pocket ("0" or "00").
func (s Space) IsZero() bool {
	return s.Value == "0" || s.Value == "00"
}
