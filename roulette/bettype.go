package roulette

import "fmt"

// BetType identifies one of the wagers a roulette table accepts.
type BetType int

const (
	// Inside bets
	StraightUp BetType = iota
	Split
	Street
	Corner
	SixLine

	// Outside bets
	Red
	Black
	Odd
	Even
	High
	Low
	FirstDozen
	SecondDozen
	ThirdDozen
	FirstColumn
	SecondColumn
	ThirdColumn

	// Announced bets, only offered where the table rules allow them
	Neighbors
	CallBet
)

func (bt BetType) String() string {
	return [...]string{
		"straight_up", "split", "street", "corner", "six_line",
		"red", "black", "odd", "even", "high", "low",
		"first_dozen", "second_dozen", "third_dozen",
		"first_column", "second_column", "third_column",
		"neighbors", "call_bet",
	}[bt]
}

// BetTypes lists every bet type in declaration order.
var BetTypes = []BetType{
	StraightUp, Split, Street, Corner, SixLine,
	Red, Black, Odd, Even, High, Low,
	FirstDozen, SecondDozen, ThirdDozen,
	FirstColumn, SecondColumn, ThirdColumn,
	Neighbors, CallBet,
}

// ParseBetType converts a config/wire identifier like "straight_up" into a BetType.
func ParseBetType(s string) (BetType, error) {
	for _, bt := range BetTypes {
		if bt.String() == s {
			return bt, nil
		}
	}
	return 0, fmt.Errorf("unknown bet type %q", s)
}

// IsEvenMoney reports whether the bet type pays 1:1. The la partage and
// en prison rules only ever apply to these wagers.
func (bt BetType) IsEvenMoney() bool {
	switch bt {
	case Red, Black, Odd, Even, High, Low:
		return true
	}
	return false
}
