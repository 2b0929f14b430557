package roulette

// Wins reports whether a bet of the given type, covering the given space
// values, wins when the ball lands on s. Inside and announced bets win on
// direct coverage; outside bets win on the standard membership groups and
// always lose to the house pockets.
func Wins(bt BetType, covered []string, s Space) bool {
	for _, v := range covered {
		if v == s.Value {
			return true
		}
	}

	n, ok := s.Number()
	if !ok || n == 0 {
		// "0" and "00" only pay bets that cover them directly
		return false
	}

	switch bt {
	case Red:
		return s.Color == ColorRed
	case Black:
		return s.Color == ColorBlack
	case Odd:
		return n%2 == 1
	case Even:
		return n%2 == 0
	case High:
		return n >= 19 && n <= 36
	case Low:
		return n >= 1 && n <= 18
	case FirstDozen:
		return n >= 1 && n <= 12
	case SecondDozen:
		return n >= 13 && n <= 24
	case ThirdDozen:
		return n >= 25 && n <= 36
	case FirstColumn:
		return n%3 == 1
	case SecondColumn:
		return n%3 == 2
	case ThirdColumn:
		return n%3 == 0
	}

	return false
}

// Payout returns the full amount returned to the player for a winning bet:
// the original stake plus stake times the configured ratio.
func Payout(amount, ratio int) int {
	return amount + amount*ratio
}
