package table

import "fmt"

// Player holds a seated player's chip balance. The table owns all balance
// mutation; the rules engine only consults CanAfford as a validation
// predicate.
type Player struct {
	Name  string
	Chips int
}

// BuyIn adds chips to the player's balance.
func (p *Player) BuyIn(count int) error {
	if count <= 0 {
		return fmt.Errorf("buy-in must be positive, got %d", count)
	}
	p.Chips += count
	return nil
}

// CanAfford reports whether the player can cover an amount.
func (p *Player) CanAfford(amount int) bool {
	return p.Chips >= amount
}

func (p *Player) deduct(amount int) {
	p.Chips -= amount
}

func (p *Player) credit(amount int) {
	p.Chips += amount
}
