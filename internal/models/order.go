package models

import (
	"fmt"

	"github.com/GTDGit/paylink/internal/utils"
)

// Order is an immutable order reference used to build paying links.
type Order struct {
	id     int
	amount int
}

// NewOrder validates id >= 0 and amount > 0.
func NewOrder(id, amount int) (*Order, error) {
	if id < 0 {
		return nil, fmt.Errorf("%w: id must be >= 0, got %d", utils.ErrOutOfRange, id)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be > 0, got %d", utils.ErrOutOfRange, amount)
	}
	return &Order{id: id, amount: amount}, nil
}

// ID returns the order identifier.
func (o *Order) ID() int { return o.id }

// Amount returns the order amount in roubles.
func (o *Order) Amount() int { return o.amount }
