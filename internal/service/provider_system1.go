package service

import (
	"fmt"
	"strconv"

	"github.com/GTDGit/paylink/internal/models"
	"github.com/GTDGit/paylink/internal/utils"
)

// System1PaymentSystem signs links with MD5(id).
type System1PaymentSystem struct {
	hasher *utils.Hasher
}

// NewSystem1PaymentSystem creates a new system1 link builder
func NewSystem1PaymentSystem(hasher *utils.Hasher) (*System1PaymentSystem, error) {
	if err := requireHasher(hasher); err != nil {
		return nil, err
	}
	return &System1PaymentSystem{hasher: hasher}, nil
}

// Code returns the provider code
func (s *System1PaymentSystem) Code() models.ProviderCode {
	return models.ProviderSystem1
}

// GetPayingLink formats pay.system1.ru/order?amount={amount}RUB&hash={MD5(id)}
func (s *System1PaymentSystem) GetPayingLink(order *models.Order) (string, error) {
	if err := requireOrder(order); err != nil {
		return "", err
	}
	sign, err := s.hasher.Hash(strconv.Itoa(order.ID()))
	if err != nil {
		return "", fmt.Errorf("system1 sign: %w", err)
	}
	return fmt.Sprintf("pay.system1.ru/order?amount=%dRUB&hash=%s", order.Amount(), sign), nil
}
