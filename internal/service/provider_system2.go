package service

import (
	"fmt"
	"strconv"

	"github.com/GTDGit/paylink/internal/models"
	"github.com/GTDGit/paylink/internal/utils"
)

// System2PaymentSystem signs links with MD5(id + amount).
type System2PaymentSystem struct {
	hasher *utils.Hasher
}

// NewSystem2PaymentSystem creates a new system2 link builder
func NewSystem2PaymentSystem(hasher *utils.Hasher) (*System2PaymentSystem, error) {
	if err := requireHasher(hasher); err != nil {
		return nil, err
	}
	return &System2PaymentSystem{hasher: hasher}, nil
}

// Code returns the provider code
func (s *System2PaymentSystem) Code() models.ProviderCode {
	return models.ProviderSystem2
}

// GetPayingLink formats order.system2.ru/pay?hash={MD5(id + amount)}
func (s *System2PaymentSystem) GetPayingLink(order *models.Order) (string, error) {
	if err := requireOrder(order); err != nil {
		return "", err
	}
	sign, err := s.hasher.Hash(strconv.Itoa(order.ID()) + strconv.Itoa(order.Amount()))
	if err != nil {
		return "", fmt.Errorf("system2 sign: %w", err)
	}
	return "order.system2.ru/pay?hash=" + sign, nil
}
