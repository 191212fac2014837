package service

import (
	"fmt"

	"github.com/GTDGit/paylink/internal/models"
	"github.com/GTDGit/paylink/internal/utils"
)

// PaymentSystem builds a provider-specific paying link for an order.
type PaymentSystem interface {
	// Code returns the provider code
	Code() models.ProviderCode

	// GetPayingLink returns the signed link for order
	GetPayingLink(order *models.Order) (string, error)
}

func requireOrder(order *models.Order) error {
	if order == nil {
		return fmt.Errorf("%w: order is required", utils.ErrInvalidArgument)
	}
	return nil
}

func requireHasher(hasher *utils.Hasher) error {
	if hasher == nil {
		return fmt.Errorf("%w: hasher is required", utils.ErrInvalidArgument)
	}
	return nil
}
