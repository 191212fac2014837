package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/paylink/internal/models"
	"github.com/GTDGit/paylink/internal/utils"
)

// ProviderRouter holds the registered payment systems in registration order
// and builds a link from each of them.
type ProviderRouter struct {
	providers []PaymentSystem
}

// NewProviderRouter creates a new ProviderRouter
func NewProviderRouter() *ProviderRouter {
	return &ProviderRouter{}
}

// RegisterProvider appends a payment system. Links are produced in the order
// providers were registered.
func (r *ProviderRouter) RegisterProvider(ps PaymentSystem) error {
	if ps == nil {
		return fmt.Errorf("%w: payment system is required", utils.ErrInvalidArgument)
	}
	r.providers = append(r.providers, ps)
	return nil
}

// GetProviders returns a copy of the registered payment systems
func (r *ProviderRouter) GetProviders() []PaymentSystem {
	result := make([]PaymentSystem, len(r.providers))
	copy(result, r.providers)
	return result
}

// Links builds the paying link of every registered provider for order.
// The first failure aborts the pass and no links are returned.
func (r *ProviderRouter) Links(order *models.Order) ([]models.Link, error) {
	if err := requireOrder(order); err != nil {
		return nil, err
	}

	runID := uuid.New().String()[:8]
	links := make([]models.Link, 0, len(r.providers))
	for _, ps := range r.providers {
		url, err := ps.GetPayingLink(order)
		if err != nil {
			log.Error().
				Err(err).
				Str("run_id", runID).
				Str("provider", string(ps.Code())).
				Int("order_id", order.ID()).
				Msg("Failed to build paying link")
			return nil, fmt.Errorf("%s: %w", ps.Code(), err)
		}
		log.Debug().
			Str("run_id", runID).
			Str("provider", string(ps.Code())).
			Int("order_id", order.ID()).
			Int("amount", order.Amount()).
			Msg("Paying link built")
		links = append(links, models.Link{Provider: ps.Code(), URL: url})
	}

	log.Info().
		Str("run_id", runID).
		Int("order_id", order.ID()).
		Int("links", len(links)).
		Msg("Paying links ready")
	return links, nil
}
