package service

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/GTDGit/paylink/internal/models"
	"github.com/GTDGit/paylink/internal/utils"
)

// System3PaymentSystem signs links with SHA1(amount + id + secret). The secret
// is either a fixed salt or a key drawn from a range on every call.
type System3PaymentSystem struct {
	hasher *utils.Hasher
	secret models.Secret
	rand   utils.RandSource
}

// System3Option customizes a System3PaymentSystem.
type System3Option func(*System3PaymentSystem)

// WithRandSource replaces the source used to draw key-range secrets.
func WithRandSource(src utils.RandSource) System3Option {
	return func(s *System3PaymentSystem) {
		if src != nil {
			s.rand = src
		}
	}
}

// NewSystem3PaymentSystem creates a new system3 link builder. The secret is
// validated here, not on each call.
func NewSystem3PaymentSystem(hasher *utils.Hasher, secret models.Secret, opts ...System3Option) (*System3PaymentSystem, error) {
	if err := requireHasher(hasher); err != nil {
		return nil, err
	}
	if secret == nil {
		return nil, fmt.Errorf("%w: secret is required", utils.ErrInvalidArgument)
	}
	switch secret.(type) {
	case models.FixedSecret, models.KeyRangeSecret:
	default:
		return nil, fmt.Errorf("%w: unsupported secret type %T", utils.ErrInvalidArgument, secret)
	}
	if err := secret.Validate(); err != nil {
		return nil, err
	}

	s := &System3PaymentSystem{
		hasher: hasher,
		secret: secret,
		rand:   utils.NewCryptoRandSource(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Code returns the provider code
func (s *System3PaymentSystem) Code() models.ProviderCode {
	return models.ProviderSystem3
}

// GetPayingLink formats
// system3.com/pay?amount={amount}&curency=RUB&hash={SHA1(amount + id + secret)}.
// "curency" is what system3 expects; do not correct it.
func (s *System3PaymentSystem) GetPayingLink(order *models.Order) (string, error) {
	if err := requireOrder(order); err != nil {
		return "", err
	}

	secret, err := s.secretText()
	if err != nil {
		return "", fmt.Errorf("system3 secret: %w", err)
	}
	payload := strconv.Itoa(order.Amount()) + strconv.Itoa(order.ID()) + secret
	sign, err := s.hasher.Hash(payload)
	if err != nil {
		return "", fmt.Errorf("system3 sign: %w", err)
	}
	return fmt.Sprintf("system3.com/pay?amount=%d&curency=RUB&hash=%s", order.Amount(), sign), nil
}

func (s *System3PaymentSystem) secretText() (string, error) {
	switch sec := s.secret.(type) {
	case models.FixedSecret:
		return sec.Value, nil
	case models.KeyRangeSecret:
		key, err := utils.GenerateKeyInRange(s.rand, sec.Lower, sec.Upper)
		if err != nil {
			return "", err
		}
		log.Debug().
			Int("lower", sec.Lower).
			Int("upper", sec.Upper).
			Msg("[SYSTEM3] Drew key from range")
		return strconv.Itoa(key), nil
	default:
		// rejected by the constructor
		return "", fmt.Errorf("%w: unsupported secret type %T", utils.ErrInvalidArgument, s.secret)
	}
}
