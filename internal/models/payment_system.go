package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/GTDGit/paylink/internal/utils"
)

// ProviderCode identifies the payment system a link is built for.
type ProviderCode string

const (
	ProviderSystem1 ProviderCode = "system1"
	ProviderSystem2 ProviderCode = "system2"
	ProviderSystem3 ProviderCode = "system3"
)

// Link is a generated paying link tagged with its provider.
type Link struct {
	Provider ProviderCode
	URL      string
}

// Secret is the signing secret of system3: either FixedSecret or KeyRangeSecret.
type Secret interface {
	Validate() error
	isSecret()
}

// FixedSecret is a salt string reused for every link.
type FixedSecret struct {
	Value string
}

// Validate rejects a blank salt.
func (s FixedSecret) Validate() error {
	if strings.TrimSpace(s.Value) == "" {
		return fmt.Errorf("%w: secret must not be blank", utils.ErrInvalidArgument)
	}
	return nil
}

func (FixedSecret) isSecret() {}

// KeyRangeSecret draws a fresh integer key from [Lower, Upper] for every link.
type KeyRangeSecret struct {
	Lower int
	Upper int
}

// Validate requires 0 <= Lower <= Upper and a range size that fits in int64.
func (s KeyRangeSecret) Validate() error {
	if s.Lower < 0 {
		return fmt.Errorf("%w: key range lower bound must be >= 0, got %d", utils.ErrOutOfRange, s.Lower)
	}
	if s.Upper < s.Lower {
		return fmt.Errorf("%w: key range upper bound %d is below lower bound %d", utils.ErrOutOfRange, s.Upper, s.Lower)
	}
	if int64(s.Upper)-int64(s.Lower) == math.MaxInt64 {
		return fmt.Errorf("%w: key range [%d, %d] is too wide", utils.ErrOutOfRange, s.Lower, s.Upper)
	}
	return nil
}

func (KeyRangeSecret) isSecret() {}
