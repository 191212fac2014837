package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GTDGit/paylink/internal/models"
	"github.com/GTDGit/paylink/internal/utils"
)

var errBroken = errors.New("broken provider")

type stubPaymentSystem struct {
	code  models.ProviderCode
	link  string
	err   error
	calls int
}

func (s *stubPaymentSystem) Code() models.ProviderCode { return s.code }

func (s *stubPaymentSystem) GetPayingLink(order *models.Order) (string, error) {
	s.calls++
	return s.link, s.err
}

func TestProviderRouter_LinksInRegistrationOrder(t *testing.T) {
	router := NewProviderRouter()
	first := &stubPaymentSystem{code: models.ProviderSystem2, link: "b"}
	second := &stubPaymentSystem{code: models.ProviderSystem1, link: "a"}
	require.NoError(t, router.RegisterProvider(first))
	require.NoError(t, router.RegisterProvider(second))

	links, err := router.Links(demoOrder(t))
	require.NoError(t, err)
	assert.Equal(t, []models.Link{
		{Provider: models.ProviderSystem2, URL: "b"},
		{Provider: models.ProviderSystem1, URL: "a"},
	}, links)
	assert.Len(t, router.GetProviders(), 2)
}

func TestProviderRouter_AbortsOnFirstError(t *testing.T) {
	router := NewProviderRouter()
	ok := &stubPaymentSystem{code: models.ProviderSystem1, link: "a"}
	broken := &stubPaymentSystem{code: models.ProviderSystem2, err: errBroken}
	never := &stubPaymentSystem{code: models.ProviderSystem3, link: "c"}
	for _, ps := range []PaymentSystem{ok, broken, never} {
		require.NoError(t, router.RegisterProvider(ps))
	}

	links, err := router.Links(demoOrder(t))
	assert.ErrorIs(t, err, errBroken)
	assert.Nil(t, links)
	assert.Equal(t, 0, never.calls)
}

func TestProviderRouter_Validation(t *testing.T) {
	router := NewProviderRouter()
	assert.ErrorIs(t, router.RegisterProvider(nil), utils.ErrInvalidArgument)

	_, err := router.Links(nil)
	assert.ErrorIs(t, err, utils.ErrInvalidArgument)
}

func TestProviderRouter_GetProvidersReturnsCopy(t *testing.T) {
	router := NewProviderRouter()
	require.NoError(t, router.RegisterProvider(&stubPaymentSystem{code: models.ProviderSystem1}))

	providers := router.GetProviders()
	providers[0] = nil
	assert.NotNil(t, router.GetProviders()[0])
}
