package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/paylink/internal/config"
	"github.com/GTDGit/paylink/internal/models"
	"github.com/GTDGit/paylink/internal/service"
	"github.com/GTDGit/paylink/internal/utils"
)

const (
	demoOrderID     = 1275
	demoOrderAmount = 12000
)

// main prints the paying link of every payment system for the demo order.
func main() {
	// 1. Load config
	cfg, err := config.Load(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger (stderr; stdout carries only the links)
	setupLogger(cfg.Env)
	log.Debug().Str("env", cfg.Env).Str("secret_mode", cfg.System3.SecretMode).Msg("starting paylink")

	if err := run(cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("paylink failed")
		os.Exit(1)
	}
}

// run builds the demo order and payment systems, then writes one link per line.
// Nothing is written unless every link was built.
func run(cfg *config.Config, out io.Writer) error {
	// 3. Order
	order, err := models.NewOrder(demoOrderID, demoOrderAmount)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	// 4. Payment systems
	router, err := newRouter(cfg)
	if err != nil {
		return err
	}

	// 5. Build and print
	links, err := router.Links(order)
	if err != nil {
		return err
	}
	for _, l := range links {
		if _, err := fmt.Fprintln(out, l.URL); err != nil {
			return fmt.Errorf("write link: %w", err)
		}
	}
	return nil
}

// newRouter registers system1, system2 and system3 in print order.
func newRouter(cfg *config.Config) (*service.ProviderRouter, error) {
	md5Hasher, err := utils.NewHasher(utils.HashMD5)
	if err != nil {
		return nil, err
	}
	sha1Hasher, err := utils.NewHasher(utils.HashSHA1)
	if err != nil {
		return nil, err
	}

	secret, err := cfg.System3.Secret()
	if err != nil {
		return nil, err
	}

	system1, err := service.NewSystem1PaymentSystem(md5Hasher)
	if err != nil {
		return nil, fmt.Errorf("create system1: %w", err)
	}
	system2, err := service.NewSystem2PaymentSystem(md5Hasher)
	if err != nil {
		return nil, fmt.Errorf("create system2: %w", err)
	}
	system3, err := service.NewSystem3PaymentSystem(sha1Hasher, secret)
	if err != nil {
		return nil, fmt.Errorf("create system3: %w", err)
	}

	router := service.NewProviderRouter()
	for _, ps := range []service.PaymentSystem{system1, system2, system3} {
		if err := router.RegisterProvider(ps); err != nil {
			return nil, err
		}
	}

	for i, ps := range router.GetProviders() {
		hasher := md5Hasher
		if ps.Code() == models.ProviderSystem3 {
			hasher = sha1Hasher
		}
		log.Debug().
			Int("position", i+1).
			Str("provider", string(ps.Code())).
			Str("algorithm", string(hasher.Algorithm())).
			Msg("Payment system registered")
	}
	return router, nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
