package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GTDGit/paylink/internal/config"
	"github.com/GTDGit/paylink/internal/utils"
)

func TestRun_FixedSecret(t *testing.T) {
	cfg := &config.Config{
		Env:     "test",
		System3: config.System3Config{SecretMode: config.SecretModeFixed, Salt: "myauch"},
	}

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))

	want := "pay.system1.ru/order?amount=12000RUB&hash=BB04AF0F7ECAEE4AAE62035497DA1387\n" +
		"order.system2.ru/pay?hash=326D6555E436C0129F71FC77A1847DBF\n" +
		"system3.com/pay?amount=12000&curency=RUB&hash=5985519D56B230A51EEE08F6361E80D2688BE59D\n"
	assert.Equal(t, want, out.String())
}

func TestRun_KeyRangeSecret(t *testing.T) {
	cfg := &config.Config{
		Env:     "test",
		System3: config.System3Config{SecretMode: config.SecretModeRange, KeyMin: 0, KeyMax: 200},
	}

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[2], "system3.com/pay?amount=12000&curency=RUB&hash="))
	assert.Len(t, strings.TrimPrefix(lines[2], "system3.com/pay?amount=12000&curency=RUB&hash="), 40)
}

func TestRun_InvalidSecretWritesNothing(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.System3Config
		wantErr error
	}{
		{name: "blank salt", cfg: config.System3Config{SecretMode: config.SecretModeFixed, Salt: " "}, wantErr: utils.ErrInvalidArgument},
		{name: "inverted range", cfg: config.System3Config{SecretMode: config.SecretModeRange, KeyMin: 5, KeyMax: 2}, wantErr: utils.ErrOutOfRange},
		{name: "key range wider than int64", cfg: config.System3Config{SecretMode: config.SecretModeRange, KeyMin: 0, KeyMax: math.MaxInt}, wantErr: utils.ErrOutOfRange},
		{name: "unknown mode", cfg: config.System3Config{SecretMode: "other"}, wantErr: utils.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(&config.Config{Env: "test", System3: tt.cfg}, &out)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out.String())
		})
	}
}
