package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags_OverridesSelectedFields(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{
		"testbin",
		"-a", ":9001",
		"-g", ":50052",
		"-d", "postgres://u:p@db:5432/users",
		"-s", "flag-secret",
		"-t", "15",
		"-r", "120",
		"-w", "10",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":9001", cfg.EndpointAddrHTTP)
	assert.Equal(t, ":50052", cfg.EndpointAddrGRPC)
	assert.Equal(t, "postgres://u:p@db:5432/users", cfg.DatabaseDSN)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 120*time.Minute, cfg.RefreshTokenValidityDuration)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func Test_parseFlags_KeepsDefaultsWhenAbsent(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-unrelated", "x"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":8000", cfg.EndpointAddrHTTP)
	assert.Equal(t, 60*time.Minute, cfg.AccessTokenValidityDuration)
}
