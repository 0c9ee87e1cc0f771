package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"startlabx/internal/config"
	"startlabx/internal/domain/entities"
	"startlabx/internal/infrastructure/auth"
	"startlabx/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cmd := newTokenCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--user-id", "u-42", "--email", "dev@startlabx.io", "--role", "founder", "--ttl", "1h"})
	require.NoError(t, cmd.Execute())

	verifier, err := auth.NewJWTVerifier("test-secret")
	require.NoError(t, err)
	id, err := verifier.Verify("Bearer " + strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, entities.Identity{UserID: "u-42", Email: "dev@startlabx.io", Role: "founder"}, id)
}

func TestTokenCommandRequiresUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cmd := newTokenCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(nil)
	require.Error(t, cmd.Execute())
}

func TestExpireOffersAgainstSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "startlabx.db")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", path)
	t.Setenv("OFFER_EXPIRY_WINDOW", "1ms")

	cfg, err := config.Load()
	require.NoError(t, err)

	a, err := buildApp(ctx, cfg)
	require.NoError(t, err)

	founder := entities.Identity{UserID: "founder-1"}
	s, err := a.startups.Register(ctx, founder, "Acme", "")
	require.NoError(t, err)
	_, err = a.offers.CreateOffer(ctx, founder, usecase.CreateOfferInput{
		StartupID:        s.ID,
		ProfessionalID:   "pro-1",
		EquityPercentage: decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	require.NoError(t, a.Close(ctx))

	time.Sleep(10 * time.Millisecond)

	n, err := runExpireOffers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = runExpireOffers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "expired offers are terminal")
}

func TestExpireOffersHelpNamesRecipient(t *testing.T) {
	long := newExpireOffersCmd().Long
	assert.Contains(t, long, "notifies the professional")
	assert.NotContains(t, long, "startup owner")
}

func TestBuildAppRejectsUnknownDriver(t *testing.T) {
	_, err := buildApp(context.Background(), config.Config{StorageDriver: "postgres"})
	require.Error(t, err)
}
