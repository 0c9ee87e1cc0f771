package cli

import (
	"context"
	"fmt"

	"startlabx/internal/config"

	"github.com/spf13/cobra"
)

func newExpireOffersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expire-offers",
		Short: "Expire PENDING offers older than OFFER_EXPIRY_WINDOW",
		Long: `Moves every PENDING offer created before now minus OFFER_EXPIRY_WINDOW to
EXPIRED and notifies the professional it was made to. Safe to run from cron:
offers decided in the meantime are skipped.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := runExpireOffers(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "expired %d offer(s)\n", n)
			return nil
		},
	}
}

func runExpireOffers(ctx context.Context) (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return 0, err
	}
	a, err := buildApp(ctx, cfg)
	if err != nil {
		return 0, err
	}

	n, err := a.offers.ExpirePending(ctx)
	if closeErr := a.Close(ctx); err == nil {
		err = closeErr
	}
	return n, err
}
