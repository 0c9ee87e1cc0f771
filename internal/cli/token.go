package cli

import (
	"fmt"
	"strings"
	"time"

	"startlabx/internal/config"
	"startlabx/internal/domain/entities"
	"startlabx/internal/infrastructure/auth"

	"github.com/spf13/cobra"
)

type tokenFlags struct {
	userID string
	email  string
	role   string
	ttl    time.Duration
}

func newTokenCmd() *cobra.Command {
	var f tokenFlags
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(f.userID) == "" {
				return fmt.Errorf("--user-id is required")
			}
			var cfg config.Config
			if err := config.ParseEnv(&cfg); err != nil {
				return err
			}
			issuer, err := auth.NewJWTVerifier(cfg.JWTSecret)
			if err != nil {
				return err
			}
			token, err := issuer.Issue(entities.Identity{UserID: f.userID, Email: f.email, Role: f.role}, f.ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.userID, "user-id", "", "subject user id")
	cmd.Flags().StringVar(&f.email, "email", "", "email claim")
	cmd.Flags().StringVar(&f.role, "role", "", "role claim (founder, professional, ...)")
	cmd.Flags().DurationVar(&f.ttl, "ttl", auth.DefaultTokenTTL, "token lifetime")
	return cmd
}
