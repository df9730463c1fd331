package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dentalperfections/dental_backend/config"
	entuser "github.com/dentalperfections/dental_backend/internal/repo/user"
	"github.com/dentalperfections/dental_backend/pkg/authorize"
	"github.com/dentalperfections/dental_backend/pkg/database"
	"github.com/dentalperfections/dental_backend/pkg/util/password"
)

// NewSeedStaffCommand provisions a staff account. Self-registration only
// produces patient accounts, so this is the one way staff get created.
func NewSeedStaffCommand() *cobra.Command {
	var (
		username string
		pass     string
		email    string
	)

	cmd := &cobra.Command{
		Use:   "seed-staff",
		Short: "Create a staff account and grant it the staff role",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || pass == "" {
				return fmt.Errorf("--username and --password are required")
			}

			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			passHash, err := password.HashWithParams(pass, password.FromCentralConfig(cfg.Password).ToParams())
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			q := client.User.Create().
				SetUsername(username).
				SetPasswordHash(passHash).
				SetIsStaff(true)
			if email != "" {
				q = q.SetEmail(email)
			}

			u, err := q.Save(ctx)
			if err != nil {
				if exists, qerr := client.User.Query().Where(entuser.Username(username)).Exist(ctx); qerr == nil && exists {
					return fmt.Errorf("username %q already exists", username)
				}
				return fmt.Errorf("failed to create staff user: %w", err)
			}

			casbinDBDSN := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, casbinDBDSN)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}

			if err := authorize.AssignStaffRole(ctx, auth, u.ID.String()); err != nil {
				return fmt.Errorf("failed to assign staff role: %w", err)
			}

			fmt.Printf("Staff account %q created (%s).\n", username, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "staff username")
	cmd.Flags().StringVar(&pass, "password", "", "staff password")
	cmd.Flags().StringVar(&email, "email", "", "staff email (optional)")

	return cmd
}
