package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/NuriAnaliserDev/myCyberapp/pkg/auth"
)

// Key pair file names written by token keygen.
const (
	privateKeyFile = "jwt_private.pem"
	publicKeyFile  = "jwt_public.pem"
)

func newTokenCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue development bearer tokens and signing keys",
	}

	var (
		userID         string
		roles          []string
		ttl            time.Duration
		privateKeyPath string
	)
	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a signed token for a user",
		Long: `Issue a token signed with --private-key, or with JWT_SECRET when no key is
given. The issuer is JWT_ISSUER.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id := uuid.New()
			if userID != "" {
				var err error
				if id, err = uuid.Parse(userID); err != nil {
					return fmt.Errorf("invalid --user: %w", err)
				}
			}

			jwtCfg := auth.JWTConfig{
				Secret:     root.cfg.JWTSecret,
				Issuer:     root.cfg.JWTIssuer,
				Expiration: ttl,
			}
			if privateKeyPath != "" {
				pem, err := auth.LoadKeyFromFile(privateKeyPath)
				if err != nil {
					return err
				}
				jwtCfg.PrivateKeyPEM = string(pem)
			}

			svc, err := auth.NewJWTService(jwtCfg)
			if err != nil {
				return err
			}
			token, err := svc.GenerateToken(id, roles)
			if err != nil {
				return err
			}

			if root.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"token":      token,
					"user_id":    id,
					"roles":      roles,
					"expires_at": time.Now().Add(ttl).UTC(),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issueCmd.Flags().StringVar(&userID, "user", "", "User ID (UUID); random when empty")
	issueCmd.Flags().StringSliceVar(&roles, "role", []string{auth.RoleClient}, "Role to grant (repeatable)")
	issueCmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	issueCmd.Flags().StringVar(&privateKeyPath, "private-key", "", "PEM-encoded RSA private key")

	var outDir string
	keygenCmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA key pair for RS256 tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			privPEM, pubPEM, err := auth.GenerateKeyPair()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", outDir, err)
			}

			privPath := filepath.Join(outDir, privateKeyFile)
			pubPath := filepath.Join(outDir, publicKeyFile)
			if err := os.WriteFile(privPath, privPEM, 0o600); err != nil {
				return fmt.Errorf("write private key: %w", err)
			}
			if err := os.WriteFile(pubPath, pubPEM, 0o644); err != nil {
				return fmt.Errorf("write public key: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s\nset JWT_PUBLIC_KEY_FILE=%s for reputationd\n", privPath, pubPath, pubPath)
			return nil
		},
	}
	keygenCmd.Flags().StringVar(&outDir, "out", ".", "Output directory")

	cmd.AddCommand(issueCmd, keygenCmd)
	return cmd
}
