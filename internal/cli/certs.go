package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/NuriAnaliserDev/myCyberapp/pkg/tlsutil"
)

func newCertsCmd(_ *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "certs",
		Short: "Manage development TLS certificates",
	}

	var (
		hosts  []string
		outDir string
	)
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a development CA and a server certificate signed by it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := tlsutil.GenerateDevCertificates(hosts, outDir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "TLS_CERT_FILE=%s\nTLS_KEY_FILE=%s\nCA file for clients: %s\n",
				filepath.Join(outDir, tlsutil.ServerFile),
				filepath.Join(outDir, tlsutil.ServerKeyFile),
				filepath.Join(outDir, tlsutil.CAFile),
			)
			return nil
		},
	}
	generateCmd.Flags().StringSliceVar(&hosts, "host", []string{"localhost", "127.0.0.1"}, "DNS name or IP for the server certificate (repeatable)")
	generateCmd.Flags().StringVar(&outDir, "out", "certs", "Output directory")

	cmd.AddCommand(generateCmd)
	return cmd
}
