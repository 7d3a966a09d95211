package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/dto"
	"github.com/NuriAnaliserDev/myCyberapp/internal/application/usecase"
	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/storage"
)

func newBlacklistCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blacklist",
		Short: "Manage deny-list entries in the configured store",
	}

	withBlacklist := func(cmd *cobra.Command, fn func(*usecase.ManageBlacklist) error) error {
		stores, err := storage.Open(cmd.Context(), root.cfg, root.logger)
		if err != nil {
			return err
		}
		defer stores.Close()
		return fn(usecase.NewManageBlacklist(stores.Blacklist, root.logger))
	}

	var reason string
	addCmd := &cobra.Command{
		Use:   "add <domain-or-hash>",
		Short: "Add an entry, or replace the reason of an existing one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBlacklist(cmd, func(uc *usecase.ManageBlacklist) error {
				entry, err := uc.Add(cmd.Context(), dto.AddBlacklistEntryRequest{Target: args[0], Reason: reason})
				if err != nil {
					return err
				}
				if root.output == outputJSON {
					return writeJSON(cmd.OutOrStdout(), entry)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", entry.Target, entry.Reason)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&reason, "reason", "", "Why the target is listed (required)")
	_ = addCmd.MarkFlagRequired("reason")

	removeCmd := &cobra.Command{
		Use:     "remove <domain-or-hash>",
		Aliases: []string{"rm"},
		Short:   "Remove an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBlacklist(cmd, func(uc *usecase.ManageBlacklist) error {
				if err := uc.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return nil
			})
		},
	}

	var limit, offset int
	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List entries, most recently added first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBlacklist(cmd, func(uc *usecase.ManageBlacklist) error {
				page, err := uc.List(cmd.Context(), limit, offset)
				if err != nil {
					return err
				}
				if root.output == outputJSON {
					return writeJSON(cmd.OutOrStdout(), page)
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "TARGET\tREASON\tADDED")
				for _, e := range page.Entries {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Target, e.Reason, e.AddedAt.Format(time.RFC3339))
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d of %d entries\n", len(page.Entries), page.Total)
				return nil
			})
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 50, "Page size")
	listCmd.Flags().IntVar(&offset, "offset", 0, "Entries to skip")

	cmd.AddCommand(addCmd, removeCmd, listCmd)
	return cmd
}
