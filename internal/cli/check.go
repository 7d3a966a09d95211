package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/dto"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/port"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/service"
	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/config"
	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/feed"
	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/storage"
	grpcpresentation "github.com/NuriAnaliserDev/myCyberapp/internal/presentation/grpc"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/tlsutil"
)

type checkOptions struct {
	remote   string
	caFile   string
	token    string
	timeout  time.Duration
	tls      bool
	insecure bool
	explain  bool
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Score a URL or file hash",
		Long: `Score a URL or file hash with the local engine and store, or against a
running reputationd when --remote is set.`,
	}

	cmd.PersistentFlags().StringVar(&opts.remote, "remote", "", "reputationd gRPC address (host:port); empty scores locally")
	cmd.PersistentFlags().BoolVar(&opts.tls, "tls", false, "Use TLS for --remote")
	cmd.PersistentFlags().StringVar(&opts.caFile, "ca-file", "", "CA certificate for --tls")
	cmd.PersistentFlags().BoolVar(&opts.insecure, "insecure-skip-verify", false, "Skip server certificate verification")
	cmd.PersistentFlags().StringVar(&opts.token, "token", "", "Bearer token sent with --remote calls")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Overall deadline")

	urlCmd := &cobra.Command{
		Use:   "url <url>",
		Short: "Score a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			if opts.remote != "" {
				resp, err := remoteCheck(ctx, opts, func(ctx context.Context, c grpcpresentation.ReputationServiceClient) (*grpcpresentation.CheckResponse, error) {
					return c.CheckURL(ctx, &grpcpresentation.CheckURLRequest{URL: args[0]})
				})
				if err != nil {
					return err
				}
				return printResult(cmd.OutOrStdout(), root.output, fromProto(resp))
			}

			engine, closeStore, err := localEngine(ctx, root)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := printResult(cmd.OutOrStdout(), root.output, dto.FromResult(engine.CheckURL(ctx, args[0]))); err != nil {
				return err
			}
			if opts.explain && root.output == outputText {
				printSignals(cmd.OutOrStdout(), engine, args[0])
			}
			return nil
		},
	}
	urlCmd.Flags().BoolVar(&opts.explain, "explain", false, "Show every local signal (local mode only)")

	hashCmd := &cobra.Command{
		Use:   "hash <sha256>",
		Short: "Check an application package hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			if opts.remote != "" {
				resp, err := remoteCheck(ctx, opts, func(ctx context.Context, c grpcpresentation.ReputationServiceClient) (*grpcpresentation.CheckResponse, error) {
					return c.CheckHash(ctx, &grpcpresentation.CheckHashRequest{Hash: args[0]})
				})
				if err != nil {
					return err
				}
				return printResult(cmd.OutOrStdout(), root.output, fromProto(resp))
			}

			engine, closeStore, err := localEngine(ctx, root)
			if err != nil {
				return err
			}
			defer closeStore()

			return printResult(cmd.OutOrStdout(), root.output, dto.FromResult(engine.CheckHash(ctx, args[0])))
		},
	}

	cmd.AddCommand(urlCmd, hashCmd)
	return cmd
}

// localEngine builds an engine over the configured store. Local checks are
// not recorded in the request log or statistics.
func localEngine(ctx context.Context, root *rootOptions) (*service.Engine, func(), error) {
	cfg := root.cfg

	rules := service.DefaultRules()
	if cfg.RulesFile != "" {
		var err error
		if rules, err = config.LoadRules(cfg.RulesFile); err != nil {
			return nil, nil, err
		}
	}

	stores, err := storage.Open(ctx, cfg, root.logger)
	if err != nil {
		return nil, nil, err
	}

	var reputationFeed port.ReputationFeed
	if cfg.SafeBrowsingAPIKey != "" {
		reputationFeed = feed.NewSafeBrowsingClient(cfg.SafeBrowsingAPIKey, cfg.SafeBrowsingURL, version)
	}

	engine, err := service.NewEngine(rules, service.EngineDeps{
		Blacklist:   stores.Blacklist,
		Feed:        reputationFeed,
		FeedTimeout: cfg.FeedTimeout,
		Logger:      root.logger,
	})
	if err != nil {
		_ = stores.Close()
		return nil, nil, err
	}
	return engine, func() { _ = stores.Close() }, nil
}

func remoteCheck(
	ctx context.Context,
	opts *checkOptions,
	call func(context.Context, grpcpresentation.ReputationServiceClient) (*grpcpresentation.CheckResponse, error),
) (*grpcpresentation.CheckResponse, error) {
	var creds credentials.TransportCredentials = insecure.NewCredentials()
	if opts.tls {
		var err error
		creds, err = tlsutil.ClientCredentials(opts.caFile, opts.insecure)
		if err != nil {
			return nil, err
		}
	}

	conn, err := grpc.NewClient(opts.remote, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", opts.remote, err)
	}
	defer conn.Close()

	if opts.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+opts.token)
	}
	return call(ctx, grpcpresentation.NewReputationServiceClient(conn))
}

func fromProto(resp *grpcpresentation.CheckResponse) dto.ScoreResponse {
	return dto.ScoreResponse{
		Score:        resp.Score,
		Verdict:      resp.Verdict,
		Reasons:      resp.Reasons,
		Method:       resp.Method,
		MLConfidence: resp.MLConfidence,
	}
}

func printResult(w io.Writer, format string, resp dto.ScoreResponse) error {
	if format == outputJSON {
		return writeJSON(w, resp)
	}

	fmt.Fprintf(w, "verdict: %s\n", resp.Verdict)
	fmt.Fprintf(w, "score:   %d\n", resp.Score)
	if resp.Method != "" {
		fmt.Fprintf(w, "method:  %s\n", resp.Method)
	}
	if resp.MLConfidence != nil {
		fmt.Fprintf(w, "confidence: %.2f\n", *resp.MLConfidence)
	}
	if len(resp.Reasons) > 0 {
		fmt.Fprintf(w, "reasons:\n  - %s\n", strings.Join(resp.Reasons, "\n  - "))
	}
	return nil
}

func printSignals(w io.Writer, engine *service.Engine, raw string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\nSIGNAL\tFIRED\tPOINTS\tREASON")
	for _, s := range engine.Explain(raw) {
		fmt.Fprintf(tw, "%s\t%t\t%d\t%s\n", s.Kind(), s.Triggered(), s.Points(), s.Reason())
	}
	_ = tw.Flush()
}
