package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/risk-dashboard/internal/dashboard"
	"github.com/sells-group/risk-dashboard/internal/fetcher"
	"github.com/sells-group/risk-dashboard/internal/model"
	"github.com/sells-group/risk-dashboard/internal/tabular"
)

// reportOptions selects the files to load and how to print the result.
type reportOptions struct {
	Files    map[model.Kind]string
	Industry string
	Format   string
}

var (
	reportCompanies string
	reportPortfolio string
	reportFeatures  string
	reportIndustry  string
	reportFormat    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute the dashboard views from local files and print them",
	Long:  "Loads optional portfolio, feature and company files on top of the built-in sample data, then prints KPIs, the top-risk table, map points and filter options.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("report"); err != nil {
			return err
		}
		opts := reportOptions{
			Files: map[model.Kind]string{
				model.KindCompanies: reportCompanies,
				model.KindPortfolio: reportPortfolio,
				model.KindFeatures:  reportFeatures,
			},
			Industry: reportIndustry,
			Format:   reportFormat,
		}
		return runReport(cmd.Context(), newState(cfg.Dashboard), opts, cmd.OutOrStdout())
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportCompanies, "companies", "", "company file (csv or xlsx)")
	reportCmd.Flags().StringVar(&reportPortfolio, "portfolio", "", "portfolio aggregate file (csv or xlsx)")
	reportCmd.Flags().StringVar(&reportFeatures, "features", "", "feature importance file (csv or xlsx)")
	reportCmd.Flags().StringVar(&reportIndustry, "industry", "", "industry filter (default from config)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "json", "output format: json or yaml")
	rootCmd.AddCommand(reportCmd)
}

// runReport reads the given files concurrently, commits them to state in a
// fixed kind order and writes the resulting view to out.
func runReport(ctx context.Context, state *dashboard.State, opts reportOptions, out io.Writer) error {
	if opts.Format != "json" && opts.Format != "yaml" {
		return eris.Errorf("report: unsupported format %q", opts.Format)
	}

	results := make([][]tabular.Row, len(model.Kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range model.Kinds {
		i, kind := i, kind
		path := opts.Files[kind]
		if path == "" {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows, err := readRows(path)
			if err != nil {
				return eris.Wrapf(err, "report: load %s file", kind)
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, kind := range model.Kinds {
		if opts.Files[kind] == "" {
			continue
		}
		res := state.Apply(kind, results[i])
		zap.L().Info("report: applied file",
			zap.String("kind", string(kind)),
			zap.String("path", opts.Files[kind]),
			zap.Int("rows", res.Rows),
			zap.Bool("committed", res.Committed),
			zap.String("reason", res.Reason),
		)
	}

	var view dashboard.View
	if opts.Industry != "" {
		view = state.ViewFor(opts.Industry)
	} else {
		view = state.View()
	}

	if opts.Format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return eris.Wrap(err, "report: encode yaml")
		}
		return eris.Wrap(enc.Close(), "report: flush yaml")
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		return eris.Wrap(err, "report: encode json")
	}
	return nil
}

func readRows(path string) ([]tabular.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "read file")
	}
	return fetcher.Rows(fetcher.Upload{
		Data:   data,
		Format: fetcher.Detect(path, ""),
	})
}
