// Package cli wires the corpora commands: loading bibliographic records,
// inspecting corpus statistics, and running time-sliced aggregations.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpora-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpora-cli/internal/core/services"
	"github.com/custodia-labs/corpora-cli/internal/logger"
	"github.com/custodia-labs/corpora-cli/internal/readers/jsonl"
)

var version = "dev"

var (
	flagVerbose   bool
	flagConfigDir string

	flagIndexBy       string
	flagIndexFields   []string
	flagIndexFeatures []string

	configStore driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "corpora",
	Short: "Index, slice, and aggregate bibliographic corpora",
	Long: `Corpora builds an in-memory corpus from bibliographic records and
answers time-sliced statistical queries over it: document distributions,
per-feature time series, and top-feature rankings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		store, err := file.NewConfigStore(flagConfigDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		configStore = store
		logger.SetVerbose(flagVerbose || store.GetBool(file.KeyVerbose))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.corpora)")

	rootCmd.PersistentFlags().StringVar(&flagIndexBy, "index-by", "", "field identifying documents (default: hash of title+authors)")
	rootCmd.PersistentFlags().StringSliceVar(&flagIndexFields, "index-field", nil, "fields to index eagerly")
	rootCmd.PersistentFlags().StringSliceVar(&flagIndexFeatures, "index-feature", nil, "fields to featurize eagerly")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("corpora version %s\n", version)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// corpusOptions merges flags over config file defaults.
func corpusOptions() services.Options {
	opts := services.Options{
		IndexBy:       flagIndexBy,
		IndexFields:   flagIndexFields,
		IndexFeatures: flagIndexFeatures,
	}
	if opts.IndexBy == "" {
		opts.IndexBy = configStore.GetString(file.KeyIndexBy)
	}
	if opts.IndexFields == nil {
		opts.IndexFields = configStore.GetStringSlice(file.KeyIndexFields)
	}
	if opts.IndexFeatures == nil {
		opts.IndexFeatures = configStore.GetStringSlice(file.KeyIndexFeatures)
	}
	return opts
}

// loadCorpus reads a JSONL file and builds the corpus from it.
func loadCorpus(ctx context.Context, path string) (*services.Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer f.Close()

	docs, err := jsonl.New().Read(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	corpus, err := services.NewCorpus(docs, corpusOptions())
	if err != nil {
		return nil, fmt.Errorf("build corpus: %w", err)
	}
	return corpus, nil
}

// parseToken renders a --token flag value as a feature token key.
func parseToken(raw string) domain.Key {
	return domain.StringKey(raw)
}
