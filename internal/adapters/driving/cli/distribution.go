package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpora-cli/internal/core/services"
)

var (
	distWindow     int
	distStep       int
	distFeatureSet string
	distToken      string
	distMode       string
)

var distributionCmd = &cobra.Command{
	Use:   "distribution [records.jsonl]",
	Short: "Show per-slice document or feature counts",
	Long: `Slices the corpus into time windows and prints one row per window.
Without --featureset the value is the number of documents in the window.
With --featureset and --token the value is that token's count (or, with
--mode documentCounts, the number of documents containing it).`,
	Args: cobra.ExactArgs(1),
	RunE: runDistribution,
}

func init() {
	distributionCmd.Flags().IntVar(&distWindow, "window", 1, "window size in years")
	distributionCmd.Flags().IntVar(&distStep, "step", 1, "years to advance per slice")
	distributionCmd.Flags().StringVar(&distFeatureSet, "featureset", "", "feature set to count from")
	distributionCmd.Flags().StringVar(&distToken, "token", "", "feature token to count")
	distributionCmd.Flags().StringVar(&distMode, "mode", string(driven.ByCounts),
		"counting mode: counts or documentCounts")
	rootCmd.AddCommand(distributionCmd)
}

func runDistribution(cmd *cobra.Command, args []string) error {
	corpus, err := loadCorpus(context.Background(), args[0])
	if err != nil {
		return err
	}

	opts := services.SliceOptions{WindowSize: distWindow, StepSize: distStep}

	if distFeatureSet == "" {
		it, err := corpus.Slice(opts)
		if err != nil {
			return err
		}
		var rows [][]string
		for s, ok := it.Next(); ok; s, ok = it.Next() {
			rows = append(rows, []string{strconv.Itoa(s.Key), strconv.Itoa(s.Corpus.Len())})
		}
		if err := it.Err(); err != nil {
			return err
		}
		cmd.Print(renderTable([]string{"WINDOW", "DOCUMENTS"}, rows))
		return nil
	}

	keys, values, err := corpus.FeatureDistribution(
		distFeatureSet, parseToken(distToken), driven.RankBy(distMode), opts)
	if err != nil {
		return err
	}
	rows := make([][]string, len(keys))
	for i, key := range keys {
		rows[i] = []string{
			strconv.Itoa(key),
			strconv.FormatFloat(values[i], 'g', -1, 64),
		}
	}
	cmd.Print(renderTable([]string{"WINDOW", distToken}, rows))
	return nil
}
