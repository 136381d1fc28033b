package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpora-cli/internal/core/services"
)

var (
	topFeatureSet string
	topN          int
	topBy         string
	topPerSlice   bool
	topWindow     int
	topStep       int
)

var topCmd = &cobra.Command{
	Use:   "top [records.jsonl]",
	Short: "Show the top-ranked feature tokens",
	Long: `Ranks the tokens of a feature set by summed counts (or by the
number of documents they occur in) and prints the top N. With --per-slice
a separate ranking is printed for each time window, computed on that
window's filtered feature store.`,
	Args: cobra.ExactArgs(1),
	RunE: runTop,
}

func init() {
	topCmd.Flags().StringVar(&topFeatureSet, "featureset", "tokens", "feature set to rank")
	topCmd.Flags().IntVarP(&topN, "top", "n", 20, "number of tokens to show")
	topCmd.Flags().StringVar(&topBy, "by", string(driven.ByCounts),
		"ranking statistic: counts or documentCounts")
	topCmd.Flags().BoolVar(&topPerSlice, "per-slice", false, "rank within each time window")
	topCmd.Flags().IntVar(&topWindow, "window", 1, "window size in years (with --per-slice)")
	topCmd.Flags().IntVar(&topStep, "step", 1, "years to advance per slice (with --per-slice)")
	rootCmd.AddCommand(topCmd)
}

func runTop(cmd *cobra.Command, args []string) error {
	corpus, err := loadCorpus(context.Background(), args[0])
	if err != nil {
		return err
	}

	if !topPerSlice {
		ranked, err := corpus.TopFeatures(topFeatureSet, topN, driven.RankBy(topBy))
		if err != nil {
			return err
		}
		cmd.Print(renderTable([]string{"TOKEN", "SCORE"}, rankRows(ranked)))
		return nil
	}

	tops, err := corpus.TopFeaturesPerSlice(topFeatureSet, topN, driven.RankBy(topBy),
		services.SliceOptions{WindowSize: topWindow, StepSize: topStep})
	if err != nil {
		return err
	}
	for _, slice := range tops {
		cmd.Println(mutedStyle.Render("window " + strconv.Itoa(slice.Key)))
		cmd.Print(renderTable([]string{"TOKEN", "SCORE"}, rankRows(slice.Top)))
		cmd.Println()
	}
	return nil
}

func rankRows(ranked []driven.RankedToken) [][]string {
	rows := make([][]string, len(ranked))
	for i, r := range ranked {
		rows[i] = []string{
			r.Token.String(),
			strconv.FormatFloat(r.Score, 'g', -1, 64),
		}
	}
	return rows
}
