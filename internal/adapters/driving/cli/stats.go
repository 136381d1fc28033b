package cli

import (
	"context"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [records.jsonl]",
	Short: "Show corpus statistics",
	Long: `Builds a corpus from the given JSON Lines records and prints its
size, indexed fields with their distinct-value counts, and the held
feature sets.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	corpus, err := loadCorpus(context.Background(), args[0])
	if err != nil {
		return err
	}

	cmd.Printf("Documents: %d\n\n", corpus.Len())

	fields := corpus.IndexedFields()
	sort.Strings(fields)
	rows := make([][]string, 0, len(fields))
	for _, field := range fields {
		keys, err := corpus.IndexKeys(field)
		if err != nil {
			return err
		}
		rows = append(rows, []string{field, strconv.Itoa(len(keys))})
	}
	if len(rows) > 0 {
		cmd.Print(renderTable([]string{"INDEX", "VALUES"}, rows))
		cmd.Println()
	}

	names := corpus.FeatureSets()
	sort.Strings(names)
	rows = rows[:0]
	for _, name := range names {
		store, _ := corpus.Features(name)
		rows = append(rows, []string{name, strconv.Itoa(store.Len())})
	}
	if len(rows) > 0 {
		cmd.Print(renderTable([]string{"FEATURE SET", "DOCUMENTS"}, rows))
	}
	return nil
}
