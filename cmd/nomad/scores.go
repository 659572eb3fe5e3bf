package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/desert-nomad/internal/registry"
	"github.com/vovakirdan/desert-nomad/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresLimit int
	flagScoresRun   string
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top 10 runs of a variant, nomad by default.

Examples:
  nomad scores
  nomad scores nomad_calm
  nomad scores --all
  nomad scores --limit 0
  nomad scores --run 3f2a9c1e-...
  nomad scores nomad_calm --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show a summary of every variant")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show (0 = all)")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by its ID")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run of the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := defaultVariant
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'nomad list' to see available variants", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagScoresAll:
		return printSummary(out, store)
	case flagScoresRun != "":
		return printRun(out, store, flagScoresRun)
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all runs of %s.\n", gameID)
		return nil
	}
	return printScores(out, store, gameID, flagScoresLimit)
}

// printRun writes the details of one run.
func printRun(out io.Writer, store *storage.Store, runID string) error {
	entry, err := store.ScoreByRun(runID)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no run with ID %q", runID)
	}
	fmt.Fprintf(out, "Run:     %s\n", entry.RunID)
	fmt.Fprintf(out, "Variant: %s\n", entry.GameID)
	fmt.Fprintf(out, "Score:   %d\n", entry.Score)
	fmt.Fprintf(out, "Date:    %s\n", entry.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// printScores writes the top runs of one variant. A limit of 0 or less
// lists every run.
func printScores(out io.Writer, store *storage.Store, gameID string, limit int) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	var scores []storage.ScoreEntry
	if limit > 0 {
		scores, err = store.TopScores(gameID, limit)
	} else {
		scores, err = store.AllScores(gameID)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", game.Title())
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'nomad play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Date", "Run")
	fmt.Fprintf(out, "  %-4s  %-10s  %-16s  %s\n", "----", "-----", "----", "---")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-16s  %s\n", i+1, entry.Score, dateStr, shortID(entry.RunID))
	}

	fmt.Fprintln(out)
	best, err := store.Records(gameID).HighScore()
	if err == nil {
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	return nil
}

// printSummary writes one line of statistics per played variant.
func printSummary(out io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-12s  %-6s  %-8s  %-8s  %s\n", "Variant", "Runs", "Best", "Average", "Last played")
	fmt.Fprintf(out, "  %-12s  %-6s  %-8s  %-8s  %s\n", "-------", "----", "----", "-------", "-----------")
	for _, id := range ids {
		st := all[id]
		fmt.Fprintf(out, "  %-12s  %-6d  %-8d  %-8.0f  %s\n",
			id, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
