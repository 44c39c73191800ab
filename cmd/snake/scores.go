package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-snake/internal/game"
	"github.com/vovakirdan/neon-snake/internal/platform/tui"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show max scores per profile",
	Long: `Display the stored max score of every profile, best first.

Examples:
  snake scores
  snake scores --limit 3
  snake scores --tui               # interactive table`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of profiles to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitErr("opening preferences database: %v", err)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	entries, err := store.Top(game.KeyMaxScore, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("Max Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first max score!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "Rank", "Profile", "Max Score", "Updated")
	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "----", "-------", "---------", "-------")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-20s  %-10d  %s\n", i+1, e.Profile, e.Value, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
