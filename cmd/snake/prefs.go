package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/game"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

var (
	flagPrefSpeed int
	flagPrefSkin  int
	flagPrefFood  int
	flagPrefReset bool
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change stored preferences",
	Long: `Show the preferences stored for a profile, or change them.

Out-of-range values are ignored, as they are in the game.

Examples:
  snake prefs
  snake prefs --profile alice
  snake prefs --speed 5 --food 3 --skin 2
  snake prefs --reset              # forget the profile, max score included`,
	Args: cobra.NoArgs,
	Run:  runPrefs,
}

func init() {
	prefsCmd.Flags().IntVar(&flagPrefSpeed, "speed", 0, "Speed 1-5")
	prefsCmd.Flags().IntVar(&flagPrefSkin, "skin", 0, "Skin 1-3 (1 pink, 2 blue, 3 red)")
	prefsCmd.Flags().IntVar(&flagPrefFood, "food", 0, "Number of berries 1-3")
	prefsCmd.Flags().BoolVar(&flagPrefReset, "reset", false, "Delete everything stored for the profile")
}

func runPrefs(cmd *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitErr("opening preferences database: %v", err)
	}
	defer store.Close()

	if flagPrefReset {
		if err := store.Delete(flagProfile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Profile %q reset.\n", flagProfile)
		return
	}

	p := store.Profile(flagProfile)
	updates := []struct {
		flag  string
		key   string
		value int
		valid func(int) bool
	}{
		{"speed", game.KeySpeed, flagPrefSpeed, config.ValidSpeed},
		{"skin", game.KeySkin, flagPrefSkin, config.ValidSkin},
		{"food", game.KeyFoodNum, flagPrefFood, config.ValidFood},
	}
	for _, u := range updates {
		if !cmd.Flags().Changed(u.flag) {
			continue
		}
		if !u.valid(u.value) {
			fmt.Fprintf(os.Stderr, "Ignoring --%s %d: out of range\n", u.flag, u.value)
			continue
		}
		if err := p.SetInt(u.key, u.value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
	}

	prefs, maxScore, err := readPrefs(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	theme, _ := config.ThemeFor(prefs.Skin)
	fmt.Printf("Profile:   %s\n", p.Name())
	fmt.Printf("Speed:     %d\n", prefs.Speed)
	fmt.Printf("Food:      %d\n", prefs.FoodNum)
	fmt.Printf("Skin:      %d (%s)\n", prefs.Skin, theme.Name)
	fmt.Printf("Max Score: %d\n", maxScore)
}

// readPrefs loads a profile's preferences with the same defaults and range
// checks the game applies at startup.
func readPrefs(p game.Prefs) (config.Preferences, int, error) {
	prefs := config.DefaultPreferences()
	fields := []struct {
		key   string
		dst   *int
		valid func(int) bool
	}{
		{game.KeySpeed, &prefs.Speed, config.ValidSpeed},
		{game.KeySkin, &prefs.Skin, config.ValidSkin},
		{game.KeyFoodNum, &prefs.FoodNum, config.ValidFood},
	}
	for _, f := range fields {
		v, err := p.Int(f.key, *f.dst)
		if err != nil {
			return prefs, 0, err
		}
		if f.valid(v) {
			*f.dst = v
		}
	}

	maxScore, err := p.Int(game.KeyMaxScore, 0)
	if err != nil {
		return prefs, 0, err
	}
	return prefs, max(maxScore, 0), nil
}
