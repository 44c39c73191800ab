// snake is a neon snake game for the terminal.
//
// Usage:
//
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake demo               - Run a headless game, optionally spectated
//	snake scores             - Show max scores per profile
//	snake prefs              - Show or change stored preferences
//
// Global flags:
//
//	--fps <rate>        - Host frame rate (default: 60)
//	--seed <value>      - RNG seed for reproducible gameplay
//	--db <path>         - Database path (default: ~/.snake/snake.db)
//	--profile <name>    - Preference profile (default: local)
//	--config <path>     - Settings YAML
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagProfile  string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

// envFlags maps flag names to the environment variables that supply their
// defaults. A flag set on the command line wins.
var envFlags = map[string]string{
	"db":      "SNAKE_DB",
	"profile": "SNAKE_PROFILE",
	"ssh":     "SNAKE_SSH_ADDR",
	"http":    "SNAKE_HTTP_ADDR",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Neon Snake - a glowing snake game in your terminal",
	Long: `Neon Snake is a grid snake game with wraparound edges, up to three
berries on the board and three color skins.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  demo     - Run a headless game
  scores   - View max scores per profile
  prefs    - Show or change stored preferences

Examples:
  snake play
  snake play --http :8080
  snake serve --ssh :2222
  snake scores
  snake prefs --speed 5 --skin 2`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/snake.db", "Path to preferences database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "local", "Preference profile name")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(prefsCmd)
}

// loadEnv reads an optional .env file and fills unset flags from the
// environment.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config: cannot read .env: %w", err)
	}
	return applyEnv(cmd, os.LookupEnv)
}

func applyEnv(cmd *cobra.Command, lookup func(string) (string, bool)) error {
	for name, env := range envFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		v, ok := lookup(env)
		if !ok || v == "" {
			continue
		}
		if err := f.Value.Set(v); err != nil {
			return fmt.Errorf("config: invalid %s: %w", env, err)
		}
	}
	return nil
}
