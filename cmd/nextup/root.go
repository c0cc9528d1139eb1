package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/nextup/internal/cli"
	"github.com/aretw0/nextup/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "nextup",
	Short: "Randomize the speaking order for your daily standup",
	Long: `nextup shuffles a list of names into a speaking order and shows it in the
terminal with a per-person stopwatch and an overall meeting countdown.

Names come from a plain-text file, one per line. Defaults can also be kept in
a .nextup.yaml next to where you run it; flags always win.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		title, _ := flags.GetString("title")
		names, _ := flags.GetString("names")
		duration, _ := flags.GetInt("duration")
		hideTimer, _ := flags.GetBool("hide-timer")
		debug, _ := flags.GetBool("debug")
		configPath, _ := flags.GetString("config")
		printOrder, _ := flags.GetBool("print")

		return cli.Run(cli.Options{
			Flags: config.Flags{
				Title:           title,
				TitleSet:        flags.Changed("title"),
				Names:           names,
				NamesSet:        flags.Changed("names"),
				DurationMinutes: duration,
				DurationSet:     flags.Changed("duration"),
				HideTimer:       hideTimer,
				HideTimerSet:    flags.Changed("hide-timer"),
				Debug:           debug,
			},
			ConfigPath:    configPath,
			ConfigPathSet: flags.Changed("config"),
			Print:         printOrder,
		})
	},
}

// Execute runs the root command. Configuration failures print to stderr and
// exit non-zero; a finished session exits zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	defaults := config.Default()

	rootCmd.Flags().String("title", defaults.Title, "window title")
	rootCmd.Flags().String("names", defaults.NamesFile, "path to file with team member names, one per line")
	rootCmd.Flags().Int("duration", int(defaults.Duration.Minutes()), "meeting duration in minutes")
	rootCmd.Flags().Bool("hide-timer", false, "hide the meeting countdown")
	rootCmd.Flags().String("config", "", "path to a YAML defaults file (default \""+config.DefaultFile+"\" if present)")
	rootCmd.Flags().Bool("print", false, "print the shuffled order and exit (implied when stdout is not a terminal)")
	rootCmd.Flags().Bool("debug", false, "log debug output to stderr")
}
