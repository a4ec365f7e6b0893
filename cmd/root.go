package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/sahaay/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "sahaay",
	Short: "Assistive learning and communication in the terminal",
	Long: "Sahaay: inclusion lessons, child learning games and an assistive " +
		"communication hub in one terminal app.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (YAML, TOML or JSON); SAHAAY_* env vars override it")
	rootCmd.Flags().Bool("skip-welcome", false, "Start on the home menu")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(quizCmd)
}

// loadConfig reads the file named by --config, then env overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
