package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"texplore/internal/app"
	"texplore/internal/config"
	appver "texplore/internal/version"
)

var (
	configPath  string
	logFile     string
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "texplore [path]",
	Short: "texplore – git-aware terminal file explorer",
	Long:  "texplore browses a directory as a tree annotated with git status, previews files through bat and moves deletions to the trash.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintln(cmd.OutOrStdout(), appver.AppVersion)
			return nil
		}
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		return app.Start(root, c)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "print version and exit")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is config.yaml in the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write debug logs to this file")
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	return loadConfigWith(cmd, config.Load)
}

func loadConfigWith(cmd *cobra.Command, load func(string) (config.Config, error)) (config.Config, error) {
	c, err := load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("log-file") {
		c.LogFile = logFile
	}
	return c, nil
}

// resolvedConfigPath is the file `config` and `config init` operate on.
func resolvedConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.Path()
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
