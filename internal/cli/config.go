package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"texplore/internal/config"
)

var (
	initDefaults bool
	initForce    bool
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&initDefaults, "yes", "y", false, "write the defaults without prompting")
	configInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the config file location and resolved settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}
		c, err := loadConfigWith(cmd, config.LoadOrDefault)
		if err != nil {
			return err
		}
		b, err := yaml.Marshal(c.File())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		state := "not found, using defaults"
		if fileExists(path) {
			state = "found"
		}
		fmt.Fprintf(out, "# %s (%s)\n", path, state)
		_, err = out.Write(b)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create config.yaml interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}
		if fileExists(path) && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		c, err := loadConfigWith(cmd, config.LoadOrDefault)
		if err != nil {
			return err
		}
		if !initDefaults {
			if err := runConfigForm(&c); err != nil {
				return err
			}
		}
		if err := config.Save(path, c); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ wrote %s\n", path)
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of config.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := config.MarshalSchema(config.Schema())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func fileExists(path string) bool {
	if st, err := os.Stat(path); err == nil && !st.IsDir() {
		return true
	}
	return false
}
