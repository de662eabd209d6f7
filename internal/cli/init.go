package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/rf/internal/config"
	"github.com/rileyhilliard/rf/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initForce bool

// initCmd creates a new .rf.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .rf.yaml configuration",
	Long: `Write a .rf.yaml file with the default configuration in the current
directory. rf works without one; create it to change thresholds, the
display order, or the public IP lookup.

Examples:
  rf init
  rf init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}

// configHeader is prepended to the generated config file.
const configHeader = `# rf configuration
# Every key is optional; missing keys keep their defaults.
#
# display.order       - metric lines, printed in this order. Known metrics:
#                       user, os, cpu, cpu_model, cpu_temp, wm, uptime,
#                       memory, disk, local_ip, public_ip, battery
# network.public_ip   - set to false to never make an outbound request
# thresholds          - warning/critical cutoffs for the usage and
#                       temperature colors

`

// initCommand writes the default config to ./.rf.yaml.
func initCommand(force bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}
	configPath := filepath.Join(cwd, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s already exists", config.ConfigFileName),
			"Use --force to overwrite it")
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	content := configHeader + string(data)
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("✓ Created %s\n", configPath)
	return nil
}
