package cmd

import (
	"fmt"
	"os"

	"fcount/pkg/config"

	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a sample config file",
	Long: `Write a sample config.json to the current directory (or the path given
with --config). Edit the generated file to point at the directory and
extensions you want to count; set connection_type to "ssh" for remote scans.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := configFlag
		if path == "" {
			path = config.DefaultConfigFile
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", path)
			os.Exit(1)
		}

		if err := os.WriteFile(path, []byte(config.SampleConfig), config.PermConfigFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config file: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s\n", successStyle.Render("✓ Sample config written to "+path))
		fmt.Printf("%s\n", mutedStyle.Render("Edit it, then run 'fcount' to start a scan"))
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}
