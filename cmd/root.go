package cmd

import (
	"fmt"
	"os"

	"fcount/pkg/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var (
	configFlag   string
	jsonOutput   bool
	noProgress   bool
	collectPaths bool

	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
)

var rootCmd = &cobra.Command{
	Use:   "fcount",
	Short: "Count files by extension on local or remote filesystems",
	Long: `fcount recursively counts files matching a set of extensions under a
root directory, either on the local filesystem or on a remote host over
SSH/SFTP.

The scan is driven by a JSON config file (see 'fcount init'). Inaccessible
subtrees are skipped and reported; they never abort the scan.

Examples:
  fcount                        # scan using ./config.json
  fcount --config prod.json     # scan a remote host described in prod.json
  fcount --json                 # machine-readable output for automation
  fcount --paths                # also list every matched file`,
	Version: Version,
	Args:    cobra.NoArgs,
	Run:     runRootCommand,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate("fcount version {{.Version}}\n")

	rootCmd.AddCommand(initCmd)

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", config.DefaultConfigFile, "Path to the scan config file")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON (disables interactive progress)")
	rootCmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress display")
	rootCmd.Flags().BoolVar(&collectPaths, "paths", false, "Collect and print matched file paths")
}
