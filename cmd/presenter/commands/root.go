package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "presenter",
	Short: "Synchronized dual-screen PDF presenter",
	Long: `Presenter drives a two-screen PDF presentation: one browser view
shows the audience-facing slide pages, a second, synchronized view
shows the presenter's notes pages for the same slide.

By default pages are paired (1/2, 3/4, ...): odd pages are slides,
even pages are notes. A manual boundary list (--slides 1,4,9) instead
marks which pages face the audience; everything between two marked
pages becomes notes for the earlier one.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Fatal startup errors are already reported by the printer; keep
	// cobra from printing them again with the usage text attached.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
