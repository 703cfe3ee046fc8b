package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/spigell/career-compass/internal/bank"
	"github.com/spigell/career-compass/internal/filtering"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the embedded question bank version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		short, _ := cmd.Flags().GetBool("short")
		return printVersion(os.Stdout, short)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().Bool("short", false, "print only the binary version")
}

func printVersion(w io.Writer, short bool) error {
	if short {
		fmt.Fprintln(w, version)
		return nil
	}

	b, err := bank.Load()
	if err != nil {
		return fmt.Errorf("loading question bank: %w", err)
	}

	fmt.Fprintf(w, "%s version: %s\n", app, version)
	fmt.Fprintf(w, "question bank: %s (%d questions)\n", b.Version(), b.Len())
	for _, t := range bank.Tiers() {
		fmt.Fprintf(w, "  %-12s %d questions\n", t, len(filtering.SelectQuestions(b, t)))
	}
	return nil
}
