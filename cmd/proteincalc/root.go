package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"lg/protein-calc-go-api/internal/logging"
)

var printer = message.NewPrinter(language.English)

// NewRootCmd creates the proteincalc root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:          "proteincalc",
		Short:        "Estimate daily protein needs",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.New(logging.Config{Level: logLevel, Format: "console", Output: cmd.ErrOrStderr()})
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("json", false, "Print the result as JSON")

	cmd.AddCommand(NewDailyCmd(), NewLeanMassCmd(), NewRecommendCmd())
	return cmd
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
