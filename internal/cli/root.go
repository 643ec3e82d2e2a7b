package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mvp-joe/funcsplit/internal/classify"
	"github.com/mvp-joe/funcsplit/internal/config"
	"github.com/mvp-joe/funcsplit/internal/extract"
	"github.com/mvp-joe/funcsplit/internal/report"
	"github.com/spf13/cobra"
)

var (
	colorMode string
	verbose   bool
)

// rootCmd analyzes a file when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "funcsplit [file]",
	Short: "Group a file's functions into candidate modules",
	Long: `Funcsplit scans a JavaScript file for top-level function declarations and
groups them into buckets by keywords in their names. Use it to plan how to
split a large file (by default ./config.js) into smaller modules.

Only single-line declarations are recognised:

  function name(params) {
  async function name(params) {

Arrow functions, methods and declarations whose parameters span several
lines are not reported.

Examples:
  # Analyze ./config.js
  funcsplit

  # Analyze another file
  funcsplit web/settings.js

  # Show how names are matched to buckets
  funcsplit rules

  # Analyze a file named like a subcommand
  funcsplit ./rules
  funcsplit -- rules
`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalyze,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", string(config.ColorOff), "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags(), args)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	logger.Printf("Analyzing %s", cfg.Path)

	functions, err := extract.ExtractFile(cfg.Path)
	if err != nil {
		return err
	}
	logger.Printf("Found %d function declarations", len(functions))

	grouping := classify.Group(functions)
	counts := grouping.Counts()
	for _, c := range classify.Categories() {
		if n := counts[c]; n > 0 {
			logger.Printf("  %s: %d", c, n)
		}
	}

	out := cmd.OutOrStdout()
	return report.Write(out, grouping, report.Options{Color: cfg.Color.Enabled(out)})
}

// newLogger returns a stderr logger that is silent unless verbose is set.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, "funcsplit: ", 0)
}
