package cli

import (
	"fmt"
	"strings"

	"github.com/mvp-joe/funcsplit/internal/classify"
	"github.com/spf13/cobra"
)

// rulesCmd prints the bucket matching order
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show how function names are assigned to buckets",
	Long: `Rules prints the keyword rules in the order they are tried. A function goes
to the first bucket whose keywords appear in its lowercased name; names that
match nothing go to core.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		rules := classify.OrderedRules()
		for i, r := range rules {
			fmt.Fprintf(out, "%2d. %-13s %s\n", i+1, r.Category, strings.Join(r.Keywords, ", "))
		}
		fmt.Fprintf(out, "%2d. %-13s %s\n", len(rules)+1, classify.Core, "(no match)")
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
