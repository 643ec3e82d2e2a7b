package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mvp-joe/funcsplit/internal/classify"
	"github.com/mvp-joe/funcsplit/internal/extract"
)

const bannerWidth = 80

var (
	titleAttrs  = []color.Attribute{color.FgCyan, color.Bold}
	headerAttrs = []color.Attribute{color.FgYellow, color.Bold}
)

// Options controls report rendering.
type Options struct {
	// Color wraps the title and category headers in ANSI colors.
	Color bool
}

// Format renders the grouping as the text report.
func Format(g *classify.Grouping, opts Options) string {
	var sb strings.Builder

	banner := strings.Repeat("=", bannerWidth)
	sb.WriteString(banner + "\n")
	sb.WriteString(paint(titleAttrs, "FUNCTION ANALYSIS", opts) + "\n")
	sb.WriteString(banner + "\n")
	fmt.Fprintf(&sb, "\nTotal functions found: %d\n\n", g.Total())

	for _, c := range classify.Categories() {
		fns := g.Bucket(c)
		if len(fns) == 0 {
			continue
		}

		header := fmt.Sprintf("%s (%d functions):", strings.ToUpper(string(c)), len(fns))
		sb.WriteString("\n" + paint(headerAttrs, header, opts) + "\n")
		for _, fn := range fns {
			sb.WriteString(formatFunction(fn) + "\n")
		}
	}

	return sb.String()
}

// Write renders the report to w.
func Write(w io.Writer, g *classify.Grouping, opts Options) error {
	_, err := io.WriteString(w, Format(g, opts))
	return err
}

// formatFunction formats one report entry, e.g. "  async loadPlaylists (line 12)".
func formatFunction(fn *extract.Function) string {
	prefix := ""
	if fn.Async {
		prefix = "async "
	}
	return fmt.Sprintf("  %s%s (line %d)", prefix, fn.Name, fn.Line)
}

func paint(attrs []color.Attribute, s string, opts Options) string {
	if !opts.Color {
		return s
	}
	c := color.New(attrs...)
	// Overrides color.NoColor; the caller has already decided.
	c.EnableColor()
	return c.Sprint(s)
}
