package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mvp-joe/funcsplit/internal/classify"
	"github.com/mvp-joe/funcsplit/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Report:
// - Format renders the fixture exactly like the golden report
// - Format prints only the banner and a zero total for no functions
// - Format omits empty buckets including their header
// - Format lists buckets in fixed category order, not by size or name
// - Format prefixes async functions and shows 1-based lines
// - Format with Color keeps the text and adds ANSI sequences only to headers
// - Write propagates writer errors

var banner = strings.Repeat("=", 80)

func TestFormat_MatchesGolden(t *testing.T) {
	t.Parallel()

	fixtures := filepath.Join("..", "..", "testdata")
	functions, err := extract.ExtractFile(filepath.Join(fixtures, "config.js"))
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join(fixtures, "config.report.txt"))
	require.NoError(t, err)

	got := Format(classify.Group(functions), Options{})

	assert.Equal(t, string(want), got)
}

func TestFormat_NoFunctions(t *testing.T) {
	t.Parallel()

	got := Format(classify.Group(nil), Options{})

	want := banner + "\nFUNCTION ANALYSIS\n" + banner + "\n\nTotal functions found: 0\n\n"
	assert.Equal(t, want, got)
}

func TestFormat_OmitsEmptyBuckets(t *testing.T) {
	t.Parallel()

	functions := []extract.Function{
		{Name: "bulkSelectAll", Line: 7},
	}

	got := Format(classify.Group(functions), Options{})

	assert.Contains(t, got, "\nBULK_ACTIONS (1 functions):\n  bulkSelectAll (line 7)\n")
	for _, c := range classify.Categories() {
		if c == classify.BulkActions {
			continue
		}
		assert.NotContains(t, got, strings.ToUpper(string(c))+" (", "empty bucket %s should be omitted", c)
	}
}

func TestFormat_FixedCategoryOrder(t *testing.T) {
	t.Parallel()

	// init has the most functions and api sorts first by name; neither changes the order
	functions := []extract.Function{
		{Name: "initA", Line: 1},
		{Name: "initB", Line: 2},
		{Name: "initC", Line: 3},
		{Name: "getUser", Line: 4},
		{Name: "showToast", Line: 5},
	}

	got := Format(classify.Group(functions), Options{})

	core := strings.Index(got, "CORE (1 functions):")
	api := strings.Index(got, "API (1 functions):")
	initIdx := strings.Index(got, "INIT (3 functions):")
	require.NotEqual(t, -1, core)
	require.NotEqual(t, -1, api)
	require.NotEqual(t, -1, initIdx)
	assert.Less(t, core, api)
	assert.Less(t, api, initIdx)
}

func TestFormat_AsyncAndLines(t *testing.T) {
	t.Parallel()

	functions := []extract.Function{
		{Name: "fetchPlaylist", Line: 3, Async: true},
		{Name: "createPlaylist", Line: 9},
	}

	got := Format(classify.Group(functions), Options{})

	assert.Contains(t, got, "\nPLAYLISTS (2 functions):\n  async fetchPlaylist (line 3)\n  createPlaylist (line 9)\n")
}

func TestFormat_Color(t *testing.T) {
	t.Parallel()

	functions := []extract.Function{{Name: "formatDate", Line: 10}}
	g := classify.Group(functions)

	plain := Format(g, Options{})
	colored := Format(g, Options{Color: true})

	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "FUNCTION ANALYSIS")
	assert.Contains(t, colored, "FORMATTERS (1 functions):")
	assert.Contains(t, colored, "\n  formatDate (line 10)\n")
	assert.Contains(t, colored, "Total functions found: 1")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite(t *testing.T) {
	t.Parallel()

	g := classify.Group([]extract.Function{{Name: "initPage", Line: 1}})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g, Options{}))
	assert.Equal(t, Format(g, Options{}), buf.String())

	err := Write(failingWriter{}, g, Options{})
	assert.EqualError(t, err, "disk full")
}
