package extract

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInputUnavailable indicates the input file is missing, unreadable, or not UTF-8 text.
var ErrInputUnavailable = errors.New("input unavailable")

// ws is the whitespace class used by the declaration pattern: ASCII \t-\r,
// the \x1c-\x1f separators, space, NEL and every Unicode separator.
const ws = `[\t-\r\x{1c}-\x{20}\x{85}\p{Z}]`

// declPattern matches a single-line declaration such as
//
//	async function loadPlaylists(id) {
//
// The parameter list may not contain ')', so nested parentheses never match.
var declPattern = regexp.MustCompile(
	`^` + ws + `*(async` + ws + `+)?function` + ws + `+([a-zA-Z_][a-zA-Z0-9_]*)` + ws + `*\([^)]*\)` + ws + `*\{`,
)

// Function is a top-level function declaration found on one physical line.
type Function struct {
	Name  string
	Line  int // 1-based
	Async bool
	Raw   string // trimmed declaration line
}

// ExtractFile reads the file at path and returns its function declarations in file order.
func ExtractFile(path string) ([]Function, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8 text", ErrInputUnavailable, path)
	}

	return Extract(string(data)), nil
}

// Extract returns the function declarations in content, ordered by line.
// Declarations spread over several lines, arrow functions and method
// shorthand are not recognised.
func Extract(content string) []Function {
	functions := []Function{}

	for i, line := range splitLines(content) {
		match := declPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		functions = append(functions, Function{
			Name:  match[2],
			Line:  i + 1,
			Async: match[1] != "",
			Raw:   strings.TrimFunc(line, isSpace),
		})
	}

	return functions
}

// splitLines applies universal newline translation before splitting, so
// "\r\n" and a lone "\r" both end a line.
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return strings.Split(content, "\n")
}

// isSpace reports whether r belongs to the same class as ws.
func isSpace(r rune) bool {
	switch {
	case r >= '\t' && r <= '\r', r >= 0x1c && r <= 0x20, r == 0x85:
		return true
	}
	return unicode.Is(unicode.Z, r)
}
