package classify

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is the bucket a function is assigned to.
type Category string

const (
	Core        Category = "core"
	Formatters  Category = "formatters"
	Schedules   Category = "schedules"
	Sorts       Category = "sorts"
	Rules       Category = "rules"
	Playlists   Category = "playlists"
	Filters     Category = "filters"
	BulkActions Category = "bulk_actions"
	API         Category = "api"
	Init        Category = "init"
)

// categories is the fixed report order. It is not the matching order.
var categories = []Category{
	Core,
	Formatters,
	Schedules,
	Sorts,
	Rules,
	Playlists,
	Filters,
	BulkActions,
	API,
	Init,
}

// Rule assigns Category to any name containing one of Keywords.
type Rule struct {
	Category Category
	Keywords []string
}

// rules is evaluated top to bottom and the first match wins.
// Names matching none of them fall back to Core.
var rules = []Rule{
	{Formatters, []string{"format", "generate", "escape", "convert"}},
	{Schedules, []string{"schedule"}},
	{Sorts, []string{"sort"}},
	{Rules, []string{"rule", "field", "operator", "value", "input"}},
	{Playlists, []string{"playlist", "create", "edit", "clone", "delete", "refresh", "enable", "disable"}},
	{Filters, []string{"filter", "search", "apply"}},
	{BulkActions, []string{"bulk"}},
	{API, []string{"api", "load", "get", "post", "put", "fetch"}},
	{Init, []string{"init", "setup", "event"}},
}

// Categories returns every category in report order.
func Categories() []Category {
	return slices.Clone(categories)
}

// OrderedRules returns a copy of the matching rules in priority order.
func OrderedRules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Category: r.Category, Keywords: slices.Clone(r.Keywords)}
	}
	return out
}

// Matches reports whether the lowercased name contains any keyword.
func (r Rule) Matches(lowered string) bool {
	return slices.ContainsFunc(r.Keywords, func(kw string) bool {
		return strings.Contains(lowered, kw)
	})
}

// Classify returns the category for a function name.
func Classify(name string) Category {
	// A Caser keeps state, so each call gets its own.
	lowered := cases.Lower(language.Und).String(name)

	for _, r := range rules {
		if r.Matches(lowered) {
			return r.Category
		}
	}
	return Core
}
