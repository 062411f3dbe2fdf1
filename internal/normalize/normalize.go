// Package normalize turns loosely-typed payload values into canonical field
// values. Parsers never fail: unparsable input falls back to the caller default.
package normalize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// OneLine stringifies v, collapses whitespace runs to single spaces and trims
// the ends. nil becomes the empty string.
func OneLine(v any) string {
	if v == nil {
		return ""
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(t)
	default:
		s = fmt.Sprintf("%v", v)
	}
	return strings.Join(strings.Fields(s), " ")
}

// Float parses v as a decimal, tolerating a comma decimal separator.
func Float(v any, def float64) float64 {
	s := strings.ReplaceAll(OneLine(v), ",", ".")
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

// Int parses v as an integer via float-then-truncate, so "3.0"-shaped input
// still yields 3.
func Int(v any, def int) int {
	s := strings.ReplaceAll(OneLine(v), ",", ".")
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return int(f)
}

// Bool parses v against the affirmative literal set. Empty or absent input
// falls back to def; anything else outside the set is false.
func Bool(v any, def bool) bool {
	if v == nil {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}
	s := strings.ToLower(OneLine(v))
	if s == "" {
		return def
	}
	switch s {
	case "1", "true", "yes", "y", "on", "да":
		return true
	default:
		return false
	}
}

// Tags accepts either an ordered list or a single comma-delimited string and
// returns trimmed non-empty labels in first-appearance order, no dedup.
func Tags(v any) []string {
	var raw []string
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		raw = t
	case []any:
		for _, e := range t {
			raw = append(raw, OneLine(e))
		}
	default:
		raw = strings.Split(OneLine(v), ",")
	}
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if s := OneLine(t); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Specs flattens free-form characteristics to a single line. Strings pass
// through collapsed, mappings render as "key: value" pairs joined by "; "
// (pairs with an empty value drop their key, value-only entries survive),
// lists join their collapsed elements.
func Specs(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return OneLine(t)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			key, val := OneLine(k), OneLine(t[k])
			switch {
			case key != "" && val != "":
				parts = append(parts, key+": "+val)
			case val != "":
				parts = append(parts, val)
			}
		}
		return strings.Join(parts, "; ")
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if s := OneLine(e); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	default:
		return OneLine(v)
	}
}

// Title capitalizes the first letter of a slug for display.
func Title(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
