package table

import (
	"regexp"
	"strings"

	"github.com/aramps/internal/textnorm"
)

// Strategy picks one column out of a header, reporting false when nothing
// matches. Strategies are evaluated in order by First.
type Strategy func(columns []string) (string, bool)

// Exact matches the first candidate name present in the header. Candidate
// order decides precedence, not header order.
func Exact(names ...string) Strategy {
	return func(columns []string) (string, bool) {
		for _, n := range names {
			for _, c := range columns {
				if c == n {
					return c, true
				}
			}
		}
		return "", false
	}
}

// Matching returns the first column, in header order, satisfying pred.
func Matching(pred func(string) bool) Strategy {
	return func(columns []string) (string, bool) {
		for _, c := range columns {
			if pred(c) {
				return c, true
			}
		}
		return "", false
	}
}

// Contains matches the first column whose name contains token, ignoring case.
func Contains(token string) Strategy {
	return Matching(ContainsFold(token))
}

// NormalizedIn matches the first column whose normalized name is one of names.
func NormalizedIn(names ...string) Strategy {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[textnorm.Normalize(n)] = struct{}{}
	}
	return Matching(func(c string) bool {
		_, ok := set[textnorm.Normalize(c)]
		return ok
	})
}

// Position matches the column at index i of the header.
func Position(i int) Strategy {
	return func(columns []string) (string, bool) {
		if i < 0 || i >= len(columns) {
			return "", false
		}
		return columns[i], true
	}
}

// ContainsFold returns a predicate for case-insensitive substring matches.
func ContainsFold(token string) func(string) bool {
	token = strings.ToLower(token)
	return func(c string) bool {
		return strings.Contains(strings.ToLower(c), token)
	}
}

// FullMatch returns a predicate that anchors re to the whole column name.
func FullMatch(re *regexp.Regexp) func(string) bool {
	return func(c string) bool {
		loc := re.FindStringIndex(c)
		return loc != nil && loc[0] == 0 && loc[1] == len(c)
	}
}

// First runs strategies in order and returns the first match.
func First(t *Table, strategies ...Strategy) (string, bool) {
	cols := t.Columns()
	for _, s := range strategies {
		if c, ok := s(cols); ok {
			return c, true
		}
	}
	return "", false
}

// FindColumn returns the first candidate present in the table.
func FindColumn(t *Table, candidates ...string) (string, bool) {
	return First(t, Exact(candidates...))
}

// FindColumnByPattern returns the first column whose name satisfies pred.
func FindColumnByPattern(t *Table, pred func(string) bool) (string, bool) {
	return First(t, Matching(pred))
}

// FindColumns returns every column satisfying pred, in header order.
func FindColumns(t *Table, pred func(string) bool) []string {
	var out []string
	for _, c := range t.Columns() {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// FindPairedColumns locates a name column and an icon column in a reference
// table. When either strategy chain fails it falls back to the positional
// convention (first column = name, second column = icon). The fallback is
// not validated; unrelated first columns produce meaningless pairings.
func FindPairedColumns(t *Table, name, icon []Strategy) (nameCol, iconCol string, ok bool) {
	n, nok := First(t, name...)
	i, iok := First(t, icon...)
	if nok && iok {
		return n, i, true
	}
	cols := t.Columns()
	if len(cols) >= 2 {
		return cols[0], cols[1], true
	}
	return "", "", false
}

// FindPair returns the first exact pair fully present in the table. If none
// is present and token is not empty, it falls back to the first two columns
// whose names contain token (case-insensitive).
func FindPair(t *Table, pairs [][2]string, token string) (a, b string, ok bool) {
	for _, p := range pairs {
		if t.HasAll(p[0], p[1]) {
			return p[0], p[1], true
		}
	}
	if token == "" {
		return "", "", false
	}
	cands := FindColumns(t, ContainsFold(token))
	if len(cands) >= 2 {
		return cands[0], cands[1], true
	}
	return "", "", false
}
