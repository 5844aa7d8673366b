// Package stats turns participant rows into per-champion summaries and
// ranked item, spell and rune recommendations.
package stats

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/aramps/internal/table"
)

// MatchRow is one participant in one match. Text fields are trimmed and
// never nil; an absent column reads as "".
type MatchRow struct {
	Champion string   `json:"champion"`
	Win      bool     `json:"win"`
	MatchID  string   `json:"matchId"`
	Items    []string `json:"items"`
	Spell1   string   `json:"spell1"`
	Spell2   string   `json:"spell2"`
	RuneCore string   `json:"runeCore"`
	RuneSub  string   `json:"runeSub"`
}

// Schema records which participant-table columns feed each MatchRow field.
// An empty name means the column was not found.
type Schema struct {
	Champion string
	Win      string
	WinClean bool
	MatchID  string
	Items    []string
	Spell1   string
	Spell2   string
	RuneCore string
	RuneSub  string
}

// HasSpells reports whether a spell column pair was found.
func (s Schema) HasSpells() bool { return s.Spell1 != "" && s.Spell2 != "" }

// HasRunes reports whether rune_core and rune_sub are both present.
func (s Schema) HasRunes() bool { return s.RuneCore != "" && s.RuneSub != "" }

// HasItems reports whether any item slot column was found.
func (s Schema) HasItems() bool { return len(s.Items) > 0 }

// HasMatchID reports whether pick rate can use distinct match IDs.
func (s Schema) HasMatchID() bool { return s.MatchID != "" }

// SpellColumnPairs lists the spell column pairs from most to least normalized.
var SpellColumnPairs = [][2]string{
	{"spell1_u", "spell2_u"},
	{"spell1_name_fix", "spell2_name_fix"},
	{"spell1", "spell2"},
}

var (
	itemSlotPattern = regexp.MustCompile(`item[0-6]_name`)
	matchIDPattern  = regexp.MustCompile(`(?i)match_?id`)
)

// IsItemColumn reports whether col holds an item name for one slot.
func IsItemColumn(col string) bool {
	lower := strings.ToLower(col)
	if strings.Contains(lower, "item") && strings.Contains(lower, "name") {
		return true
	}
	return table.FullMatch(itemSlotPattern)(col)
}

// Sniff inspects the participant table header.
func Sniff(t *table.Table) Schema {
	var s Schema
	s.Champion, _ = table.FindColumn(t, "champion")
	if t.Has("win_clean") {
		s.Win, s.WinClean = "win_clean", true
	} else if t.Has("win") {
		s.Win = "win"
	}
	if id, ok := table.FindColumn(t, "matchId"); ok {
		s.MatchID = id
	} else {
		s.MatchID, _ = table.FindColumnByPattern(t, table.FullMatch(matchIDPattern))
	}
	s.Items = table.FindColumns(t, IsItemColumn)
	s.Spell1, s.Spell2, _ = table.FindPair(t, SpellColumnPairs, "spell")
	if t.HasAll("rune_core", "rune_sub") {
		s.RuneCore, s.RuneSub = "rune_core", "rune_sub"
	}
	return s
}

var truthy = map[string]bool{"true": true, "1": true, "t": true, "yes": true}

// ParseWin decodes a win cell. A precomputed win_clean column is numeric;
// a raw win column uses the truthy strings true, 1, t and yes.
func ParseWin(v string, clean bool) bool {
	v = strings.TrimSpace(v)
	if clean {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f != 0
		}
	}
	return truthy[strings.ToLower(v)]
}

// ParseRows decodes every row of t using schema.
func ParseRows(t *table.Table, s Schema) []MatchRow {
	rows := make([]MatchRow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		r := MatchRow{
			Champion: t.Text(i, s.Champion),
			MatchID:  t.Text(i, s.MatchID),
			Spell1:   t.Text(i, s.Spell1),
			Spell2:   t.Text(i, s.Spell2),
			RuneCore: t.Text(i, s.RuneCore),
			RuneSub:  t.Text(i, s.RuneSub),
		}
		if s.Win != "" {
			r.Win = ParseWin(t.Value(i, s.Win), s.WinClean)
		}
		if len(s.Items) > 0 {
			r.Items = make([]string, len(s.Items))
			for j, c := range s.Items {
				r.Items[j] = t.Text(i, c)
			}
		}
		rows = append(rows, r)
	}
	return rows
}

// Filter returns the rows whose champion equals name.
func Filter(rows []MatchRow, name string) []MatchRow {
	var out []MatchRow
	for _, r := range rows {
		if r.Champion == name {
			out = append(out, r)
		}
	}
	return out
}

// Champions returns the distinct non-empty champion names, sorted.
func Champions(rows []MatchRow) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		if r.Champion == "" {
			continue
		}
		if _, ok := seen[r.Champion]; ok {
			continue
		}
		seen[r.Champion] = struct{}{}
		out = append(out, r.Champion)
	}
	slices.Sort(out)
	return out
}
