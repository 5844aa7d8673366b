package stats

import (
	"math"
	"sort"
	"strings"
)

const (
	// ItemLimit caps the item recommendation table.
	ItemLimit = 20
	// ComboLimit caps the spell and rune combo tables.
	ComboLimit = 10
)

// Pick is one observed value with the outcome of its row.
type Pick struct {
	Value string
	Win   bool
}

// PairPick is one observed pair with the outcome of its row.
type PairPick struct {
	A, B string
	Win  bool
}

// SingleStat is an aggregate over one categorical value.
type SingleStat struct {
	Name       string  `json:"name"`
	TotalPicks int     `json:"totalPicks"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"winRate"`
	Icon       string  `json:"icon,omitempty"`
}

// PairStat is an aggregate over a pair of values.
type PairStat struct {
	NameA   string  `json:"nameA"`
	NameB   string  `json:"nameB"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"winRate"`
	IconA   string  `json:"iconA,omitempty"`
	IconB   string  `json:"iconB,omitempty"`
}

// PairOrder selects how a pair forms its group key.
type PairOrder int

const (
	// Unordered groups (X, Y) and (Y, X) together under (min, max).
	Unordered PairOrder = iota
	// Positional keeps (A, B) as observed.
	Positional
)

// Percent returns wins/total*100 rounded to two decimals, or 0 when total is 0.
func Percent(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round2(float64(wins) / float64(total) * 100)
}

// Round2 rounds to two decimals, ties to even.
func Round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

// ItemPicks unions every item slot of rows into one pick list.
func ItemPicks(rows []MatchRow) []Pick {
	var picks []Pick
	for _, r := range rows {
		for _, item := range r.Items {
			picks = append(picks, Pick{Value: item, Win: r.Win})
		}
	}
	return picks
}

// SpellPairs returns the spell pair of every row, each member passed
// through canon first. A nil canon keeps names verbatim.
func SpellPairs(rows []MatchRow, canon func(string) string) []PairPick {
	pairs := make([]PairPick, 0, len(rows))
	for _, r := range rows {
		a, b := r.Spell1, r.Spell2
		if canon != nil {
			a, b = canon(a), canon(b)
		}
		pairs = append(pairs, PairPick{A: a, B: b, Win: r.Win})
	}
	return pairs
}

// RunePairs returns the (core, sub-tree) pair of every row. Callers
// aggregate them with Positional: core and sub-tree are different domains.
func RunePairs(rows []MatchRow) []PairPick {
	pairs := make([]PairPick, 0, len(rows))
	for _, r := range rows {
		pairs = append(pairs, PairPick{A: r.RuneCore, B: r.RuneSub, Win: r.Win})
	}
	return pairs
}

// AggregateSingle groups picks by trimmed value, dropping empty values.
// Results are ordered by picks, then win rate, then name, and truncated to
// limit when limit > 0.
func AggregateSingle(picks []Pick, limit int) []SingleStat {
	index := make(map[string]int)
	var out []SingleStat
	for _, p := range picks {
		name := strings.TrimSpace(p.Value)
		if name == "" {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, SingleStat{Name: name})
		}
		out[i].TotalPicks++
		if p.Win {
			out[i].Wins++
		}
	}
	for i := range out {
		out[i].WinRate = Percent(out[i].Wins, out[i].TotalPicks)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.TotalPicks != b.TotalPicks {
			return a.TotalPicks > b.TotalPicks
		}
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		return a.Name < b.Name
	})
	return truncate(out, limit)
}

// PairKey returns the group key of (a, b) under order.
func PairKey(a, b string, order PairOrder) [2]string {
	if order == Unordered && b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// AggregatePair groups pairs by PairKey. Pairs whose members are both empty
// are dropped. Results are ordered by games, then win rate, then names, and
// truncated to limit when limit > 0.
func AggregatePair(pairs []PairPick, order PairOrder, limit int) []PairStat {
	index := make(map[[2]string]int)
	var out []PairStat
	for _, p := range pairs {
		a, b := strings.TrimSpace(p.A), strings.TrimSpace(p.B)
		if a == "" && b == "" {
			continue
		}
		key := PairKey(a, b, order)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, PairStat{NameA: key[0], NameB: key[1]})
		}
		out[i].Games++
		if p.Win {
			out[i].Wins++
		}
	}
	for i := range out {
		out[i].WinRate = Percent(out[i].Wins, out[i].Games)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Games != b.Games {
			return a.Games > b.Games
		}
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		if a.NameA != b.NameA {
			return a.NameA < b.NameA
		}
		return a.NameB < b.NameB
	})
	return truncate(out, limit)
}

func truncate[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
