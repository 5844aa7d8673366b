package stats

import (
	"strconv"
	"strings"

	"github.com/aramps/internal/table"
)

// Summary is the headline of one champion.
type Summary struct {
	Games    int     `json:"games"`
	WinRate  float64 `json:"winRate"`
	PickRate float64 `json:"pickRate"`
}

// Summarize computes games, win rate and pick rate of selected against all.
// With match IDs, pick rate counts distinct matches; without them it falls
// back to row counts.
func Summarize(all, selected []MatchRow, hasMatchID bool) Summary {
	return SummarizeIn(Population(all, hasMatchID), selected, hasMatchID)
}

// Population is the pick-rate denominator of all: distinct non-empty match
// IDs, or the row count without match IDs.
func Population(all []MatchRow, hasMatchID bool) int {
	if hasMatchID {
		return distinctMatches(all)
	}
	return len(all)
}

// SummarizeIn is Summarize against a precomputed Population.
func SummarizeIn(population int, selected []MatchRow, hasMatchID bool) Summary {
	s := Summary{Games: len(selected)}
	wins := 0
	for _, r := range selected {
		if r.Win {
			wins++
		}
	}
	s.WinRate = Percent(wins, s.Games)
	s.PickRate = Percent(Population(selected, hasMatchID), population)
	return s
}

func distinctMatches(rows []MatchRow) int {
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		if r.MatchID == "" {
			continue
		}
		seen[r.MatchID] = struct{}{}
	}
	return len(seen)
}

// ItemSummaryColumns is the expected header of the item summary table.
var ItemSummaryColumns = []string{"item", "icon_url", "total_picks", "wins", "win_rate"}

// ItemSummary reads a precomputed item summary table. Rows with an empty
// item are dropped; unparsable numbers read as 0. missing lists the expected
// columns the header lacks.
func ItemSummary(t *table.Table) (items []SingleStat, missing []string) {
	missing = t.Missing(ItemSummaryColumns...)
	if !t.Has("item") {
		return nil, missing
	}
	for i := 0; i < t.Len(); i++ {
		name := t.Text(i, "item")
		if name == "" {
			continue
		}
		items = append(items, SingleStat{
			Name:       name,
			Icon:       t.Text(i, "icon_url"),
			TotalPicks: atoi(t.Text(i, "total_picks")),
			Wins:       atoi(t.Text(i, "wins")),
			WinRate:    atof(t.Text(i, "win_rate")),
		})
	}
	return items, missing
}

// ItemSummaryFromRows computes the item summary from participant rows when
// no precomputed table exists. Icons are left empty and no limit applies.
func ItemSummaryFromRows(rows []MatchRow) []SingleStat {
	return AggregateSingle(ItemPicks(rows), 0)
}

func atoi(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Counts are sometimes exported as floats ("12.0").
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int(f)
}

func atof(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
