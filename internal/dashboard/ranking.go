package dashboard

import (
	"sort"

	"github.com/aramps/internal/stats"
)

// RankBy selects the ranking order.
type RankBy string

const (
	RankByGames   RankBy = "games"
	RankByWinRate RankBy = "winrate"
)

// RankEntry is one champion in a ranking.
type RankEntry struct {
	Name    string        `json:"name"`
	Icon    string        `json:"icon,omitempty"`
	Summary stats.Summary `json:"summary"`
}

// Ranking orders champions with at least minGames games by games or win
// rate, ties broken by the other metric and then by name. limit <= 0
// keeps every entry.
func (d *Dataset) Ranking(by RankBy, minGames, limit int) []RankEntry {
	hasMatchID := d.Schema.HasMatchID()
	byChampion := make(map[string][]stats.MatchRow, len(d.Champions))
	for _, r := range d.Rows {
		if r.Champion != "" {
			byChampion[r.Champion] = append(byChampion[r.Champion], r)
		}
	}

	population := stats.Population(d.Rows, hasMatchID)
	out := make([]RankEntry, 0, len(d.Champions))
	for _, c := range d.Champions {
		s := stats.SummarizeIn(population, byChampion[c], hasMatchID)
		if s.Games < minGames {
			continue
		}
		out = append(out, RankEntry{Name: c, Icon: d.Icons.Champion(c), Summary: s})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Summary, out[j].Summary
		if by == RankByWinRate {
			if a.WinRate != b.WinRate {
				return a.WinRate > b.WinRate
			}
			if a.Games != b.Games {
				return a.Games > b.Games
			}
		} else {
			if a.Games != b.Games {
				return a.Games > b.Games
			}
			if a.WinRate != b.WinRate {
				return a.WinRate > b.WinRate
			}
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
