// Package export writes the aggregated dashboard tables to a database so
// they can be queried outside the web page.
package export

import (
	"fmt"
	"time"

	"github.com/aramps/internal/dashboard"
)

// ChampionRow is one row of the champions table.
type ChampionRow struct {
	Champion string
	Icon     string
	Games    int
	WinRate  float64
	PickRate float64
}

// ItemRow is one row of the champion_items table.
type ItemRow struct {
	Champion   string
	Rank       int
	Item       string
	Icon       string
	TotalPicks int
	Wins       int
	WinRate    float64
}

// ComboRow is one row of the spell_combos or rune_combos table.
type ComboRow struct {
	Champion string
	Rank     int
	First    string
	Second   string
	Games    int
	Wins     int
	WinRate  float64
}

// Snapshot holds every exported row.
type Snapshot struct {
	GeneratedAt time.Time
	Champions   []ChampionRow
	Items       []ItemRow
	Spells      []ComboRow
	Runes       []ComboRow
}

// Build computes the champion views of d and flattens them into rows.
// Sections the dataset cannot build are left empty.
func Build(d *dashboard.Dataset, now time.Time) (*Snapshot, error) {
	snap := &Snapshot{GeneratedAt: now.UTC()}
	for _, c := range d.Champions {
		v, err := d.View(c, false)
		if err != nil {
			return nil, fmt.Errorf("view %s: %w", c, err)
		}
		snap.Champions = append(snap.Champions, ChampionRow{
			Champion: c,
			Icon:     v.Icon,
			Games:    v.Summary.Games,
			WinRate:  v.Summary.WinRate,
			PickRate: v.Summary.PickRate,
		})
		for i, it := range v.Items {
			snap.Items = append(snap.Items, ItemRow{
				Champion:   c,
				Rank:       i + 1,
				Item:       it.Name,
				Icon:       it.Icon,
				TotalPicks: it.TotalPicks,
				Wins:       it.Wins,
				WinRate:    it.WinRate,
			})
		}
		for i, p := range v.Spells {
			snap.Spells = append(snap.Spells, ComboRow{c, i + 1, p.NameA, p.NameB, p.Games, p.Wins, p.WinRate})
		}
		for i, p := range v.Runes {
			snap.Runes = append(snap.Runes, ComboRow{c, i + 1, p.NameA, p.NameB, p.Games, p.Wins, p.WinRate})
		}
	}
	return snap, nil
}

// Counts reports the number of rows per table.
func (s *Snapshot) Counts() map[string]int {
	return map[string]int{
		"champions":      len(s.Champions),
		"champion_items": len(s.Items),
		"spell_combos":   len(s.Spells),
		"rune_combos":    len(s.Runes),
	}
}
