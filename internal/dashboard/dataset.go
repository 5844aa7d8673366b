// Package dashboard loads the participant and reference tables and answers
// per-champion and team-composition queries over them.
package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aramps/internal/icons"
	"github.com/aramps/internal/stats"
	"github.com/aramps/internal/table"
	"github.com/rs/zerolog/log"
)

// ErrNoChampionColumn is returned when the participant table has no usable
// champion column.
var ErrNoChampionColumn = errors.New("데이터에 'champion' 컬럼이 없습니다")

// Paths lists the input files.
type Paths struct {
	Players       string
	ItemSummary   string
	ChampionIcons string
	RuneIcons     string
	SpellIcons    string
}

// Dataset is the loaded, immutable state behind every query.
type Dataset struct {
	players   *table.Table
	Schema    stats.Schema
	Rows      []stats.MatchRow
	Champions []string

	// Items is the item summary table; ItemsComputed is set when it was
	// computed from the participant rows because the file was missing.
	Items         []stats.SingleStat
	ItemsComputed bool

	Icons *icons.Set

	// Notices are load-time warnings shown on every page.
	Notices []string
}

// Load reads every table through cache. A missing participant table or a
// missing champion column is an error; reference tables degrade to empty
// maps with a notice.
func Load(cache *table.Cache, paths Paths, ddragonVersion string) (*Dataset, error) {
	players, err := cache.Get(paths.Players)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}

	d := &Dataset{
		players: players,
		Schema:  stats.Sniff(players),
	}
	if d.Schema.Champion == "" {
		return nil, ErrNoChampionColumn
	}
	d.Rows = stats.ParseRows(players, d.Schema)
	d.Champions = stats.Champions(d.Rows)
	if len(d.Champions) == 0 {
		return nil, ErrNoChampionColumn
	}
	if d.Schema.Win == "" {
		d.notice("승패 컬럼(win_clean, win)이 없어 승률이 0으로 표시됩니다.")
	}

	reference := func(path string) *table.Table {
		t, err := cache.Get(path)
		if err != nil {
			d.notice(fmt.Sprintf("파일 없음: `%s`", path))
			return nil
		}
		return t
	}

	set := &icons.Set{DDragonVersion: ddragonVersion}

	if t := reference(paths.ItemSummary); t != nil {
		var missing []string
		d.Items, missing = stats.ItemSummary(t)
		if len(missing) > 0 {
			d.notice(fmt.Sprintf("`%s` 헤더 확인 필요 (기대: %s, 실제: %s)",
				paths.ItemSummary, strings.Join(stats.ItemSummaryColumns, ", "), strings.Join(t.Columns(), ", ")))
		}
		set.Items = icons.ItemMap(t)
	} else {
		d.Items = stats.ItemSummaryFromRows(d.Rows)
		d.ItemsComputed = true
		set.Items = icons.NewIconMap(nil)
	}

	set.Champions = icons.ChampionMap(reference(paths.ChampionIcons))
	set.RuneCores, set.RuneSubs, set.RuneShards = icons.RuneMaps(reference(paths.RuneIcons))
	set.Spells = icons.SpellMap(reference(paths.SpellIcons))
	d.Icons = set

	log.Info().
		Int("rows", len(d.Rows)).
		Int("champions", len(d.Champions)).
		Interface("icons", set.Counts()).
		Int("notices", len(d.Notices)).
		Msg("dataset loaded")
	return d, nil
}

func (d *Dataset) notice(msg string) {
	log.Warn().Msg(msg)
	d.Notices = append(d.Notices, msg)
}

// HasChampion reports whether name appears in the participant table.
func (d *Dataset) HasChampion(name string) bool {
	for _, c := range d.Champions {
		if c == name {
			return true
		}
	}
	return false
}

// RawRows returns every participant row of champion as a column map.
func (d *Dataset) RawRows(champion string) []map[string]string {
	var out []map[string]string
	for i := 0; i < d.players.Len(); i++ {
		if d.players.Text(i, d.Schema.Champion) == champion {
			out = append(out, d.players.Row(i))
		}
	}
	return out
}

// Columns returns the participant table header in file order.
func (d *Dataset) Columns() []string {
	return d.players.Columns()
}
