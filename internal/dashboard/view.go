package dashboard

import (
	"errors"

	"github.com/aramps/internal/spells"
	"github.com/aramps/internal/stats"
)

// ErrUnknownChampion is returned for a champion with no participant rows.
var ErrUnknownChampion = errors.New("unknown champion")

// Section notices shown when a recommendation table cannot be built.
const (
	NoticeNoItems  = "아이템 이름 컬럼이 없어 챔피언별 아이템 집계를 표시할 수 없습니다."
	NoticeNoSpells = "스펠 컬럼을 찾지 못했습니다. (spell1_u/spell2_u 또는 spell1_name_fix/spell2_name_fix 또는 spell1/spell2 필요)"
	NoticeNoRunes  = "룬 컬럼(rune_core, rune_sub)이 없습니다."
)

// ChampionView is everything the dashboard shows for one champion.
type ChampionView struct {
	Champion string        `json:"champion"`
	Icon     string        `json:"icon,omitempty"`
	Summary  stats.Summary `json:"summary"`

	Items  []stats.SingleStat `json:"items"`
	Spells []stats.PairStat   `json:"spells"`
	Runes  []stats.PairStat   `json:"runes"`

	ItemsNotice  string `json:"itemsNotice,omitempty"`
	SpellsNotice string `json:"spellsNotice,omitempty"`
	RunesNotice  string `json:"runesNotice,omitempty"`

	Raw []map[string]string `json:"raw,omitempty"`
}

// View builds the champion view. withRaw attaches the champion's raw rows.
func (d *Dataset) View(champion string, withRaw bool) (*ChampionView, error) {
	if !d.HasChampion(champion) {
		return nil, ErrUnknownChampion
	}
	selected := stats.Filter(d.Rows, champion)

	v := &ChampionView{
		Champion: champion,
		Icon:     d.Icons.Champion(champion),
		Summary:  stats.Summarize(d.Rows, selected, d.Schema.HasMatchID()),
	}

	if d.Schema.HasItems() {
		v.Items = stats.AggregateSingle(stats.ItemPicks(selected), stats.ItemLimit)
		for i := range v.Items {
			v.Items[i].Icon = d.Icons.Item(v.Items[i].Name)
		}
	} else {
		v.ItemsNotice = NoticeNoItems
	}

	if d.Schema.HasSpells() {
		v.Spells = stats.AggregatePair(stats.SpellPairs(selected, spells.Canonical), stats.Unordered, stats.ComboLimit)
		for i := range v.Spells {
			v.Spells[i].IconA = d.Icons.Spell(v.Spells[i].NameA)
			v.Spells[i].IconB = d.Icons.Spell(v.Spells[i].NameB)
		}
	} else {
		v.SpellsNotice = NoticeNoSpells
	}

	if d.Schema.HasRunes() {
		v.Runes = stats.AggregatePair(stats.RunePairs(selected), stats.Positional, stats.ComboLimit)
		for i := range v.Runes {
			v.Runes[i].IconA = d.Icons.RuneCore(v.Runes[i].NameA)
			v.Runes[i].IconB = d.Icons.RuneSub(v.Runes[i].NameB)
		}
	} else {
		v.RunesNotice = NoticeNoRunes
	}

	if withRaw {
		v.Raw = d.RawRows(champion)
	}
	return v, nil
}

// ChampionEntry is a champion name with its icon.
type ChampionEntry struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// ChampionList returns every champion with its icon, sorted by name.
func (d *Dataset) ChampionList() []ChampionEntry {
	out := make([]ChampionEntry, 0, len(d.Champions))
	for _, c := range d.Champions {
		out = append(out, ChampionEntry{Name: c, Icon: d.Icons.Champion(c)})
	}
	return out
}

// SpellEntry is a canonical summoner spell with its icon.
type SpellEntry struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// SpellList returns every canonical summoner spell with its resolved icon.
func (d *Dataset) SpellList() []SpellEntry {
	names := spells.Names()
	out := make([]SpellEntry, 0, len(names))
	for _, n := range names {
		out = append(out, SpellEntry{Name: n, Icon: d.Icons.Spell(n)})
	}
	return out
}
