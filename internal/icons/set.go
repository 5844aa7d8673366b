package icons

import (
	"fmt"
	"strings"

	"github.com/aramps/internal/spells"
	"github.com/aramps/internal/table"
)

// Reference column candidates.
var (
	championNameColumns = []table.Strategy{table.Exact("champion", "Champion", "championName")}
	championIconColumns = []table.Strategy{table.Exact("champion_icon", "icon", "icon_url")}

	itemNameColumns = []table.Strategy{table.Exact("item")}
	itemIconColumns = []table.Strategy{table.Exact("icon_url")}

	spellNameColumns = []table.Strategy{
		table.NormalizedIn("spell", "spellname", "name", "spell1_name_fix", "spell2_name_fix", "스펠", "스펠명"),
	}
	spellIconColumns = []table.Strategy{
		table.NormalizedIn("icon", "icon_url", "spellicon", "spell_icon"),
		table.Contains("icon"),
	}

	runeCoreName  = []table.Strategy{table.Exact("rune_core")}
	runeCoreIcon  = []table.Strategy{table.Exact("rune_core_icon")}
	runeSubName   = []table.Strategy{table.Exact("rune_sub")}
	runeSubIcon   = []table.Strategy{table.Exact("rune_sub_icon")}
	runeShardName = []table.Strategy{table.Exact("rune_shard")}
	runeShardIcon = []table.Strategy{table.Exact("rune_shard_icon", "rune_shards_icons")}
)

// ChampionMap builds the champion icon map.
func ChampionMap(t *table.Table) *IconMap {
	return BuildIconMap(t, championNameColumns, championIconColumns)
}

// ItemMap builds the item icon map from an item summary table.
func ItemMap(t *table.Table) *IconMap {
	return BuildIconMap(t, itemNameColumns, itemIconColumns)
}

// SpellMap builds the spell icon map. Headers are free-form, so the
// positional first/second column convention is used when sniffing fails.
func SpellMap(t *table.Table) *IconMap {
	return BuildPairedIconMap(t, spellNameColumns, spellIconColumns)
}

// RuneMaps builds the core, sub-tree and shard icon maps from one table.
func RuneMaps(t *table.Table) (core, sub, shard *IconMap) {
	return BuildIconMap(t, runeCoreName, runeCoreIcon),
		BuildIconMap(t, runeSubName, runeSubIcon),
		BuildIconMap(t, runeShardName, runeShardIcon)
}

// Set bundles every icon map with its fallback chain. A zero Set resolves
// through fallbacks only.
type Set struct {
	Champions  *IconMap
	Items      *IconMap
	Spells     *IconMap
	RuneCores  *IconMap
	RuneSubs   *IconMap
	RuneShards *IconMap

	// DDragonVersion is used for spell and champion fallback URLs.
	DDragonVersion string
}

// Champion returns the champion icon, falling back to Data Dragon for
// names written in the Latin alphabet.
func (s *Set) Champion(name string) string {
	if icon, ok := s.Champions.Lookup(name); ok {
		return icon
	}
	return championIconURL(name, s.version())
}

// Item returns the item icon or "".
func (s *Set) Item(name string) string {
	return s.Items.Get(name)
}

// Spell returns the spell icon. The map is searched with the raw name and
// then the canonical name; the Data Dragon template is the last resort.
func (s *Set) Spell(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if icon, ok := s.Spells.Lookup(name); ok {
		return icon
	}
	if icon, ok := s.Spells.Lookup(spells.Canonical(name)); ok {
		return icon
	}
	return spells.IconURL(name, s.version())
}

// RuneCore returns the keystone icon.
func (s *Set) RuneCore(name string) string {
	if icon, ok := s.RuneCores.Lookup(name); ok && icon != "" {
		return icon
	}
	return runeCoreFallback[name]
}

// RuneSub returns the secondary tree icon.
func (s *Set) RuneSub(name string) string {
	if icon, ok := s.RuneSubs.Lookup(name); ok && icon != "" {
		return icon
	}
	return runeSubtreeFallback[name]
}

// Counts reports how many names each map holds.
func (s *Set) Counts() map[string]int {
	return map[string]int{
		"champions":   s.Champions.Len(),
		"items":       s.Items.Len(),
		"spells":      s.Spells.Len(),
		"rune_cores":  s.RuneCores.Len(),
		"rune_subs":   s.RuneSubs.Len(),
		"rune_shards": s.RuneShards.Len(),
	}
}

func (s *Set) version() string {
	if s.DDragonVersion == "" {
		return spells.DefaultDDragonVersion
	}
	return s.DDragonVersion
}

// championNameFixes maps display names to Data Dragon ids that differ.
var championNameFixes = map[string]string{
	"Wukong":   "MonkeyKing",
	"Cho'Gath": "Chogath",
	"Vel'Koz":  "Velkoz",
	"Kha'Zix":  "Khazix",
	"Kai'Sa":   "Kaisa",
	"Bel'Veth": "Belveth",
	"K'Sante":  "KSante",
	"Rek'Sai":  "RekSai",
	"Kog'Maw":  "KogMaw",
	"LeBlanc":  "Leblanc",
}

func championIconURL(name, version string) string {
	name = strings.TrimSpace(name)
	if name == "" || !isLatin(name) {
		return ""
	}
	id, ok := championNameFixes[name]
	if !ok {
		id = strings.NewReplacer(" ", "", "'", "", ".", "").Replace(name)
	}
	return fmt.Sprintf("https://ddragon.leagueoflegends.com/cdn/%s/img/champion/%s.png", version, id)
}

func isLatin(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == ' ', r == '\'', r == '.', r == '&':
		default:
			return false
		}
	}
	return true
}
