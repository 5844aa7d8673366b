// Package spells resolves summoner spell names written in different
// languages and spellings to one canonical (Korean) name and to a Data
// Dragon icon.
package spells

import (
	"fmt"

	"github.com/aramps/internal/textnorm"
)

// DefaultDDragonVersion is the Data Dragon version used when none is configured.
const DefaultDDragonVersion = "15.16.1"

// iconURLTemplate is filled with the Data Dragon version and spell key.
const iconURLTemplate = "https://ddragon.leagueoflegends.com/cdn/%s/img/spell/%s.png"

// aliases maps a normalized variant to its canonical display name.
var aliases = map[string]string{
	// Korean
	"점멸":   "점멸",
	"표식":   "표식",
	"눈덩이":  "표식",
	"유체화":  "유체화",
	"회복":   "회복",
	"점화":   "점화",
	"정화":   "정화",
	"탈진":   "탈진",
	"방어막":  "방어막",
	"총명":   "총명",
	"순간이동": "순간이동",

	// English and synonyms
	"flash":    "점멸",
	"mark":     "표식",
	"snowball": "표식",
	"ghost":    "유체화",
	"haste":    "유체화",
	"heal":     "회복",
	"ignite":   "점화",
	"cleanse":  "정화",
	"exhaust":  "탈진",
	"barrier":  "방어막",
	"clarity":  "총명",
	"teleport": "순간이동",
}

// ddragonKeys maps a canonical name to the Data Dragon spell key.
var ddragonKeys = map[string]string{
	"점멸":   "SummonerFlash",
	"표식":   "SummonerSnowball",
	"유체화":  "SummonerHaste",
	"회복":   "SummonerHeal",
	"점화":   "SummonerDot",
	"정화":   "SummonerBoost",
	"탈진":   "SummonerExhaust",
	"방어막":  "SummonerBarrier",
	"총명":   "SummonerMana",
	"순간이동": "SummonerTeleport",
}

// Canonical returns the canonical name for raw, or raw unchanged when the
// spelling is not a known alias.
func Canonical(raw string) string {
	if name, ok := aliases[textnorm.Normalize(raw)]; ok {
		return name
	}
	return raw
}

// Key returns the Data Dragon key (e.g. "SummonerFlash") for raw.
func Key(raw string) (string, bool) {
	key, ok := ddragonKeys[Canonical(raw)]
	return key, ok
}

// IconURL returns the Data Dragon icon URL for raw at the given version.
// It returns "" when the spell has no known key.
func IconURL(raw, version string) string {
	key, ok := Key(raw)
	if !ok {
		return ""
	}
	if version == "" {
		version = DefaultDDragonVersion
	}
	return fmt.Sprintf(iconURLTemplate, version, key)
}

// Names returns every canonical name in a stable order.
func Names() []string {
	return []string{"점멸", "표식", "유체화", "회복", "점화", "정화", "탈진", "방어막", "총명", "순간이동"}
}
