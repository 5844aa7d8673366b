package icons

import (
	"strings"
	"testing"

	"github.com/aramps/internal/table"
)

func TestIconMapLookupRawThenNormalized(t *testing.T) {
	m := NewIconMap(map[string]string{"Infinity Edge": "ie.png"})

	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"raw", "Infinity Edge", "ie.png", true},
		{"padded", "  Infinity Edge ", "ie.png", true},
		{"normalized", "infinityedge", "ie.png", true},
		{"cased", "INFINITY  EDGE", "ie.png", true},
		{"unknown", "Rabadon", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Lookup(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("Lookup(%q) = %q, %v", tt.in, got, ok)
			}
		})
	}
}

func TestBuildIconMapLastWriteWins(t *testing.T) {
	tbl := table.New("mem", []string{"champion", "icon"}, [][]string{
		{"아리", "old.png"},
		{" 아리 ", "new.png"},
		{"", "skipped.png"},
	})
	m := ChampionMap(tbl)
	if m.Len() != 1 {
		t.Fatalf("expected 1 name, got %d", m.Len())
	}
	if got := m.Get("아리"); got != "new.png" {
		t.Fatalf("expected last row to win, got %q", got)
	}
}

func TestBuildIconMapMissingColumn(t *testing.T) {
	tbl := table.New("mem", []string{"champion", "portrait"}, [][]string{{"아리", "x.png"}})
	if m := ChampionMap(tbl); m.Len() != 0 {
		t.Fatalf("expected empty map, got %d entries", m.Len())
	}
	if m := ChampionMap(nil); m.Len() != 0 {
		t.Fatal("expected empty map for nil table")
	}
}

func TestSpellMapFallsBackToPosition(t *testing.T) {
	tbl := table.New("mem", []string{"a", "b"}, [][]string{{"점멸", "flash.png"}})
	m := SpellMap(tbl)
	if got := m.Get("점멸"); got != "flash.png" {
		t.Fatalf("expected positional pairing, got %q", got)
	}

	tbl = table.New("mem", []string{"id", "스펠명", "SpellIconUrl"}, [][]string{{"4", "점멸", "f.png"}})
	if got := SpellMap(tbl).Get("점멸"); got != "f.png" {
		t.Fatalf("expected sniffed columns, got %q", got)
	}
}

func TestRuneMaps(t *testing.T) {
	tbl := table.New("mem",
		[]string{"rune_core", "rune_core_icon", "rune_sub", "rune_sub_icon", "rune_shard", "rune_shards_icons"},
		[][]string{{"정복자", "c.png", "결의", "s.png", "공격 속도", "sh.png"}},
	)
	core, sub, shard := RuneMaps(tbl)
	if core.Get("정복자") != "c.png" || sub.Get("결의") != "s.png" || shard.Get("공격 속도") != "sh.png" {
		t.Fatalf("unexpected rune maps %v %v %v", core.raw, sub.raw, shard.raw)
	}
}

func TestSetSpellChain(t *testing.T) {
	s := &Set{Spells: NewIconMap(map[string]string{"점멸": "local-flash.png"})}

	if got := s.Spell("flash"); got != "local-flash.png" {
		t.Fatalf("expected canonical map hit, got %q", got)
	}
	got := s.Spell("Ghost")
	if !strings.Contains(got, "15.16.1") || !strings.HasSuffix(got, "/SummonerHaste.png") {
		t.Fatalf("expected Data Dragon fallback, got %q", got)
	}
	if got := s.Spell("unknown spell"); got != "" {
		t.Fatalf("expected no icon, got %q", got)
	}
	if got := s.Spell("  "); got != "" {
		t.Fatalf("expected no icon for blank name, got %q", got)
	}
}

func TestSetRuneFallbacks(t *testing.T) {
	s := &Set{RuneCores: NewIconMap(map[string]string{"정복자": "", "감전": "mine.png"})}

	if got := s.RuneCore("감전"); got != "mine.png" {
		t.Fatalf("expected map icon, got %q", got)
	}
	if got := s.RuneCore("정복자"); !strings.HasSuffix(got, "Conqueror/Conqueror.png") {
		t.Fatalf("expected fallback for empty map icon, got %q", got)
	}
	if got := s.RuneSub("영감"); !strings.HasSuffix(got, "7203_Whimsy.png") {
		t.Fatalf("expected subtree fallback, got %q", got)
	}
	if got := s.RuneSub("모름"); got != "" {
		t.Fatalf("expected no icon, got %q", got)
	}
}

func TestSetChampionFallback(t *testing.T) {
	s := &Set{DDragonVersion: "14.1.1"}

	tests := []struct {
		in   string
		want string
	}{
		{"Wukong", "https://ddragon.leagueoflegends.com/cdn/14.1.1/img/champion/MonkeyKing.png"},
		{"Miss Fortune", "https://ddragon.leagueoflegends.com/cdn/14.1.1/img/champion/MissFortune.png"},
		{"Dr. Mundo", "https://ddragon.leagueoflegends.com/cdn/14.1.1/img/champion/DrMundo.png"},
		{"아리", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := s.Champion(tt.in); got != tt.want {
			t.Errorf("Champion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
