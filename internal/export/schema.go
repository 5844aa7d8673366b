package export

import (
	"fmt"
	"strings"
	"time"
)

// Table definitions shared by both backends. DOUBLE PRECISION gets REAL
// affinity in SQLite.
var schema = []string{
	`DROP TABLE IF EXISTS export_meta`,
	`DROP TABLE IF EXISTS champions`,
	`DROP TABLE IF EXISTS champion_items`,
	`DROP TABLE IF EXISTS spell_combos`,
	`DROP TABLE IF EXISTS rune_combos`,
	`CREATE TABLE export_meta (
		generated_at TEXT NOT NULL
	)`,
	`CREATE TABLE champions (
		champion TEXT PRIMARY KEY,
		icon TEXT NOT NULL,
		games INTEGER NOT NULL,
		win_rate DOUBLE PRECISION NOT NULL,
		pick_rate DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE champion_items (
		champion TEXT NOT NULL,
		rank INTEGER NOT NULL,
		item TEXT NOT NULL,
		icon TEXT NOT NULL,
		total_picks INTEGER NOT NULL,
		wins INTEGER NOT NULL,
		win_rate DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (champion, rank)
	)`,
	`CREATE TABLE spell_combos (
		champion TEXT NOT NULL,
		rank INTEGER NOT NULL,
		spell1 TEXT NOT NULL,
		spell2 TEXT NOT NULL,
		games INTEGER NOT NULL,
		wins INTEGER NOT NULL,
		win_rate DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (champion, rank)
	)`,
	`CREATE TABLE rune_combos (
		champion TEXT NOT NULL,
		rank INTEGER NOT NULL,
		rune_core TEXT NOT NULL,
		rune_sub TEXT NOT NULL,
		games INTEGER NOT NULL,
		wins INTEGER NOT NULL,
		win_rate DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (champion, rank)
	)`,
}

type insert struct {
	table   string
	columns []string
	rows    [][]any
}

func (in insert) statement(placeholder func(n int) string) string {
	marks := make([]string, len(in.columns))
	for i := range marks {
		marks[i] = placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", in.table, strings.Join(in.columns, ", "), strings.Join(marks, ", "))
}

func (s *Snapshot) inserts() []insert {
	meta := insert{table: "export_meta", columns: []string{"generated_at"}}
	meta.rows = append(meta.rows, []any{s.GeneratedAt.Format(time.RFC3339)})

	champions := insert{table: "champions", columns: []string{"champion", "icon", "games", "win_rate", "pick_rate"}}
	for _, r := range s.Champions {
		champions.rows = append(champions.rows, []any{r.Champion, r.Icon, r.Games, r.WinRate, r.PickRate})
	}
	items := insert{table: "champion_items", columns: []string{"champion", "rank", "item", "icon", "total_picks", "wins", "win_rate"}}
	for _, r := range s.Items {
		items.rows = append(items.rows, []any{r.Champion, r.Rank, r.Item, r.Icon, r.TotalPicks, r.Wins, r.WinRate})
	}
	return []insert{
		meta,
		champions,
		items,
		combos("spell_combos", "spell1", "spell2", s.Spells),
		combos("rune_combos", "rune_core", "rune_sub", s.Runes),
	}
}

func combos(table, first, second string, rows []ComboRow) insert {
	in := insert{table: table, columns: []string{"champion", "rank", first, second, "games", "wins", "win_rate"}}
	for _, r := range rows {
		in.rows = append(in.rows, []any{r.Champion, r.Rank, r.First, r.Second, r.Games, r.Wins, r.WinRate})
	}
	return in
}
