package table

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadStripsBOMAndPadsRows(t *testing.T) {
	path := writeCSV(t, "players.csv", "\xEF\xBB\xBFchampion,win,matchId\n아리,True,M1\n럭스,False\n")

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got := tbl.Columns(); len(got) != 3 || got[0] != "champion" {
		t.Fatalf("unexpected columns %v", got)
	}
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.Len())
	}
	if got := tbl.Value(1, "matchId"); got != "" {
		t.Fatalf("expected padded empty cell, got %q", got)
	}
	if got := tbl.Value(0, "champion"); got != "아리" {
		t.Fatalf("unexpected champion %q", got)
	}
	if got := tbl.Value(0, "missing"); got != "" {
		t.Fatalf("expected empty value for missing column, got %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	tbl, err := Parse("empty", strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if tbl.Len() != 0 || len(tbl.Columns()) != 0 {
		t.Fatalf("expected empty table, got %d rows %v", tbl.Len(), tbl.Columns())
	}
}

func TestTextTrims(t *testing.T) {
	tbl := New("mem", []string{"item0_name"}, [][]string{{"  Infinity Edge "}})
	if got := tbl.Text(0, "item0_name"); got != "Infinity Edge" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestMissing(t *testing.T) {
	tbl := New("mem", []string{"item", "icon_url"}, nil)
	got := tbl.Missing("item", "icon_url", "wins")
	if len(got) != 1 || got[0] != "wins" {
		t.Fatalf("unexpected missing columns %v", got)
	}
}

func TestCacheLoadsOncePerPath(t *testing.T) {
	calls := map[string]int{}
	c := NewCache()
	c.load = func(path string) (*Table, error) {
		calls[path]++
		return New(path, []string{"a"}, nil), nil
	}

	first, _ := c.Get("a.csv")
	second, _ := c.Get("a.csv")
	if first != second {
		t.Fatal("expected the cached table to be returned")
	}
	if _, err := c.Get("b.csv"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls["a.csv"] != 1 || calls["b.csv"] != 1 {
		t.Fatalf("unexpected load calls %v", calls)
	}
}

func TestCacheRemembersErrors(t *testing.T) {
	calls := 0
	c := NewCache()
	c.load = func(path string) (*Table, error) {
		calls++
		return nil, ErrNotFound
	}
	for i := 0; i < 3; i++ {
		if _, err := c.Get("missing.csv"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	}
	if calls != 1 {
		t.Fatalf("expected a single load attempt, got %d", calls)
	}
}
