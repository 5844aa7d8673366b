package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aramps/internal/dashboard"
	"github.com/aramps/internal/stats"
)

func TestFormatTableAlignsWideRunes(t *testing.T) {
	lines := formatTable(
		[]string{"name", "n"},
		[][]string{{"점멸", "12"}, {"Flash", "3"}},
		map[int]bool{1: true},
	)
	want := []string{
		"name    n",
		"점멸   12",
		"Flash   3",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if got := formatTable(nil, nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestChampionPlain(t *testing.T) {
	v := &dashboard.ChampionView{
		Champion:    "아리",
		Summary:     stats.Summary{Games: 3, WinRate: 66.67, PickRate: 100},
		Items:       []stats.SingleStat{{Name: "Luden", TotalPicks: 3, Wins: 2, WinRate: 66.67}},
		Spells:      []stats.PairStat{{NameA: "유체화", NameB: "점멸", Games: 2, Wins: 1, WinRate: 50}},
		RunesNotice: dashboard.NoticeNoRunes,
	}

	var buf bytes.Buffer
	if err := Champion(&buf, v, Options{}); err != nil {
		t.Fatalf("Champion error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"아리",
		"Games 3",
		"Win Rate 66.67%",
		"Pick Rate 100.00%",
		"Luden",
		"유체화  점멸",
		dashboard.NoticeNoRunes,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("expected no ANSI escapes in plain output")
	}
}

func TestRankingPlain(t *testing.T) {
	var buf bytes.Buffer
	err := Ranking(&buf, []dashboard.RankEntry{
		{Name: "아리", Summary: stats.Summary{Games: 12, WinRate: 58.33, PickRate: 40}},
		{Name: "Lux", Summary: stats.Summary{Games: 3, WinRate: 100, PickRate: 10}},
	}, Options{})
	if err != nil {
		t.Fatalf("Ranking error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"#  챔피언  게임수  승률(%)  픽률(%)",
		"1  아리        12    58.33    40.00",
		"2  Lux          3   100.00    10.00",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRawPlain(t *testing.T) {
	var buf bytes.Buffer
	rows := []map[string]string{{"champion": "아리", "win": "True"}, {"champion": "아리", "win": "False"}}
	if err := Raw(&buf, []string{"champion", "win"}, rows, Options{}); err != nil {
		t.Fatalf("Raw error: %v", err)
	}
	for _, want := range []string{"champion  win", "아리      True", "아리      False"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, buf.String())
		}
	}
}
