package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aramps/internal/dashboard"
	"github.com/aramps/internal/stats"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Bold(true)
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Options controls rendering.
type Options struct {
	// Styled enables lipgloss colors and borders.
	Styled bool
}

type renderer struct {
	w   io.Writer
	opt Options
	err error
}

func (r *renderer) line(s string) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintln(r.w, s)
}

func (r *renderer) style(st lipgloss.Style, s string) string {
	if !r.opt.Styled {
		return s
	}
	return st.Render(s)
}

// Champion writes the summary and the three recommendation tables of v.
func Champion(w io.Writer, v *dashboard.ChampionView, opt Options) error {
	r := &renderer{w: w, opt: opt}

	r.line(r.style(titleStyle, v.Champion))
	r.line(strings.Join([]string{
		r.style(cardTitleStyle, "Games") + " " + r.style(cardValueStyle, strconv.Itoa(v.Summary.Games)),
		r.style(cardTitleStyle, "Win Rate") + " " + r.style(cardValueStyle, percent(v.Summary.WinRate)),
		r.style(cardTitleStyle, "Pick Rate") + " " + r.style(cardValueStyle, percent(v.Summary.PickRate)),
	}, "   "))

	r.section("Recommended Items", v.ItemsNotice, itemTable(v.Items))
	r.section("Recommended Spell Combos", v.SpellsNotice, pairTable("스펠1", "스펠2", v.Spells))
	r.section("Recommended Rune Combos", v.RunesNotice, pairTable("핵심룬", "보조트리", v.Runes))
	return r.err
}

// Champions writes a one-line-per-champion overview.
func Champions(w io.Writer, d *dashboard.Dataset, opt Options) error {
	r := &renderer{w: w, opt: opt}
	var rows [][]string
	for _, c := range d.Champions {
		v, err := d.View(c, false)
		if err != nil {
			return err
		}
		rows = append(rows, []string{c, strconv.Itoa(v.Summary.Games), fmt.Sprintf("%.2f", v.Summary.WinRate), fmt.Sprintf("%.2f", v.Summary.PickRate)})
	}
	r.table([]string{"챔피언", "게임수", "승률(%)", "픽률(%)"}, rows, map[int]bool{1: true, 2: true, 3: true})
	return r.err
}

// Ranking writes a ranking table, best first.
func Ranking(w io.Writer, entries []dashboard.RankEntry, opt Options) error {
	r := &renderer{w: w, opt: opt}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{strconv.Itoa(i + 1), e.Name, strconv.Itoa(e.Summary.Games), fmt.Sprintf("%.2f", e.Summary.WinRate), fmt.Sprintf("%.2f", e.Summary.PickRate)})
	}
	if len(rows) == 0 {
		r.line(r.style(tableMutedStyle, "(데이터 없음)"))
		return r.err
	}
	r.table([]string{"#", "챔피언", "게임수", "승률(%)", "픽률(%)"}, rows, map[int]bool{0: true, 2: true, 3: true, 4: true})
	return r.err
}

// Raw writes raw participant rows under the given columns.
func Raw(w io.Writer, columns []string, rows []map[string]string, opt Options) error {
	r := &renderer{w: w, opt: opt}
	r.line("")
	r.line(r.style(headerStyle, "Raw Rows"))
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, len(columns))
		for i, c := range columns {
			line[i] = row[c]
		}
		cells = append(cells, line)
	}
	r.table(columns, cells, nil)
	return r.err
}

type tableSpec struct {
	headers []string
	rows    [][]string
	right   map[int]bool
}

func (r *renderer) section(title, notice string, t tableSpec) {
	r.line("")
	r.line(r.style(headerStyle, title))
	if notice != "" {
		r.line(r.style(noticeStyle, notice))
		return
	}
	if len(t.rows) == 0 {
		r.line(r.style(tableMutedStyle, "(데이터 없음)"))
		return
	}
	r.table(t.headers, t.rows, t.right)
}

func (r *renderer) table(headers []string, rows [][]string, right map[int]bool) {
	for i, l := range formatTable(headers, rows, right) {
		if i == 0 {
			l = r.style(headerStyle, l)
		}
		r.line(l)
	}
}

func itemTable(items []stats.SingleStat) tableSpec {
	t := tableSpec{
		headers: []string{"아이템", "픽수", "승수", "승률(%)"},
		right:   map[int]bool{1: true, 2: true, 3: true},
	}
	for _, it := range items {
		t.rows = append(t.rows, []string{it.Name, strconv.Itoa(it.TotalPicks), strconv.Itoa(it.Wins), fmt.Sprintf("%.2f", it.WinRate)})
	}
	return t
}

func pairTable(a, b string, pairs []stats.PairStat) tableSpec {
	t := tableSpec{
		headers: []string{a, b, "게임수", "승수", "승률(%)"},
		right:   map[int]bool{2: true, 3: true, 4: true},
	}
	for _, p := range pairs {
		t.rows = append(t.rows, []string{p.NameA, p.NameB, strconv.Itoa(p.Games), strconv.Itoa(p.Wins), fmt.Sprintf("%.2f", p.WinRate)})
	}
	return t
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
