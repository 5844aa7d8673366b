package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/aramps/internal/dashboard"
	"github.com/aramps/internal/storage"
	"github.com/aramps/internal/table"
)

const playersCSV = `champion,win,matchId,item0_name,item1_name,spell1,spell2,rune_core,rune_sub
아리,True,M1,Luden,Zhonya,Flash,유체화,감전,마법
아리,False,M2,Luden,,유체화,점멸,감전,마법
럭스,True,M1,Luden,,점멸,표식,콩콩이 소환,마법
`

type stubCommenter struct {
	enabled bool
	text    string
}

func (s stubCommenter) Enabled() bool { return s.enabled }

func (s stubCommenter) TeamComp(ctx context.Context, team []string) (string, error) {
	return s.text, nil
}

func newTestServer(t *testing.T, commenter dashboard.TeamCommenter) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"players.csv":   playersCSV,
		"champions.csv": "champion,champion_icon\n아리,https://cdn.example/ahri.png\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	paths := dashboard.Paths{
		Players:       filepath.Join(dir, "players.csv"),
		ItemSummary:   filepath.Join(dir, "items.csv"),
		ChampionIcons: filepath.Join(dir, "champions.csv"),
		RuneIcons:     filepath.Join(dir, "runes.csv"),
		SpellIcons:    filepath.Join(dir, "spells.csv"),
	}
	data, err := dashboard.Load(table.NewCache(), paths, "15.16.1")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	svc := dashboard.NewService(data, commenter, storage.NewCommentaryStore(nil, "test:", time.Hour))

	ts := httptest.NewServer(New(":0", svc, nil).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func fetchDoc(t *testing.T, resp *http.Response, err error) *goquery.Document {
	t.Helper()
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return doc
}

func TestIndexRendersChampion(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/?champion=" + url.QueryEscape("아리"))
	doc := fetchDoc(t, resp, err)

	if got := strings.TrimSpace(doc.Find("#champion-title").Text()); got != "아리" {
		t.Errorf("unexpected title %q", got)
	}
	if src, _ := doc.Find("#champion-title img").Attr("src"); src != "https://cdn.example/ahri.png" {
		t.Errorf("unexpected portrait %q", src)
	}
	if got := doc.Find("#games").Text(); got != "2" {
		t.Errorf("unexpected games %q", got)
	}
	if got := doc.Find("#winrate").Text(); got != "50.00%" {
		t.Errorf("unexpected win rate %q", got)
	}
	if got := doc.Find("#pickrate").Text(); got != "100.00%" {
		t.Errorf("unexpected pick rate %q", got)
	}
	if n := doc.Find("#items tbody tr").Length(); n != 2 {
		t.Errorf("expected 2 item rows, got %d", n)
	}

	spell := doc.Find("#spells tbody tr").First().Find("td")
	if spell.Eq(1).Text() != "유체화" || spell.Eq(3).Text() != "점멸" || spell.Eq(4).Text() != "2" {
		t.Errorf("unexpected spell row %q", spell.Text())
	}
	if src, _ := doc.Find("#runes tbody tr td img").First().Attr("src"); !strings.HasSuffix(src, "Electrocute.png") {
		t.Errorf("expected rune fallback icon, got %q", src)
	}

	if doc.Find("#champion option[selected]").Text() != "아리" {
		t.Error("expected selected option")
	}
	if doc.Find(".notice.warn").Length() == 0 {
		t.Error("expected missing-file notices")
	}
	if _, disabled := doc.Find("#teamcomp-form button").Attr("disabled"); !disabled {
		t.Error("expected disabled team-comp button without AI")
	}
}

func TestIndexDefaultsAndRaw(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/")
	doc := fetchDoc(t, resp, err)
	if got := strings.TrimSpace(doc.Find("#champion-title").Text()); got != "럭스" {
		t.Errorf("expected first champion by name, got %q", got)
	}

	resp, err = http.Get(ts.URL + "/?raw=1&champion=" + url.QueryEscape("아리"))
	doc = fetchDoc(t, resp, err)
	if n := doc.Find("#raw tbody tr").Length(); n != 2 {
		t.Errorf("expected 2 raw rows, got %d", n)
	}
	if n := doc.Find("#raw thead th").Length(); n != 9 {
		t.Errorf("expected 9 raw columns, got %d", n)
	}
}

func TestTeamCompForm(t *testing.T) {
	ts := newTestServer(t, stubCommenter{enabled: true, text: "한타 조합"})

	resp, err := http.PostForm(ts.URL+"/teamcomp", url.Values{"team": {"아리, 럭스"}, "champion": {"아리"}})
	doc := fetchDoc(t, resp, err)
	if doc.Find("#team-warning").Length() != 1 || doc.Find("#team-result").Length() != 0 {
		t.Error("expected inline warning for a short team")
	}
	if v, _ := doc.Find("#team").Attr("value"); v != "아리, 럭스" {
		t.Errorf("expected input to be kept, got %q", v)
	}

	resp, err = http.PostForm(ts.URL+"/teamcomp", url.Values{"team": {"아리, 럭스, 가렌, 징크스, 레오나"}})
	doc = fetchDoc(t, resp, err)
	if got := doc.Find("#team-result .commentary").Text(); got != "한타 조합" {
		t.Errorf("unexpected commentary %q", got)
	}
	if n := doc.Find("#team-result .team span").Length(); n != 5 {
		t.Errorf("expected 5 team members, got %d", n)
	}
}

func TestTeamCompFormWithoutAI(t *testing.T) {
	ts := newTestServer(t, stubCommenter{})

	resp, err := http.PostForm(ts.URL+"/teamcomp", url.Values{"team": {"a,b,c,d,e"}})
	doc := fetchDoc(t, resp, err)
	if doc.Find("#team-error").Length() != 1 {
		t.Error("expected inline error")
	}
}

func TestChampionsAPI(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/champions")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var list []dashboard.ChampionEntry
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[1].Name != "아리" || list[1].Icon == "" {
		t.Fatalf("unexpected champions %+v", list)
	}
}

func TestChampionAPI(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/champions/" + url.PathEscape("아리") + "?raw=1")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var v dashboard.ChampionView
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatal(err)
	}
	if v.Summary.Games != 2 || len(v.Items) != 2 || len(v.Raw) != 2 {
		t.Fatalf("unexpected view %+v", v)
	}

	resp, err = http.Get(ts.URL + "/api/champions/unknown")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestTeamCompAPI(t *testing.T) {
	ts := newTestServer(t, stubCommenter{enabled: true, text: "포킹"})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"team":"아리,럭스,가렌,징크스,레오나"}`, http.StatusOK},
		{"short", `{"team":"아리"}`, http.StatusBadRequest},
		{"malformed", `{"team":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/api/teamcomp", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, resp.StatusCode)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRankingAPI(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/ranking?by=winrate&min_games=1")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var entries []dashboard.RankEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatal(err)
	}
	// 럭스 won its only game, 아리 one of two.
	if len(entries) != 2 || entries[0].Name != "럭스" || entries[1].Summary.Games != 2 {
		t.Fatalf("unexpected ranking %+v", entries)
	}

	for _, q := range []string{"by=kda", "min_games=-1", "limit=x"} {
		resp, err := http.Get(ts.URL + "/api/ranking?" + q)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, resp.StatusCode)
		}
	}
}

func TestSpellsAPI(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/spells")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var list []dashboard.SpellEntry
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list) == 0 || list[0].Name != "점멸" || !strings.HasSuffix(list[0].Icon, "/15.16.1/img/spell/SummonerFlash.png") {
		t.Fatalf("unexpected spells %+v", list)
	}
}
