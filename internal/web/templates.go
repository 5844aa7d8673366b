package web

import (
	"fmt"
	"html/template"
)

var pageFuncs = template.FuncMap{
	"pct": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"cell": func(row map[string]string, col string) string {
		return row[col]
	},
}

var pageTemplate = template.Must(template.New("page").Funcs(pageFuncs).Parse(`<!doctype html>
<html lang="ko">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{ .Title }}</title>
  <style>
    :root {
      --bg: #0f172a;
      --card: #111c33;
      --ink: #e2e8f0;
      --muted: #94a3b8;
      --accent: #38bdf8;
      --warn: #f59e0b;
      --error: #f87171;
      --border: #1e293b;
    }
    body { margin: 0; background: var(--bg); color: var(--ink); font-family: "Pretendard", "Noto Sans KR", sans-serif; }
    .layout { display: grid; grid-template-columns: 260px 1fr; min-height: 100vh; }
    aside { padding: 20px; border-right: 1px solid var(--border); }
    main { padding: 24px 32px; max-width: 1100px; }
    h1 { display: flex; align-items: center; gap: 12px; margin: 0 0 16px; }
    h2 { margin: 28px 0 10px; font-size: 18px; }
    .metrics { display: grid; grid-template-columns: repeat(3, 1fr); gap: 12px; }
    .metric { background: var(--card); border: 1px solid var(--border); border-radius: 10px; padding: 12px 16px; }
    .metric .label { color: var(--muted); font-size: 13px; }
    .metric .value { font-size: 26px; font-weight: 700; }
    table { width: 100%; border-collapse: collapse; font-size: 14px; }
    th, td { padding: 6px 8px; border-bottom: 1px solid var(--border); text-align: left; }
    th { color: var(--muted); font-weight: 600; }
    td.num { text-align: right; font-variant-numeric: tabular-nums; }
    img.icon { width: 32px; height: 32px; border-radius: 6px; vertical-align: middle; }
    img.portrait { width: 64px; height: 64px; border-radius: 10px; }
    .notice { padding: 8px 12px; border-radius: 8px; margin: 6px 0; background: rgba(56,189,248,0.1); }
    .notice.warn { background: rgba(245,158,11,0.12); color: var(--warn); }
    .notice.error { background: rgba(248,113,113,0.12); color: var(--error); }
    select, input[type=text] { width: 100%; padding: 8px; border-radius: 8px; border: 1px solid var(--border); background: var(--card); color: var(--ink); }
    button { margin-top: 8px; padding: 8px 14px; border: 0; border-radius: 8px; background: var(--accent); color: #0f172a; font-weight: 700; cursor: pointer; }
    .commentary { white-space: pre-wrap; background: var(--card); border-radius: 10px; padding: 14px; }
    .team { display: flex; gap: 8px; margin: 8px 0; }
  </style>
</head>
<body>
<div class="layout">
  <aside>
    <h3>ARAM PS Controls</h3>
    <form method="get" action="/" id="champion-form">
      <label for="champion">Champion</label>
      <select id="champion" name="champion" onchange="this.form.submit()">
        {{- range .Champions }}
        <option value="{{ .Name }}"{{ if eq .Name $.Selected }} selected{{ end }}>{{ .Name }}</option>
        {{- end }}
      </select>
      <noscript><button type="submit">보기</button></noscript>
    </form>

    <h3>팀 조합 분석</h3>
    <form method="post" action="/teamcomp" id="teamcomp-form">
      <input type="hidden" name="champion" value="{{ .Selected }}" />
      <label for="team">챔피언 5명 (쉼표로 구분)</label>
      <input type="text" id="team" name="team" value="{{ .TeamInput }}" placeholder="아리, 럭스, 가렌, 징크스, 레오나" />
      <button type="submit"{{ if not .AIEnabled }} disabled{{ end }}>분석</button>
      {{- if not .AIEnabled }}
      <div class="notice">AI 엔드포인트가 설정되지 않았습니다.</div>
      {{- end }}
    </form>
  </aside>

  <main>
    {{- range .Notices }}
    <div class="notice warn">{{ . }}</div>
    {{- end }}

    {{- if .TeamWarning }}
    <div class="notice warn" id="team-warning">{{ .TeamWarning }}</div>
    {{- end }}
    {{- if .TeamError }}
    <div class="notice error" id="team-error">{{ .TeamError }}</div>
    {{- end }}
    {{- with .Team }}
    <section id="team-result">
      <h2>팀 조합 분석{{ if .Cached }} (캐시){{ end }}</h2>
      <div class="team">
        {{- range $i, $c := .Team }}
        {{- with index $.Team.Icons $i }}<img class="icon" src="{{ . }}" alt="{{ $c }}" />{{ end }}<span>{{ $c }}</span>
        {{- end }}
      </div>
      <div class="commentary">{{ .Text }}</div>
    </section>
    {{- end }}

    {{- with .View }}
    <h1 id="champion-title">{{ with .Icon }}<img class="portrait" src="{{ . }}" alt="" />{{ end }}{{ .Champion }}</h1>
    <div class="metrics">
      <div class="metric"><div class="label">Games</div><div class="value" id="games">{{ .Summary.Games }}</div></div>
      <div class="metric"><div class="label">Win Rate</div><div class="value" id="winrate">{{ pct .Summary.WinRate }}%</div></div>
      <div class="metric"><div class="label">Pick Rate</div><div class="value" id="pickrate">{{ pct .Summary.PickRate }}%</div></div>
    </div>

    <h2>Recommended Items</h2>
    {{- if .ItemsNotice }}
    <div class="notice">{{ .ItemsNotice }}</div>
    {{- else }}
    <table id="items">
      <thead><tr><th>아이콘</th><th>아이템</th><th>픽수</th><th>승수</th><th>승률(%)</th></tr></thead>
      <tbody>
      {{- range .Items }}
        <tr><td>{{ with .Icon }}<img class="icon" src="{{ . }}" alt="" />{{ end }}</td><td>{{ .Name }}</td><td class="num">{{ .TotalPicks }}</td><td class="num">{{ .Wins }}</td><td class="num">{{ pct .WinRate }}</td></tr>
      {{- end }}
      </tbody>
    </table>
    {{- end }}

    <h2>Recommended Spell Combos</h2>
    {{- if .SpellsNotice }}
    <div class="notice">{{ .SpellsNotice }}</div>
    {{- else }}
    <table id="spells">
      <thead><tr><th>스펠1</th><th>스펠1 이름</th><th>스펠2</th><th>스펠2 이름</th><th>게임수</th><th>승수</th><th>승률(%)</th></tr></thead>
      <tbody>
      {{- range .Spells }}
        <tr><td>{{ with .IconA }}<img class="icon" src="{{ . }}" alt="" />{{ end }}</td><td>{{ .NameA }}</td><td>{{ with .IconB }}<img class="icon" src="{{ . }}" alt="" />{{ end }}</td><td>{{ .NameB }}</td><td class="num">{{ .Games }}</td><td class="num">{{ .Wins }}</td><td class="num">{{ pct .WinRate }}</td></tr>
      {{- end }}
      </tbody>
    </table>
    {{- end }}

    <h2>Recommended Rune Combos</h2>
    {{- if .RunesNotice }}
    <div class="notice">{{ .RunesNotice }}</div>
    {{- else }}
    <table id="runes">
      <thead><tr><th>핵심룬</th><th>핵심룬 이름</th><th>보조트리</th><th>보조트리 이름</th><th>게임수</th><th>승수</th><th>승률(%)</th></tr></thead>
      <tbody>
      {{- range .Runes }}
        <tr><td>{{ with .IconA }}<img class="icon" src="{{ . }}" alt="" />{{ end }}</td><td>{{ .NameA }}</td><td>{{ with .IconB }}<img class="icon" src="{{ . }}" alt="" />{{ end }}</td><td>{{ .NameB }}</td><td class="num">{{ .Games }}</td><td class="num">{{ .Wins }}</td><td class="num">{{ pct .WinRate }}</td></tr>
      {{- end }}
      </tbody>
    </table>
    {{- end }}
    {{- end }}

    {{- if .AllItems }}
    <details id="all-items">
      <summary>All Items{{ if .ItemsComputed }} (참가자 데이터에서 집계){{ end }}</summary>
      <table>
        <thead><tr><th>아이콘</th><th>아이템</th><th>픽수</th><th>승수</th><th>승률(%)</th></tr></thead>
        <tbody>
        {{- range .AllItems }}
          <tr><td>{{ with .Icon }}<img class="icon" src="{{ . }}" alt="" />{{ end }}</td><td>{{ .Name }}</td><td class="num">{{ .TotalPicks }}</td><td class="num">{{ .Wins }}</td><td class="num">{{ pct .WinRate }}</td></tr>
        {{- end }}
        </tbody>
      </table>
    </details>
    {{- end }}

    <details id="raw"{{ if .ShowRaw }} open{{ end }}>
      <summary>Raw rows (selected champion)</summary>
      {{- if .ShowRaw }}
      <table>
        <thead><tr>{{ range .Columns }}<th>{{ . }}</th>{{ end }}</tr></thead>
        <tbody>
        {{- range $row := .View.Raw }}
          <tr>{{ range $.Columns }}<td>{{ cell $row . }}</td>{{ end }}</tr>
        {{- end }}
        </tbody>
      </table>
      {{- else }}
      <a href="/?champion={{ .Selected }}&amp;raw=1">원본 행 보기</a>
      {{- end }}
    </details>
  </main>
</div>
</body>
</html>
`))
