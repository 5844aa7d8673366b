// Package web serves the dashboard page and its JSON API.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/aramps/internal/dashboard"
	"github.com/aramps/internal/services/ai"
	"github.com/aramps/internal/stats"
	"github.com/aramps/pkg/healthcheck"
	"github.com/rs/zerolog/log"
)

const title = "ARAM PS Dashboard"

// Server is the dashboard HTTP server.
type Server struct {
	svc    *dashboard.Service
	health *healthcheck.Handler
	mux    *http.ServeMux
	server *http.Server
}

// New creates the server and registers every route.
func New(addr string, svc *dashboard.Service, health *healthcheck.Handler) *Server {
	if health == nil {
		health = healthcheck.NewHandler()
	}
	s := &Server{svc: svc, health: health, mux: http.NewServeMux()}
	s.routes()
	s.server = &http.Server{
		Addr:              addr,
		Handler:           logRequests(s.mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// The team-comp route waits on the AI endpoint.
		WriteTimeout: 150 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.mux.Handle("GET /health", s.health)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /teamcomp", s.handleTeamCompForm)
	s.mux.HandleFunc("GET /api/champions", s.handleChampions)
	s.mux.HandleFunc("GET /api/champions/{name}", s.handleChampion)
	s.mux.HandleFunc("GET /api/ranking", s.handleRanking)
	s.mux.HandleFunc("GET /api/spells", s.handleSpells)
	s.mux.HandleFunc("POST /api/teamcomp", s.handleTeamCompAPI)
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.server.Handler }

// Start listens until Stop is called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("dashboard listening")
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type pageData struct {
	Title     string
	Champions []dashboard.ChampionEntry
	Selected  string
	View      *dashboard.ChampionView
	Notices   []string
	Columns   []string
	ShowRaw   bool

	AllItems      []stats.SingleStat
	ItemsComputed bool

	AIEnabled   bool
	TeamInput   string
	Team        *dashboard.TeamCompResult
	TeamWarning string
	TeamError   string
}

func (s *Server) page(champion string, withRaw bool) *pageData {
	d := s.svc.Data()
	p := &pageData{
		Title:         title,
		Champions:     d.ChampionList(),
		Notices:       d.Notices,
		AllItems:      topItems(d.Items, stats.ItemLimit),
		ItemsComputed: d.ItemsComputed,
		AIEnabled:     s.svc.AIEnabled(),
	}

	name, ok := s.svc.Resolve(champion)
	if !ok {
		if champion != "" {
			p.Notices = append(slices.Clone(p.Notices), "알 수 없는 챔피언: "+champion)
		}
		name = d.Champions[0]
	}
	p.Selected = name

	v, err := s.svc.View(name, withRaw)
	if err != nil {
		log.Error().Err(err).Str("champion", name).Msg("failed to build champion view")
		return p
	}
	p.View = v
	if withRaw {
		p.ShowRaw = true
		p.Columns = d.Columns()
	}
	p.Title = name + " | " + title
	return p
}

func (s *Server) render(w http.ResponseWriter, p *pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, p); err != nil {
		log.Error().Err(err).Msg("template error")
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.render(w, s.page(q.Get("champion"), q.Get("raw") == "1"))
}

func (s *Server) handleTeamCompForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	p := s.page(r.PostForm.Get("champion"), false)
	p.TeamInput = r.PostForm.Get("team")

	res, err := s.svc.TeamComp(r.Context(), p.TeamInput)
	switch {
	case errors.Is(err, ai.ErrTeamSize):
		p.TeamWarning = "챔피언 5명을 쉼표로 구분해 입력하세요."
	case errors.Is(err, ai.ErrNotConfigured):
		p.TeamError = "AI 엔드포인트가 설정되지 않았습니다."
	case err != nil:
		p.TeamError = "AI 호출 실패: " + err.Error()
	default:
		p.Team = res
	}
	s.render(w, p)
}

func (s *Server) handleChampions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Data().ChampionList())
}

func (s *Server) handleChampion(w http.ResponseWriter, r *http.Request) {
	name, ok := s.svc.Resolve(r.PathValue("name"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown champion")
		return
	}
	v, err := s.svc.View(name, r.URL.Query().Get("raw") == "1")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	by := dashboard.RankBy(q.Get("by"))
	switch by {
	case "":
		by = dashboard.RankByGames
	case dashboard.RankByGames, dashboard.RankByWinRate:
	default:
		writeError(w, http.StatusBadRequest, "by must be games or winrate")
		return
	}
	minGames, err := intParam(q.Get("min_games"), 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid min_games")
		return
	}
	limit, err := intParam(q.Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Data().Ranking(by, minGames, limit))
}

func (s *Server) handleSpells(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Data().SpellList())
}

func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid number %q", v)
	}
	return n, nil
}

type teamCompRequest struct {
	Team string `json:"team"`
}

func (s *Server) handleTeamCompAPI(w http.ResponseWriter, r *http.Request) {
	var req teamCompRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	} else {
		req.Team = r.FormValue("team")
	}

	res, err := s.svc.TeamComp(r.Context(), req.Team)
	switch {
	case errors.Is(err, ai.ErrTeamSize):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ai.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case err != nil:
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("encode error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// topItems returns the n most picked items without reordering d.Items.
func topItems(items []stats.SingleStat, n int) []stats.SingleStat {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b stats.SingleStat) int {
		switch {
		case a.TotalPicks != b.TotalPicks:
			return b.TotalPicks - a.TotalPicks
		case a.WinRate > b.WinRate:
			return -1
		case a.WinRate < b.WinRate:
			return 1
		}
		return 0
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Dur("took", time.Since(start)).Msg("request")
	})
}
