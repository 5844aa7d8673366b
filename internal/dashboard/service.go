package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/aramps/internal/services/ai"
	"github.com/aramps/internal/storage"
	"github.com/aramps/internal/textnorm"
	"github.com/rs/zerolog/log"
)

// TeamCommenter produces free-text commentary for a team.
type TeamCommenter interface {
	Enabled() bool
	TeamComp(ctx context.Context, team []string) (string, error)
}

// Service answers dashboard queries. It is safe for concurrent use.
type Service struct {
	data  *Dataset
	ai    TeamCommenter
	cache *storage.CommentaryStore
}

// NewService wires a dataset with the optional AI collaborator and
// commentary cache; either may be nil.
func NewService(data *Dataset, commenter TeamCommenter, cache *storage.CommentaryStore) *Service {
	return &Service{data: data, ai: commenter, cache: cache}
}

// Data returns the loaded dataset.
func (s *Service) Data() *Dataset { return s.data }

// AIEnabled reports whether TeamComp can reach the AI endpoint.
func (s *Service) AIEnabled() bool {
	return s.ai != nil && s.ai.Enabled()
}

// View returns the champion view.
func (s *Service) View(champion string, withRaw bool) (*ChampionView, error) {
	return s.data.View(champion, withRaw)
}

// Resolve maps free text to a known champion name, matching exactly first
// and by normalized name second.
func (s *Service) Resolve(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if s.data.HasChampion(name) {
		return name, true
	}
	for _, c := range s.data.Champions {
		if textnorm.Equal(c, name) {
			return c, true
		}
	}
	return "", false
}

// Suggest returns up to limit champions whose normalized name contains
// the normalized query, prefix matches first.
func (s *Service) Suggest(query string, limit int) []string {
	q := textnorm.Normalize(query)
	var prefix, contains []string
	for _, c := range s.data.Champions {
		n := textnorm.Normalize(c)
		switch {
		case strings.HasPrefix(n, q):
			prefix = append(prefix, c)
		case strings.Contains(n, q):
			contains = append(contains, c)
		}
	}
	out := append(prefix, contains...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TeamCompResult is the answer to a team-composition request.
type TeamCompResult struct {
	Team   []string `json:"team"`
	Icons  []string `json:"icons"`
	Text   string   `json:"text"`
	Cached bool     `json:"cached"`
}

// TeamComp validates the comma-separated team input and asks the AI
// collaborator for commentary. ai.ErrTeamSize is returned before any call
// is made; cached answers are reused.
func (s *Service) TeamComp(ctx context.Context, input string) (*TeamCompResult, error) {
	team, err := ai.ParseTeam(input)
	if err != nil {
		return nil, err
	}

	res := &TeamCompResult{Team: team, Icons: make([]string, len(team))}
	for i, c := range team {
		res.Icons[i] = s.data.Icons.Champion(c)
	}

	if s.cache != nil {
		if c, ok := s.cache.Get(ctx, team); ok {
			res.Text, res.Cached = c.Text, true
			return res, nil
		}
	}

	if !s.AIEnabled() {
		return nil, ai.ErrNotConfigured
	}

	text, err := s.ai.TeamComp(ctx, team)
	if err != nil {
		log.Error().Err(err).Strs("team", team).Msg("team commentary failed")
		return nil, fmt.Errorf("team commentary failed: %w", err)
	}
	res.Text = text

	if s.cache != nil {
		if err := s.cache.Put(ctx, team, text); err != nil {
			log.Warn().Err(err).Msg("failed to cache team commentary")
		}
	}
	return res, nil
}
