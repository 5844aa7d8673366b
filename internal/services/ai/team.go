package ai

import (
	"errors"
	"fmt"
	"strings"
)

// TeamSize is the number of champions on an ARAM team.
const TeamSize = 5

// ErrTeamSize is returned when the team input does not name exactly
// TeamSize champions.
var ErrTeamSize = errors.New("team must list exactly 5 champions")

// ParseTeam splits comma-separated champion labels. Blank entries are
// ignored; the result must hold exactly TeamSize labels.
func ParseTeam(input string) ([]string, error) {
	var team []string
	for _, part := range strings.FieldsFunc(input, isSeparator) {
		if p := strings.TrimSpace(part); p != "" {
			team = append(team, p)
		}
	}
	if len(team) != TeamSize {
		return nil, fmt.Errorf("%w: got %d", ErrTeamSize, len(team))
	}
	return team, nil
}

// ',' and the full-width '，' used by Korean IMEs.
func isSeparator(r rune) bool {
	return r == ',' || r == '，'
}
