package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/aramps/internal/dashboard"
	"github.com/aramps/internal/embeds"
)

const rankingSize = 10

// handleRanking handles the /ranking command.
func (b *Bot) handleRanking(s *discordgo.Session, i *discordgo.InteractionCreate) {
	by, minGames := rankingOptions(i.ApplicationCommandData().Options)
	entries := b.svc.Data().Ranking(by, minGames, rankingSize)
	respond(s, i, embeds.Ranking(entries, by, minGames), false)
}

// rankingOptions reads /ranking options, defaulting to games order and
// a minimum of one game.
func rankingOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) (dashboard.RankBy, int) {
	m := optionMap(opts)
	by := dashboard.RankByGames
	if o, ok := m["by"]; ok && o.StringValue() == string(dashboard.RankByWinRate) {
		by = dashboard.RankByWinRate
	}
	minGames := 1
	if o, ok := m["min_games"]; ok {
		minGames = int(o.IntValue())
	}
	return by, minGames
}
