package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/aramps/internal/dashboard"
	"github.com/aramps/internal/embeds"
)

// Discord accepts at most 25 autocomplete choices.
const maxChoices = 25

// handleAram handles the /aram command.
func (b *Bot) handleAram(s *discordgo.Session, i *discordgo.InteractionCreate) {
	input := optionMap(i.ApplicationCommandData().Options)["champion"].StringValue()

	name, ok := b.svc.Resolve(input)
	if !ok {
		respond(s, i, unknownChampion(b.svc, input), true)
		return
	}
	v, err := b.svc.View(name, false)
	if err != nil {
		log.Error().Err(err).Str("champion", name).Msg("failed to build champion view")
		respond(s, i, embeds.Error("통계를 만들 수 없습니다.", ""), true)
		return
	}
	respond(s, i, embeds.Champion(v), false)
}

func unknownChampion(svc *dashboard.Service, input string) *discordgo.MessageEmbed {
	msg := fmt.Sprintf("**%s** 챔피언 데이터가 없습니다.", input)
	if hints := svc.Suggest(input, 5); len(hints) > 0 {
		msg += "\n혹시: " + joinBold(hints)
	}
	return embeds.Warning(msg, "")
}

// handleAutocomplete answers champion-name autocomplete requests.
func (b *Bot) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var query string
	for _, o := range i.ApplicationCommandData().Options {
		if o.Focused {
			query = o.StringValue()
		}
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices(b.svc.Suggest(query, maxChoices)),
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("error answering autocomplete")
	}
}

func choices(names []string) []*discordgo.ApplicationCommandOptionChoice {
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(names))
	for _, n := range names {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: n, Value: n})
	}
	return out
}

func joinBold(names []string) string {
	out := ""
	for k, n := range names {
		if k > 0 {
			out += ", "
		}
		out += "**" + n + "**"
	}
	return out
}
