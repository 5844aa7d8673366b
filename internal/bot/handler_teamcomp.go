package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/aramps/internal/dashboard"
	"github.com/aramps/internal/embeds"
	"github.com/aramps/internal/services/ai"
)

// handleTeamComp handles the /teamcomp command.
func (b *Bot) handleTeamComp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	input := optionMap(i.ApplicationCommandData().Options)["champions"].StringValue()

	// Size errors are answered before deferring. Cached teams are served
	// by the service even when the AI endpoint is not configured.
	if _, err := ai.ParseTeam(input); err != nil {
		respond(s, i, teamCompError(err), true)
		return
	}

	// Defer response (loading state)
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		log.Error().Err(err).Msg("error deferring interaction")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()
	editResponse(s, i, teamCompEmbed(ctx, b.svc, input))
}

func teamCompEmbed(ctx context.Context, svc *dashboard.Service, input string) *discordgo.MessageEmbed {
	res, err := svc.TeamComp(ctx, input)
	if err != nil {
		return teamCompError(err)
	}
	return embeds.TeamComp(res)
}

func teamCompError(err error) *discordgo.MessageEmbed {
	switch {
	case errors.Is(err, ai.ErrTeamSize):
		return embeds.Warning(fmt.Sprintf("챔피언 %d명을 쉼표로 구분해 입력하세요.", ai.TeamSize), "")
	case errors.Is(err, ai.ErrNotConfigured):
		return embeds.Error("AI 엔드포인트가 설정되지 않았습니다.", "")
	case errors.Is(err, context.DeadlineExceeded):
		return embeds.Error("AI 응답 시간이 초과되었습니다. 잠시 후 다시 시도하세요.", "")
	default:
		return embeds.Error("AI 호출 실패: "+embeds.Truncate(err.Error(), 200), "")
	}
}
